// Command fxinfo prints the delay-memory layout of the Griesinger reverb and
// impulse-response metrics for a parameter set.
//
// Usage:
//
//	fxinfo [flags]
//
// Examples:
//
//	fxinfo -layout
//	fxinfo -time 0.8 -diffusion 0.7
//	fxinfo -format 32 -size 0.5 -frames 96000
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fxengine/dsp/core"
	"github.com/cwbudde/algo-fxengine/dsp/effects/reverb"
	"github.com/cwbudde/algo-fxengine/dsp/fxengine"
	"github.com/cwbudde/algo-fxengine/measure/ir"
)

type settings struct {
	amount    float64
	time      float64
	diffusion float64
	lp        float64
	size      float64
	format    fxengine.Format
	rate      float64
	frames    int
}

func main() {
	amount := flag.Float64("amount", 1, "wet/dry crossfade, 0 dry to 1 wet")
	decay := flag.Float64("time", 0.5, "loop feedback gain, below 1")
	diffusion := flag.Float64("diffusion", 0.625, "all-pass coefficient, below 1")
	lp := flag.Float64("lp", 0.7, "damping low-pass coefficient")
	size := flag.Float64("size", 1, "delay length scale in [0,1]")
	format := flag.String("format", "12", "delay storage format: 12, 16 or 32")
	rate := flag.Float64("rate", 32000, "sample rate in Hz")
	frames := flag.Int("frames", 96000, "impulse response length in frames")
	layoutOnly := flag.Bool("layout", false, "print only the delay-line layout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the reverb delay layout and impulse-response metrics.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -layout\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -time 0.8 -diffusion 0.7\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -format 32 -size 0.5 -frames 96000\n")
	}
	flag.Parse()

	f, err := parseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	s := settings{
		amount:    *amount,
		time:      *decay,
		diffusion: *diffusion,
		lp:        *lp,
		size:      *size,
		format:    f,
		rate:      *rate,
		frames:    *frames,
	}

	r, err := newReverb(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	s.rate = r.SampleRate()

	if err := printLayout(r.Layout(), s.size); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write layout: %v\n", err)
		os.Exit(1)
	}
	if *layoutOnly {
		return
	}

	left, right := impulseResponse(r, s.frames)
	if err := printMetrics(s, left, right); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFormat(name string) (fxengine.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "12", "12-bit", "12bit":
		return fxengine.Format12Bit, nil
	case "16", "16-bit", "16bit":
		return fxengine.Format16Bit, nil
	case "32", "32-bit", "32bit", "float":
		return fxengine.Format32Bit, nil
	default:
		return 0, fmt.Errorf("%w: %q", fxengine.ErrUnknownFormat, name)
	}
}

func newReverb(s settings) (*reverb.Reverb, error) {
	r, err := reverb.New(make([]float32, reverb.ArenaSize),
		reverb.WithFormat(s.format),
		reverb.WithSampleRate(s.rate),
	)
	if err != nil {
		return nil, err
	}

	r.SetAmount(s.amount)
	r.SetInputGain(1)
	r.SetTime(s.time)
	r.SetDiffusion(s.diffusion)
	r.SetLP(s.lp)
	r.SetSize(s.size)

	return r, nil
}

func impulseResponse(r *reverb.Reverb, frames int) ([]float64, []float64) {
	if frames < 1 {
		frames = 1
	}

	buf := make([]core.Frame, frames)
	buf[0] = core.Frame{L: 1, R: 1}
	r.Process(buf)

	left := make([]float64, frames)
	right := make([]float64, frames)
	core.SplitFrames(left, right, buf)

	return left, right
}

func printLayout(layout *fxengine.Layout, size float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Line\tBase\tLength\tMax Delay\tDelay @ size\n")
	fmt.Fprintf(tw, "----\t----\t------\t---------\t------------\n")

	for _, line := range layout.Lines() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f\n",
			line.Name(),
			line.Base(),
			line.Len(),
			line.MaxDelay(),
			line.Scaled(core.Clamp(size, 0, 1)),
		)
	}
	fmt.Fprintf(tw, "total\t\t%d\t\t(of %d)\n", layout.Used(), layout.Capacity())

	return tw.Flush()
}

func printMetrics(s settings, left, right []float64) error {
	analyzer := ir.NewAnalyzer(s.rate)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nChannel\tPeak\tRT60 [s]\tEDT [s]\tT20 [s]\tT30 [s]\t-60 dB [s]\tFlatness\n")
	fmt.Fprintf(tw, "-------\t----\t--------\t-------\t-------\t-------\t----------\t--------\n")

	for _, ch := range []struct {
		name string
		data []float64
	}{{"left", left}, {"right", right}} {
		m, err := analyzer.Analyze(ch.data)
		if err != nil {
			_ = tw.Flush()
			return fmt.Errorf("%s channel: %w", ch.name, err)
		}

		fmt.Fprintf(tw, "%s\t%.4f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.4f\n",
			ch.name,
			m.Peak,
			m.RT60,
			m.EDT,
			m.T20,
			m.T30,
			m.DecayTime60,
			m.Flatness,
		)
	}

	fmt.Fprintf(tw, "\nformat %s, %.0f Hz, %d frames\n", s.format, s.rate, len(left))

	return tw.Flush()
}
