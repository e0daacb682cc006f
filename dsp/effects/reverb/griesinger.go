package reverb

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fxengine/dsp/core"
	"github.com/cwbudde/algo-fxengine/dsp/fxengine"
)

// ErrChannelMismatch is returned when split channel buffers differ in length.
var ErrChannelMismatch = errors.New("reverb: left and right channel lengths differ")

// Reverb is a stereo Griesinger topology reverb as described by Dattorro:
// four input all-pass diffusers feed a figure-eight of two loops, each made
// of a long delay, a damping low-pass and two more all-pass diffusers. The
// first diffuser and the first loop delay are modulated for smearing and a
// slow chorus.
//
// All delay memory lives in one caller-owned arena of [ArenaSize] slots.
// Parameters are not validated: diffusion and time must stay below 1 and
// size in [0,1] for a stable, well-formed tail.
type Reverb struct {
	engine *fxengine.Engine
	lines  [numLines]fxengine.Line
	cfg    config

	amount    float64
	inputGain float64
	time      float64
	diffusion float64
	lp        float64
	size      float64

	lpDecay1 float64
	lpDecay2 float64
}

// New creates a reverb that uses arena as delay memory.
func New(arena []float32, opts ...Option) (*Reverb, error) {
	r := &Reverb{}
	if err := r.Init(arena, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Init binds arena, partitions it into the delay lines, configures the
// oscillators and restores the default lp, diffusion and size. Amount, input
// gain and time are left as they are.
func (r *Reverb) Init(arena []float32, opts ...Option) error {
	if len(arena) < ArenaSize {
		return fmt.Errorf("reverb: %w: got %d slots, need %d", fxengine.ErrArenaTooSmall, len(arena), ArenaSize)
	}

	cfg := applyOptions(opts)

	engine, err := fxengine.New(arena[:ArenaSize], cfg.format, lineReservations[:]...)
	if err != nil {
		return fmt.Errorf("reverb: %w", err)
	}

	engine.SetLFOFrequency(fxengine.LFO1, cfg.lfo1Hz/cfg.sampleRate)
	engine.SetLFOFrequency(fxengine.LFO2, cfg.lfo2Hz/cfg.sampleRate)

	r.engine = engine
	r.cfg = cfg
	copy(r.lines[:], engine.Layout().Lines())

	r.lp = defaultLP
	r.diffusion = defaultDiffusion
	r.size = defaultSize
	r.lpDecay1 = 0
	r.lpDecay2 = 0

	return nil
}

// params is the parameter snapshot of one Process call.
type params struct {
	amount    float64
	inputGain float64
	time      float64
	diffusion float64
	lp        float64
	size      float64
}

// decayState is the damping filter memory threaded through a block.
type decayState struct {
	lp1 float64
	lp2 float64
}

// Process runs the reverb in place over frames.
func (r *Reverb) Process(frames []core.Frame) {
	p := r.snapshot()
	s := decayState{lp1: r.lpDecay1, lp2: r.lpDecay2}

	var c fxengine.Context
	for i := range frames {
		frames[i].L, frames[i].R = r.tick(&c, &p, &s, frames[i].L, frames[i].R)
	}

	r.lpDecay1, r.lpDecay2 = s.lp1, s.lp2
}

// ProcessStereo runs the reverb in place over split channel buffers.
func (r *Reverb) ProcessStereo(left, right []float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: %d != %d", ErrChannelMismatch, len(left), len(right))
	}

	p := r.snapshot()
	s := decayState{lp1: r.lpDecay1, lp2: r.lpDecay2}

	var c fxengine.Context
	for i := range left {
		left[i], right[i] = r.tick(&c, &p, &s, left[i], right[i])
	}

	r.lpDecay1, r.lpDecay2 = s.lp1, s.lp2

	return nil
}

func (r *Reverb) snapshot() params {
	return params{
		amount:    r.amount,
		inputGain: r.inputGain,
		time:      r.time,
		diffusion: r.diffusion,
		lp:        r.lp,
		size:      r.size,
	}
}

func (r *Reverb) tick(c *fxengine.Context, p *params, s *decayState, left, right float64) (float64, float64) {
	ksz := p.size
	kap := p.diffusion
	krt := p.time

	r.engine.Start(c)

	ap1 := r.lines[lineAP1]
	c.ReadModulated(ap1, smearDelay*ksz, fxengine.LFO1, smearDepth, 1)
	c.WriteAt(ap1, smearWriteOffset*ksz, 0)

	c.Read(left+right, p.inputGain)

	for _, st := range inputDiffusers {
		r.allPass(c, st, ksz, kap)
	}

	var apout, wet float64
	c.WriteOut(&apout, 1)

	// Loop A reads loop B's delay, so the two loops feed each other.
	c.Load(apout)
	c.ReadModulated(r.lines[lineDel2], loopDelay*ksz, fxengine.LFO2, loopDepth, krt)
	c.LowPass(&s.lp1, p.lp)
	for _, st := range loopADiffusers {
		r.allPass(c, st, ksz, kap)
	}
	c.Write(r.lines[lineDel1], loopWetGain)
	c.WriteOut(&wet, 0)

	left += (wet - left) * p.amount

	c.Load(apout)
	del1 := r.lines[lineDel1]
	c.ReadDelayed(del1, del1.Scaled(ksz), krt)
	c.LowPass(&s.lp2, p.lp)
	for _, st := range loopBDiffusers {
		r.allPass(c, st, ksz, kap)
	}
	c.Write(r.lines[lineDel2], loopWetGain)
	c.WriteOut(&wet, 0)

	right += (wet - right) * p.amount

	return left, right
}

func (r *Reverb) allPass(c *fxengine.Context, st allPassStage, ksz, kap float64) {
	line := r.lines[st.line]
	c.ReadDelayed(line, line.Scaled(ksz), st.readSign*kap)
	c.WriteAllPass(line, st.writeSign*kap)
}

// Reset clears the delay memory, the oscillators and the damping state.
// Parameters are kept.
func (r *Reverb) Reset() {
	r.engine.Clear()
	r.lpDecay1 = 0
	r.lpDecay2 = 0
}

// SetAmount sets the wet/dry crossfade, 0 is dry and 1 fully wet.
func (r *Reverb) SetAmount(amount float64) { r.amount = amount }

// SetInputGain sets the gain applied to the summed input.
func (r *Reverb) SetInputGain(gain float64) { r.inputGain = gain }

// SetTime sets the loop feedback. Values close to 1 sustain indefinitely.
func (r *Reverb) SetTime(time float64) { r.time = time }

// SetDiffusion sets the all-pass coefficient, typically 0.5 to 0.7.
func (r *Reverb) SetDiffusion(diffusion float64) { r.diffusion = diffusion }

// SetLP sets the damping coefficient. Larger values darken the tail.
func (r *Reverb) SetLP(lp float64) { r.lp = lp }

// SetSize scales every delay length. Keep it in [0,1].
func (r *Reverb) SetSize(size float64) { r.size = size }

// Amount returns the wet/dry crossfade.
func (r *Reverb) Amount() float64 { return r.amount }

// InputGain returns the input gain.
func (r *Reverb) InputGain() float64 { return r.inputGain }

// Time returns the loop feedback.
func (r *Reverb) Time() float64 { return r.time }

// Diffusion returns the all-pass coefficient.
func (r *Reverb) Diffusion() float64 { return r.diffusion }

// LP returns the damping coefficient.
func (r *Reverb) LP() float64 { return r.lp }

// Size returns the delay length scale.
func (r *Reverb) Size() float64 { return r.size }

// Format returns the delay storage format.
func (r *Reverb) Format() fxengine.Format { return r.cfg.format }

// SampleRate returns the sample rate used for the LFO rates.
func (r *Reverb) SampleRate() float64 { return r.cfg.sampleRate }

// Layout returns the arena partition table.
func (r *Reverb) Layout() *fxengine.Layout { return r.engine.Layout() }
