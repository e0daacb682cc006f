package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fxengine/dsp/core"
)

// StereoImpulse returns length frames of silence with (l, r) in frame 0.
func StereoImpulse(length int, l, r float64) []core.Frame {
	out := make([]core.Frame, length)
	if length > 0 {
		out[0] = core.Frame{L: l, R: r}
	}
	return out
}

// StereoNoise generates independent white noise per channel with a fixed
// seed for reproducibility.
func StereoNoise(seed int64, amplitude float64, length int) []core.Frame {
	out := make([]core.Frame, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i].L = (rng.Float64()*2 - 1) * amplitude
		out[i].R = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// StereoSine generates the same sine on both channels.
func StereoSine(freqHz, sampleRate, amplitude float64, length int) []core.Frame {
	out := make([]core.Frame, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		v := amplitude * math.Sin(step*float64(i))
		out[i] = core.Frame{L: v, R: v}
	}
	return out
}

// LeftChannel returns a copy of the left samples.
func LeftChannel(frames []core.Frame) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f.L
	}
	return out
}

// RightChannel returns a copy of the right samples.
func RightChannel(frames []core.Frame) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f.R
	}
	return out
}

// CloneFrames returns a copy of frames.
func CloneFrames(frames []core.Frame) []core.Frame {
	out := make([]core.Frame, len(frames))
	copy(out, frames)
	return out
}
