package fxengine

import "math"

// LFOIndex selects one of the engine oscillators.
type LFOIndex int

const (
	LFO1 LFOIndex = iota
	LFO2

	numLFOs = 2
)

// lfo is a unipolar raised-cosine oscillator. Its output starts at 0 and
// stays in [0,1].
type lfo struct {
	phase     float64
	increment float64
}

func (o *lfo) reset() {
	o.phase = 0
}

func (o *lfo) next() float64 {
	v := 0.5 * (1 - math.Cos(2*math.Pi*o.phase))

	o.phase += o.increment
	o.phase -= math.Floor(o.phase)
	if o.phase >= 1 {
		// tiny negative phases round up to exactly 1
		o.phase = 0
	}

	return v
}
