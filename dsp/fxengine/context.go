package fxengine

import "github.com/cwbudde/algo-fxengine/dsp/core"

// Context is the accumulator of one sample tick. It is reset by
// [Engine.Start] and must not be used before the first Start call.
type Context struct {
	engine *Engine
	acc    float64
	prev   float64
	lfo    [numLFOs]float64
}

// Accumulator returns the running value.
func (c *Context) Accumulator() float64 { return c.acc }

// LFO returns the oscillator output captured at the start of the tick.
func (c *Context) LFO(index LFOIndex) float64 { return c.lfo[index] }

// Load replaces the accumulator.
func (c *Context) Load(value float64) {
	c.acc = value
}

// Read adds sample*gain to the accumulator.
func (c *Context) Read(sample, gain float64) {
	c.acc += sample * gain
}

// ReadDelayed adds the sample delayed by delay samples, scaled by gain.
// Fractional delays interpolate linearly between neighbouring samples.
// The delay is clamped to [0, l.MaxDelay()]; NaN reads the head.
func (c *Context) ReadDelayed(l Line, delay, gain float64) {
	if maxDelay := float64(l.MaxDelay()); delay > maxDelay {
		delay = maxDelay
	} else if !(delay > 0) {
		delay = 0
	}

	i := int(delay)
	frac := delay - float64(i)

	a := c.engine.load(l, i)
	b := c.engine.load(l, i+1)
	x := a + (b-a)*frac

	c.prev = x
	c.acc += x * gain
}

// ReadModulated is ReadDelayed with the delay moved by depth times the
// current output of the selected oscillator.
func (c *Context) ReadModulated(l Line, delay float64, index LFOIndex, depth, gain float64) {
	c.ReadDelayed(l, delay+depth*c.lfo[index], gain)
}

// Write stores the accumulator at the head of l and then scales the
// accumulator by gain.
func (c *Context) Write(l Line, gain float64) {
	c.engine.store(l, 0, c.acc)
	c.acc *= gain
}

// WriteAt is Write at a delay of offset samples from the head. The offset is
// truncated and clamped to the line.
func (c *Context) WriteAt(l Line, offset, gain float64) {
	o := min(max(int(offset), 0), l.length-1)
	c.engine.store(l, o, c.acc)
	c.acc *= gain
}

// WriteAllPass completes an all-pass stage started by a read from the same
// line. After ReadDelayed(l, d, g) and WriteAllPass(l, -g) the line holds
// w = x + g*z and the accumulator holds z - g*w, where x is the stage input
// and z the delayed sample.
func (c *Context) WriteAllPass(l Line, gain float64) {
	c.Write(l, gain)
	c.acc += c.prev
}

// WriteOut copies the accumulator to dst and then scales the accumulator by
// gain.
func (c *Context) WriteOut(dst *float64, gain float64) {
	*dst = c.acc
	c.acc *= gain
}

// LowPass runs a one-pole low-pass over the accumulator. state is owned by
// the caller and carries the filter memory between ticks. Larger
// coefficients smooth more.
func (c *Context) LowPass(state *float64, coefficient float64) {
	s := core.FlushDenormals(*state + (c.acc-*state)*(1-coefficient))
	*state = s
	c.acc = s
}

// HighPass removes the low-passed part of the accumulator, keeping the
// complement of LowPass with the same state and coefficient.
func (c *Context) HighPass(state *float64, coefficient float64) {
	s := core.FlushDenormals(*state + (c.acc-*state)*(1-coefficient))
	*state = s
	c.acc -= s
}
