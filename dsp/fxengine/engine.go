package fxengine

import "fmt"

// Engine runs delay lines carved out of a single sample arena.
type Engine struct {
	arena  []float32
	format Format
	layout *Layout
	heads  []int
	lfo    [numLFOs]lfo
}

// New partitions arena into the reserved lines and clears it.
// The arena is used in place and must not be shared with another engine.
func New(arena []float32, format Format, reservations ...Reservation) (*Engine, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	layout, err := Partition(len(arena), reservations...)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		arena:  arena,
		format: format,
		layout: layout,
		heads:  make([]int, len(layout.lines)),
	}
	e.Clear()

	return e, nil
}

// Clear zeroes all delay lines and restarts both oscillators.
func (e *Engine) Clear() {
	clear(e.arena[:e.layout.used])
	clear(e.heads)
	for i := range e.lfo {
		e.lfo[i].reset()
	}
}

// Layout returns the partition table.
func (e *Engine) Layout() *Layout { return e.layout }

// Format returns the storage format.
func (e *Engine) Format() Format { return e.format }

// SetLFOFrequency sets an oscillator frequency in cycles per sample.
func (e *Engine) SetLFOFrequency(index LFOIndex, frequency float64) {
	if index < 0 || int(index) >= numLFOs {
		return
	}

	e.lfo[index].increment = frequency
}

// Start begins a new sample tick: every line moves forward by one sample,
// both oscillators advance, and c is reset.
func (e *Engine) Start(c *Context) {
	for i := range e.layout.lines {
		h := e.heads[i] - 1
		if h < 0 {
			h += e.layout.lines[i].length
		}
		e.heads[i] = h
	}

	for i := range e.lfo {
		c.lfo[i] = e.lfo[i].next()
	}

	c.engine = e
	c.acc = 0
	c.prev = 0
}

// slot maps a delay in [0, l.length) to an arena index.
func (e *Engine) slot(l Line, delay int) int {
	i := e.heads[l.id] + delay
	if i >= l.length {
		i -= l.length
	}

	return l.base + i
}

func (e *Engine) load(l Line, delay int) float64 {
	return e.format.Decompress(e.arena[e.slot(l, delay)])
}

func (e *Engine) store(l Line, delay int, x float64) {
	e.arena[e.slot(l, delay)] = e.format.Compress(x)
}
