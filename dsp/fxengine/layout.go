package fxengine

import (
	"errors"
	"fmt"
)

// Errors returned while partitioning an arena.
var (
	ErrArenaTooSmall    = errors.New("fxengine: arena too small for reservations")
	ErrEmptyReservation = errors.New("fxengine: reservation length must be > 1")
	ErrDuplicateLine    = errors.New("fxengine: duplicate line name")
	ErrUnknownFormat    = errors.New("fxengine: unknown storage format")
)

// minLineLength is the shortest line that still holds two adjacent samples
// for interpolated reads.
const minLineLength = 2

// Reservation requests a delay line of Length samples.
type Reservation struct {
	Name   string
	Length int
}

// Line is a handle to one delay line of a [Layout].
type Line struct {
	name   string
	id     int
	base   int
	length int
}

// Name returns the reservation name.
func (l Line) Name() string { return l.name }

// Base returns the arena offset of the first slot of the line.
func (l Line) Base() int { return l.base }

// Len returns the number of slots reserved for the line.
func (l Line) Len() int { return l.length }

// MaxDelay returns the longest delay in samples that can be read with
// interpolation.
func (l Line) MaxDelay() int { return l.length - minLineLength }

// Scaled returns the runtime delay of the line for a size factor in [0,1].
func (l Line) Scaled(scale float64) float64 {
	return float64(l.MaxDelay()) * scale
}

// Layout is the partition table of an arena.
type Layout struct {
	lines    []Line
	used     int
	capacity int
}

// Partition assigns consecutive, non-overlapping arena ranges to the
// reservations in declared order.
func Partition(capacity int, reservations ...Reservation) (*Layout, error) {
	layout := &Layout{
		lines:    make([]Line, 0, len(reservations)),
		capacity: capacity,
	}

	seen := make(map[string]struct{}, len(reservations))
	for i, r := range reservations {
		if r.Length < minLineLength {
			return nil, fmt.Errorf("%w: %q has length %d", ErrEmptyReservation, r.Name, r.Length)
		}
		if _, ok := seen[r.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLine, r.Name)
		}
		seen[r.Name] = struct{}{}

		layout.lines = append(layout.lines, Line{
			name:   r.Name,
			id:     i,
			base:   layout.used,
			length: r.Length,
		})
		layout.used += r.Length
	}

	if layout.used > capacity {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrArenaTooSmall, layout.used, capacity)
	}

	return layout, nil
}

// Lines returns a copy of the partition table in declared order.
func (l *Layout) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Line looks up a line by name.
func (l *Layout) Line(name string) (Line, bool) {
	for _, line := range l.lines {
		if line.name == name {
			return line, true
		}
	}

	return Line{}, false
}

// Used returns the number of arena slots covered by the lines.
func (l *Layout) Used() int { return l.used }

// Capacity returns the arena size the layout was built for.
func (l *Layout) Capacity() int { return l.capacity }
