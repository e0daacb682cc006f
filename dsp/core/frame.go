package core

// Frame is one stereo sample pair.
type Frame struct {
	L float64
	R float64
}

// Mono returns the sum of both channels.
func (f Frame) Mono() float64 {
	return f.L + f.R
}

// SplitFrames copies frames into separate left and right channel slices and
// returns the number of frames copied, bounded by the shortest slice.
func SplitFrames(left, right []float64, frames []Frame) int {
	n := min(len(frames), len(left), len(right))
	for i := range n {
		left[i] = frames[i].L
		right[i] = frames[i].R
	}

	return n
}

// JoinFrames interleaves left and right into frames and returns the number of
// frames written, bounded by the shortest slice.
func JoinFrames(frames []Frame, left, right []float64) int {
	n := min(len(frames), len(left), len(right))
	for i := range n {
		frames[i] = Frame{L: left[i], R: right[i]}
	}

	return n
}
