package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-fxengine/dsp/core"
)

func ExampleSplitFrames() {
	frames := []core.Frame{{L: 1, R: 0}, {L: 0, R: 1}}
	left := make([]float64, 2)
	right := make([]float64, 2)

	n := core.SplitFrames(left, right, frames)
	fmt.Println(n, left, right)

	// Output:
	// 2 [1 0] [0 1]
}

func ExampleFlushDenormals() {
	fmt.Println(core.FlushDenormals(1e-35), core.FlushDenormals(0.5))

	// Output:
	// 0 0.5
}
