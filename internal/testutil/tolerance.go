package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fxengine/dsp/core"
)

// RequireFramesNearlyEqual fails t if got and want differ in length or if
// any channel pair exceeds eps (absolute tolerance).
func RequireFramesNearlyEqual(t *testing.T, got, want []core.Frame, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		dl := math.Abs(got[i].L - want[i].L)
		dr := math.Abs(got[i].R - want[i].R)
		if dl > eps || dr > eps {
			t.Fatalf("frame %d: got %+v, want %+v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFramesFinite fails t if any sample is NaN or Inf.
func RequireFramesFinite(t *testing.T, frames []core.Frame) {
	t.Helper()
	for i, f := range frames {
		if math.IsNaN(f.L) || math.IsInf(f.L, 0) || math.IsNaN(f.R) || math.IsInf(f.R, 0) {
			t.Fatalf("frame %d: non-finite value %+v", i, f)
		}
	}
}

// FramesRMS returns the RMS over both channels.
func FramesRMS(frames []core.Frame) float64 {
	if len(frames) == 0 {
		return 0
	}
	var sum float64
	for _, f := range frames {
		sum += f.L*f.L + f.R*f.R
	}
	return math.Sqrt(sum / float64(2*len(frames)))
}

// FramesPeak returns the largest absolute sample over both channels.
func FramesPeak(frames []core.Frame) float64 {
	var peak float64
	for _, f := range frames {
		peak = max(peak, math.Abs(f.L), math.Abs(f.R))
	}
	return peak
}
