package testutil

import (
	"math"
	"testing"
)

func TestStereoImpulse(t *testing.T) {
	imp := StereoImpulse(8, 1, -0.5)
	if len(imp) != 8 {
		t.Fatalf("len = %d, want 8", len(imp))
	}
	if imp[0].L != 1 || imp[0].R != -0.5 {
		t.Fatalf("frame 0 = %+v, want {1 -0.5}", imp[0])
	}
	for i, f := range imp[1:] {
		if f.L != 0 || f.R != 0 {
			t.Fatalf("frame %d = %+v, want silence", i+1, f)
		}
	}
	if got := StereoImpulse(0, 1, 1); len(got) != 0 {
		t.Fatalf("zero length impulse has %d frames", len(got))
	}
}

func TestStereoNoiseDeterministic(t *testing.T) {
	a := StereoNoise(42, 0.5, 64)
	b := StereoNoise(42, 0.5, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at frame %d", i)
		}
		if math.Abs(a[i].L) > 0.5 || math.Abs(a[i].R) > 0.5 {
			t.Fatalf("frame %d = %+v exceeds amplitude", i, a[i])
		}
	}

	c := StereoNoise(43, 0.5, 64)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestStereoSine(t *testing.T) {
	s := StereoSine(1000, 48000, 1, 48)
	if math.Abs(s[0].L) > 1e-15 || s[12].L != s[12].R {
		t.Fatalf("unexpected sine frames: %+v %+v", s[0], s[12])
	}
}

func TestChannels(t *testing.T) {
	frames := StereoNoise(1, 1, 16)
	left := LeftChannel(frames)
	right := RightChannel(frames)
	for i, f := range frames {
		if left[i] != f.L || right[i] != f.R {
			t.Fatalf("frame %d: channels %v/%v, want %+v", i, left[i], right[i], f)
		}
	}

	clone := CloneFrames(frames)
	clone[0].L = 99
	if frames[0].L == 99 {
		t.Fatal("CloneFrames shares memory")
	}
}
