package ir

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// minFlatnessSize is the shortest FFT used for spectral flatness.
const minFlatnessSize = 64

// ErrShortSegment is returned when a segment is too short for a spectrum.
var ErrShortSegment = errors.New("ir: segment too short for spectral analysis")

// SpectralFlatness returns the ratio of geometric to arithmetic mean of the
// Hann-windowed power spectrum of segment, excluding DC. White noise scores
// about 0.56, a pure tone close to 0. Only the first power-of-two samples of
// segment are used.
func SpectralFlatness(segment []float64) (float64, error) {
	n := 1
	for n*2 <= len(segment) {
		n *= 2
	}
	if len(segment) < minFlatnessSize {
		return 0, fmt.Errorf("%w: %d < %d", ErrShortSegment, len(segment), minFlatnessSize)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("ir: failed to create FFT plan: %w", err)
	}

	windowed := make([]float64, n)
	copy(windowed, segment[:n])
	vecmath.MulBlockInPlace(windowed, hann(n))

	spectrum := make([]complex128, n)
	for i, v := range windowed {
		spectrum[i] = complex(v, 0)
	}
	if err := plan.Forward(spectrum, spectrum); err != nil {
		return 0, fmt.Errorf("ir: FFT failed: %w", err)
	}

	bins := n / 2
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spectrum[k+1])
		im[k] = imag(spectrum[k+1])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	const floor = 1e-30

	var logSum, sum float64
	for _, p := range power {
		sum += p
		logSum += math.Log(p + floor)
	}
	if sum == 0 {
		return 0, nil
	}

	geometric := math.Exp(logSum / float64(bins))
	arithmetic := sum / float64(bins)

	return geometric / arithmetic, nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}
