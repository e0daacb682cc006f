package ir

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-fxengine/dsp/core"
)

// Errors returned by IR analysis functions.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrInvalidThreshold  = errors.New("ir: threshold must be below 0 dB")
	ErrNoDecay           = errors.New("ir: insufficient decay for RT calculation")
)

// Metrics holds impulse response analysis results.
type Metrics struct {
	RT60        float64 // reverberation time in seconds (extrapolated from T30 or T20)
	EDT         float64 // early decay time in seconds (0 to -10 dB)
	T20         float64 // RT from -5 to -25 dB slope
	T30         float64 // RT from -5 to -35 dB slope
	DecayTime60 float64 // seconds from the peak until the envelope stays below -60 dB
	Peak        float64 // absolute maximum
	PeakIndex   int     // sample index of the absolute maximum
	Flatness    float64 // spectral flatness of the second half of the response, 0 if too short
}

// Analyzer computes IR metrics from impulse response data.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an IR analyzer with the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze computes all metrics. Decay metrics start at the peak.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if err := a.check(ir); err != nil {
		return Metrics{}, err
	}

	peakIdx, peak := findPeak(ir)
	fromPeak := ir[peakIdx:]
	schroeder := schroederIntegral(fromPeak)

	m := Metrics{
		Peak:        peak,
		PeakIndex:   peakIdx,
		EDT:         a.reverbTime(schroeder, 0, -10),
		T20:         a.reverbTime(schroeder, -5, -25),
		T30:         a.reverbTime(schroeder, -5, -35),
		DecayTime60: float64(decayLength(fromPeak, peak, -60)) / a.SampleRate,
	}

	if m.T30 > 0 {
		m.RT60 = m.T30
	} else {
		m.RT60 = m.T20
	}

	if flat, err := SpectralFlatness(ir[len(ir)/2:]); err == nil {
		m.Flatness = flat
	}

	return m, nil
}

// SchroederIntegral computes the Schroeder backward integration of the
// squared impulse response, normalized to the total energy, in dB.
func (a *Analyzer) SchroederIntegral(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}

	return schroederIntegral(ir), nil
}

// RT60 returns T30 when the response decays by 35 dB and T20 otherwise.
func (a *Analyzer) RT60(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	schroeder := schroederIntegral(ir)
	if rt := a.reverbTime(schroeder, -5, -35); rt > 0 {
		return rt, nil
	}
	if rt := a.reverbTime(schroeder, -5, -25); rt > 0 {
		return rt, nil
	}

	return 0, ErrNoDecay
}

// DecayTime returns the time in seconds from the peak to the last sample
// whose magnitude is above thresholdDB relative to the peak. A response that
// is still above the threshold at its end reports its full length after the
// peak.
func (a *Analyzer) DecayTime(ir []float64, thresholdDB float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}
	if !(thresholdDB < 0) {
		return 0, ErrInvalidThreshold
	}

	peakIdx, peak := findPeak(ir)
	return float64(decayLength(ir[peakIdx:], peak, thresholdDB)) / a.SampleRate, nil
}

func (a *Analyzer) check(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmptyIR
	}
	if a.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// reverbTime fits a line to the Schroeder curve between startDB and endDB
// and extrapolates it to -60 dB. It returns 0 when the curve never reaches
// endDB or does not fall.
func (a *Analyzer) reverbTime(schroeder []float64, startDB, endDB float64) float64 {
	startIdx, endIdx := -1, -1
	for i, v := range schroeder {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}
		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx <= startIdx {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := startIdx; i <= endIdx; i++ {
		x := float64(i - startIdx)
		y := schroeder[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	n := float64(endIdx - startIdx + 1)
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	// dB per sample
	slope := (n*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func schroederIntegral(ir []float64) []float64 {
	out := make([]float64, len(ir))

	var tail float64
	for i := len(ir) - 1; i >= 0; i-- {
		tail += ir[i] * ir[i]
		out[i] = tail
	}

	total := out[0]
	if total <= 0 {
		return out
	}

	for i, v := range out {
		if v <= 0 {
			out[i] = -200
			continue
		}
		out[i] = 10 * math.Log10(v/total)
	}

	return out
}

// decayLength returns the index of the last sample of x above thresholdDB
// relative to peak.
func decayLength(x []float64, peak, thresholdDB float64) int {
	limit := peak * core.DBToLinear(thresholdDB)
	for i := len(x) - 1; i >= 0; i-- {
		if math.Abs(x[i]) > limit {
			return i
		}
	}
	return 0
}

func findPeak(ir []float64) (int, float64) {
	idx, peak := 0, 0.0
	for i, v := range ir {
		if av := math.Abs(v); av > peak {
			idx, peak = i, av
		}
	}
	return idx, peak
}
