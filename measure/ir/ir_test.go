package ir

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// makeExponentialDecay generates a synthetic IR with known RT60.
// h(t) = exp(-6.908 * t / rt60) where 6.908 = ln(10^3) ensures -60 dB at rt60.
func makeExponentialDecay(sampleRate, rt60, durationSec float64) []float64 {
	n := int(sampleRate * durationSec)
	ir := make([]float64, n)
	decayRate := 6.9078 / rt60
	for i := range ir {
		ir[i] = math.Exp(-decayRate * float64(i) / sampleRate)
	}
	return ir
}

func TestAnalyzerAnalyze(t *testing.T) {
	const sampleRate = 32000.0
	ir := makeExponentialDecay(sampleRate, 1.0, 3.0)

	m, err := NewAnalyzer(sampleRate).Analyze(ir)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(m.RT60-1) > 0.05 {
		t.Errorf("RT60 = %.3f, want 1.0 (±5%%)", m.RT60)
	}
	if math.Abs(m.EDT-1) > 0.05 {
		t.Errorf("EDT = %.3f, want 1.0 (±5%%)", m.EDT)
	}
	if math.Abs(m.DecayTime60-1) > 0.01 {
		t.Errorf("DecayTime60 = %.4f, want 1.0", m.DecayTime60)
	}
	if m.PeakIndex != 0 || m.Peak != 1 {
		t.Errorf("peak = %v at %d, want 1 at 0", m.Peak, m.PeakIndex)
	}
	if m.Flatness < 0 || m.Flatness > 1 {
		t.Errorf("Flatness = %v, want in [0,1]", m.Flatness)
	}
}

func TestAnalyzeStartsAtPeak(t *testing.T) {
	const sampleRate = 32000.0
	decay := makeExponentialDecay(sampleRate, 0.5, 1.5)
	ir := append(make([]float64, 800), decay...)

	m, err := NewAnalyzer(sampleRate).Analyze(ir)
	if err != nil {
		t.Fatal(err)
	}
	if m.PeakIndex != 800 {
		t.Fatalf("PeakIndex = %d, want 800", m.PeakIndex)
	}
	if math.Abs(m.RT60-0.5) > 0.025 {
		t.Fatalf("RT60 = %.3f, want 0.5", m.RT60)
	}
}

func TestSchroederIntegral(t *testing.T) {
	const sampleRate = 48000.0
	ir := makeExponentialDecay(sampleRate, 1.0, 3.0)

	schroeder, err := NewAnalyzer(sampleRate).SchroederIntegral(ir)
	if err != nil {
		t.Fatal(err)
	}
	if len(schroeder) != len(ir) {
		t.Fatalf("Schroeder length = %d, want %d", len(schroeder), len(ir))
	}
	if math.Abs(schroeder[0]) > 1e-9 {
		t.Fatalf("Schroeder[0] = %v, want 0 dB", schroeder[0])
	}
	for i := 1; i < len(schroeder); i++ {
		if schroeder[i] > schroeder[i-1] {
			t.Fatalf("Schroeder curve rises at %d: %v > %v", i, schroeder[i], schroeder[i-1])
		}
	}
	if got := schroeder[int(0.5*sampleRate)]; math.Abs(got+30) > 0.5 {
		t.Fatalf("Schroeder at 500ms = %.2f dB, want -30", got)
	}
}

func TestDecayTime(t *testing.T) {
	const sampleRate = 1000.0
	ir := []float64{0, 1, 0.5, -0.2, 0.02, 0.002, 0}

	a := NewAnalyzer(sampleRate)
	tests := []struct {
		db   float64
		want float64
	}{
		{db: -3, want: 0},
		{db: -10, want: 0.001},
		{db: -40, want: 0.003},
		{db: -60, want: 0.004},
	}
	for _, tt := range tests {
		got, err := a.DecayTime(ir, tt.db)
		if err != nil {
			t.Fatalf("DecayTime(%v): %v", tt.db, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("DecayTime(%v) = %v, want %v", tt.db, got, tt.want)
		}
	}
}

func TestAnalyzerErrors(t *testing.T) {
	if _, err := NewAnalyzer(48000).Analyze(nil); !errors.Is(err, ErrEmptyIR) {
		t.Fatalf("Analyze(nil) error = %v, want %v", err, ErrEmptyIR)
	}
	if _, err := NewAnalyzer(0).RT60([]float64{1}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("RT60 error = %v, want %v", err, ErrInvalidSampleRate)
	}
	if _, err := NewAnalyzer(48000).DecayTime([]float64{1}, 3); !errors.Is(err, ErrInvalidThreshold) {
		t.Fatalf("DecayTime error = %v, want %v", err, ErrInvalidThreshold)
	}
	if _, err := NewAnalyzer(48000).RT60([]float64{1, 1, 1, 1}); !errors.Is(err, ErrNoDecay) {
		t.Fatalf("RT60 of flat response error = %v, want %v", err, ErrNoDecay)
	}
}

func TestSpectralFlatness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	noise := make([]float64, 4096)
	for i := range noise {
		noise[i] = rng.Float64()*2 - 1
	}

	tone := make([]float64, 4096)
	for i := range tone {
		tone[i] = math.Sin(2 * math.Pi * 64 * float64(i) / 4096)
	}

	noiseFlat, err := SpectralFlatness(noise)
	if err != nil {
		t.Fatal(err)
	}
	toneFlat, err := SpectralFlatness(tone)
	if err != nil {
		t.Fatal(err)
	}

	if noiseFlat < 0.4 || noiseFlat > 1 {
		t.Fatalf("noise flatness = %v, want about 0.56", noiseFlat)
	}
	if toneFlat > 0.05 {
		t.Fatalf("tone flatness = %v, want close to 0", toneFlat)
	}

	silent, err := SpectralFlatness(make([]float64, 128))
	if err != nil || silent != 0 {
		t.Fatalf("silence flatness = %v, %v, want 0", silent, err)
	}

	if _, err := SpectralFlatness(make([]float64, 10)); !errors.Is(err, ErrShortSegment) {
		t.Fatalf("short segment error = %v, want %v", err, ErrShortSegment)
	}
}
