// Package ir analyses impulse responses of reverbs and rooms.
//
// Decay metrics are derived from the Schroeder backward integration of the
// squared impulse response:
//
//   - RT60: Reverberation time (T30, falling back to T20)
//   - EDT: Early Decay Time (extrapolated from 0 to -10 dB)
//   - T20, T30: Reverberation time from -5 to -25 dB and -5 to -35 dB
//
// [Analyzer.DecayTime] measures the envelope directly: the time from the
// peak until the response last exceeds a threshold below the peak. It does
// not extrapolate and is suited to comparing two renderings of the same
// effect. [SpectralFlatness] rates how noise-like a tail segment is, which
// separates a dense diffuse tail from a metallic, comb-like one.
//
// # Usage
//
//	analyzer := ir.NewAnalyzer(32000)
//	metrics, err := analyzer.Analyze(left)
//	fmt.Printf("RT60 = %.2f s, -60 dB after %.2f s\n", metrics.RT60, metrics.DecayTime60)
package ir
