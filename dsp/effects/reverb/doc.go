// Package reverb provides a stereo algorithmic reverb for real-time use.
//
// [Reverb] implements the Griesinger topology from Dattorro's "Effect Design"
// paper on top of the delay engine in
// github.com/cwbudde/algo-fxengine/dsp/fxengine: four cascaded all-pass
// diffusers on the summed input, then two cross-coupled loops of
// modulated delay, one-pole damping and two further all-pass diffusers.
// Loop A writes the left wet signal, loop B the right one.
//
// The reverb keeps all delay memory in one arena supplied by the caller and
// never allocates while processing:
//
//	arena := make([]float32, reverb.ArenaSize)
//	r, err := reverb.New(arena)
//	if err != nil {
//		return err
//	}
//	r.SetAmount(0.3)
//	r.SetInputGain(0.5)
//	r.SetTime(0.7)
//	r.Process(frames)
package reverb
