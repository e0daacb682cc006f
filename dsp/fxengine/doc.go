// Package fxengine provides a delay-line engine for small algorithmic
// effects such as reverbs and diffusers.
//
// An [Engine] owns one caller-supplied sample arena that is partitioned once,
// at construction, into named circular delay lines of fixed length. Effects
// run one [Context] per sample tick:
//
//	var c fxengine.Context
//	for i := range frames {
//		e.Start(&c)
//		c.Read(frames[i].Mono(), gain)
//		c.ReadDelayed(ap, ap.Scaled(size), kap)
//		c.WriteAllPass(ap, -kap)
//		...
//	}
//
// The accumulator in the context is the only per-tick state. Filter state
// that must survive between ticks is owned by the effect and passed to
// [Context.LowPass] and [Context.HighPass] by pointer.
//
// Delayed samples are stored in the arena as float32 values restricted to
// the grid of the engine [Format], so a 12-bit engine reproduces the
// precision of fixed-point hardware delay memory.
//
// None of the per-tick operations allocate or block. An Engine is not safe
// for concurrent use.
package fxengine
