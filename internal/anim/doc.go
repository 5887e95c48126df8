// Package anim implements the transition-state animation engine.
//
// An [Engine] owns a set of particles, a [Mode] and a [Surface] to draw
// on. Each call to [Engine.Frame] clears the surface and redraws every
// particle from the elapsed time alone, so frames are reproducible for
// a given clock reading:
//
//   - [Associative]: pairs of bodies converge on a shared target and bond
//   - [Dissociative]: single bodies stretch apart until the bond breaks
//
// The repeating render task is a [Loop] driven by a [Clock]. Start it with
// [Engine.Run] and stop it through the returned [Handle].
//
// # Thread Safety
//
// Engine methods lock internally, so a UI goroutine may call
// [Engine.SetMode] or [Engine.Resize] while the loop goroutine renders.
// Surfaces are only touched from inside Frame.
package anim
