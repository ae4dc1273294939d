// Package sim is the simulation core: three gravitating bodies stepped by a
// lifecycle-aware controller.
//
// The package defines:
//
//   - [Controller]: owns the bodies and runs the fixed-step pipeline
//     (forces, integration, collision check, boundary check, trails)
//   - [Frame]: deep-copied per-step view for rendering and recording
//   - [Termination]: the expected end of a run (collision or boundary),
//     reported through frames rather than as an error
//   - [Options] and [BodyConfig]: run configuration
//
// # Lifecycle
//
// The controller moves through Setup, Running, Paused, and Terminated.
// Bodies may be edited in Setup and Paused only; a terminated run holds its
// final frame until Reset.
//
// # Example
//
//	ctrl, _ := sim.New(sim.DefaultBodies(), sim.DefaultOptions())
//	ctrl.Start()
//	frame := ctrl.Step(elapsed)
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. The core performs no internal
// threading; callers clock Step from a single goroutine and read frames
// between calls.
package sim
