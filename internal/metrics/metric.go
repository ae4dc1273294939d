// Package metrics reduces a stream of simulation frames to summary numbers
// for batch runs: conservation drift and closest-approach tracking.
package metrics

import "github.com/shhawkins/three-body-simulator/internal/sim"

// Metric consumes frames during a run and reduces them to a single value.
// Implementations are not thread-safe; the runner observes from one
// goroutine.
type Metric interface {
	Name() string
	Observe(f sim.Frame)
	Value() float64
	Reset()
}
