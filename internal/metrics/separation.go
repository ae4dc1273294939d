package metrics

import (
	"math"

	"github.com/shhawkins/three-body-simulator/internal/sim"
)

// MinSeparation records the smallest center-to-center distance seen between
// any pair of bodies during a run. Useful for judging how close a scenario
// comes to collision without terminating.
type MinSeparation struct {
	name    string
	min     float64
	samples int
}

func NewMinSeparation() *MinSeparation {
	return &MinSeparation{
		name: "min_separation",
		min:  math.Inf(1),
	}
}

func (m *MinSeparation) Name() string { return m.name }

func (m *MinSeparation) Observe(f sim.Frame) {
	for i := range f.Bodies {
		for j := i + 1; j < len(f.Bodies); j++ {
			d := f.Bodies[i].Position.Sub(f.Bodies[j].Position).Len()
			if d < m.min {
				m.min = d
			}
		}
	}
	m.samples++
}

func (m *MinSeparation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.min
}

func (m *MinSeparation) Reset() {
	m.min = math.Inf(1)
	m.samples = 0
}
