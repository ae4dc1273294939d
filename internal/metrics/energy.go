package metrics

import (
	"math"

	"github.com/shhawkins/three-body-simulator/internal/sim"
)

// TotalEnergy sums kinetic and pairwise gravitational potential energy over
// a snapshot. It uses the plain Newtonian potential; the force clamp for
// heavy mass products has no potential counterpart, so drift readings for
// clamped scenarios are indicative only.
func TotalEnergy(bodies []sim.BodySnapshot, g float64) float64 {
	var e float64
	for i, b := range bodies {
		e += 0.5 * b.Mass * b.Velocity.LenSqr()
		for j := i + 1; j < len(bodies); j++ {
			r := b.Position.Sub(bodies[j].Position).Len()
			if r > 0 {
				e -= g * b.Mass * bodies[j].Mass / r
			}
		}
	}
	return e
}

// EnergyDrift tracks the worst relative deviation of total mechanical
// energy from its value at the first observed frame.
type EnergyDrift struct {
	name     string
	g        float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g float64) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		g:    g,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(f sim.Frame) {
	energy := TotalEnergy(f.Bodies, e.g)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
