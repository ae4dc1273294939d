package metrics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/sim"
)

// TotalMomentum sums mass-weighted velocities over a snapshot.
func TotalMomentum(bodies []sim.BodySnapshot) mgl64.Vec3 {
	var p mgl64.Vec3
	for _, b := range bodies {
		p = p.Add(b.Velocity.Mul(b.Mass))
	}
	return p
}

// MomentumDrift tracks the worst absolute deviation of total linear
// momentum from the first observed frame. Gravity applies every pair force
// to both sides with opposite sign, so anything beyond floating-point noise
// here means the force pass is broken.
type MomentumDrift struct {
	name     string
	initial  mgl64.Vec3
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(f sim.Frame) {
	p := TotalMomentum(f.Bodies)

	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	m.maxDrift = math.Max(m.maxDrift, p.Sub(m.initial).Len())
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = mgl64.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}
