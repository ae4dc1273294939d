// Package integrators advances body kinematics over fixed time steps.
package integrators

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
)

// SymplecticEuler is the semi-implicit Euler scheme: every velocity is
// updated from the supplied accelerations first, then every position is
// updated from the already-updated velocities. The two phases must not be
// interleaved per body, and acc must have been computed against the
// pre-step positions; both together are what keeps orbits from spiraling
// the way explicit Euler does.
type SymplecticEuler struct{}

// NewSymplecticEuler returns the integrator.
func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

// Step advances all bodies in place by dt. acc is index-aligned with
// bodies.
func (SymplecticEuler) Step(bodies []*body.Body, acc []mgl64.Vec3, dt float64) {
	for i, b := range bodies {
		b.Velocity = b.Velocity.Add(acc[i].Mul(dt))
	}
	for _, b := range bodies {
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
	}
}
