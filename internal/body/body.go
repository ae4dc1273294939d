// Package body defines the point masses the simulation moves around:
// kinematic state, a captured snapshot for resets, and a bounded trail of
// past positions for path rendering.
package body

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is one point mass. Position and velocity are mutated in place by the
// integrator; the initial snapshot is only touched through CaptureInitial
// and RestoreInitial.
type Body struct {
	ID   string
	Mass float64

	Position mgl64.Vec3
	Velocity mgl64.Vec3

	Trail *Trail

	initialPosition mgl64.Vec3
	initialVelocity mgl64.Vec3
}

// New constructs a body, captures its initial snapshot, and seeds the trail
// with the starting position.
func New(id string, mass float64, pos, vel mgl64.Vec3, trailCapacity int) *Body {
	b := &Body{
		ID:       id,
		Mass:     mass,
		Position: pos,
		Velocity: vel,
		Trail:    NewTrail(trailCapacity),
	}
	b.CaptureInitial()
	b.Trail.Reset(pos)
	return b
}

// CaptureInitial records the current position and velocity as the snapshot
// RestoreInitial returns to.
func (b *Body) CaptureInitial() {
	b.initialPosition = b.Position
	b.initialVelocity = b.Velocity
}

// RestoreInitial moves the body back to its captured snapshot and truncates
// the trail to that single position.
func (b *Body) RestoreInitial() {
	b.Position = b.initialPosition
	b.Velocity = b.initialVelocity
	b.Trail.Reset(b.Position)
}

// InitialPosition returns the position captured by the last CaptureInitial.
func (b *Body) InitialPosition() mgl64.Vec3 { return b.initialPosition }

// InitialVelocity returns the velocity captured by the last CaptureInitial.
func (b *Body) InitialVelocity() mgl64.Vec3 { return b.initialVelocity }

// Finite reports whether every component of v is a finite number.
func Finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
