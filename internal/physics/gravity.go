package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
)

// clampThreshold is the mass product above which the force magnitude is
// dampened to keep heavy pairings from flinging bodies off screen.
const clampThreshold = 100.0

// Gravity computes pairwise gravitational accelerations over a body set.
type Gravity struct {
	G float64
}

// NewGravity returns a force model with gravitational constant g.
func NewGravity(g float64) *Gravity {
	return &Gravity{G: g}
}

// Accelerations returns the net acceleration on each body, index-aligned
// with bodies. Each unordered pair is visited once and both sides receive
// the same force with opposite sign, so internal forces can never change
// total momentum.
func (g *Gravity) Accelerations(bodies []*body.Body) []mgl64.Vec3 {
	acc := make([]mgl64.Vec3, len(bodies))
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			bi, bj := bodies[i], bodies[j]

			delta := bj.Position.Sub(bi.Position)
			distSq := delta.LenSqr()
			if distSq == 0 {
				// Coincident centers. Collision detection ends the run
				// before overlap this deep; skip rather than divide by zero.
				continue
			}

			mag := g.forceMagnitude(bi.Mass, bj.Mass, distSq)
			dir := delta.Mul(1 / math.Sqrt(distSq))

			acc[i] = acc[i].Add(dir.Mul(mag / bi.Mass))
			acc[j] = acc[j].Sub(dir.Mul(mag / bj.Mass))
		}
	}
	return acc
}

// forceMagnitude applies Newtonian attraction, dampening the result above
// clampThreshold by 1/log10(massProduct/10). The divisor is exactly 1 at
// the threshold, so the clamp kicks in without a jump.
func (g *Gravity) forceMagnitude(mi, mj, distSq float64) float64 {
	product := mi * mj
	mag := g.G * product / distSq
	if product > clampThreshold {
		mag /= math.Log10(product / 10)
	}
	return mag
}
