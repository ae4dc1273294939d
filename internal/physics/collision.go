package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
)

// Collision identifies an overlapping pair of bodies.
type Collision struct {
	BodyA string
	BodyB string
	Point mgl64.Vec3 // midpoint of the two centers at detection time
}

// DetectCollision scans unordered pairs in index order and reports the
// first pair whose center distance is below the sum of their radii. At most
// one collision is reported per call even if several pairs overlap.
func DetectCollision(bodies []*body.Body) (Collision, bool) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			bi, bj := bodies[i], bodies[j]

			dist := bi.Position.Sub(bj.Position).Len()
			if dist < Radius(bi.Mass)+Radius(bj.Mass) {
				return Collision{
					BodyA: bi.ID,
					BodyB: bj.ID,
					Point: bi.Position.Add(bj.Position).Mul(0.5),
				}, true
			}
		}
	}
	return Collision{}, false
}
