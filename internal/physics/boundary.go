package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
)

// Boundary is the circular limit in the ground plane. Distance is measured
// from the vertical (Y) axis using only the X and Z components, so the
// allowed region is a cylinder: altitude never triggers a violation.
type Boundary struct {
	Radius float64
}

// Violation identifies a body found outside the boundary.
type Violation struct {
	BodyID   string
	Position mgl64.Vec3
}

// Check scans bodies in order and reports the first whose ground-plane
// distance plus its own radius exceeds the boundary radius.
func (b Boundary) Check(bodies []*body.Body) (Violation, bool) {
	for _, bd := range bodies {
		axisDist := math.Hypot(bd.Position.X(), bd.Position.Z())
		if axisDist+Radius(bd.Mass) > b.Radius {
			return Violation{BodyID: bd.ID, Position: bd.Position}, true
		}
	}
	return Violation{}, false
}
