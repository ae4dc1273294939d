package physics

import "math"

// Radius maps a body's mass to the radius used for collisions, boundary
// checks, and rendering. Masses up to 1 share a floor of 0.5; heavier
// masses grow logarithmically. The two branches disagree at mass 1 (0.5
// versus 0.45), which is long-shipped behavior that collision distances
// depend on; keep both branches as they are.
func Radius(mass float64) float64 {
	if mass <= 1 {
		return math.Max(0.5, math.Cbrt(mass)*0.45)
	}
	return 0.45 + 0.35*math.Log10(mass)
}
