package physics

import (
	"math"
	"testing"
)

func TestRadiusLightMassesShareFloor(t *testing.T) {
	for _, mass := range []float64{0.01, 0.1, 0.5, 0.9, 1.0} {
		if r := Radius(mass); r != 0.5 {
			t.Errorf("Radius(%v) = %v, expected floor 0.5", mass, r)
		}
	}
}

func TestRadiusHeavyMasses(t *testing.T) {
	tests := []struct {
		mass float64
		want float64
	}{
		{10, 0.80},
		{100, 1.15},
		{1000, 1.50},
	}

	for _, tt := range tests {
		if r := Radius(tt.mass); math.Abs(r-tt.want) > 1e-9 {
			t.Errorf("Radius(%v) = %v, expected %v", tt.mass, r, tt.want)
		}
	}
}

func TestRadiusBranchSeamAtOne(t *testing.T) {
	// The branches disagree at mass 1: 0.5 on the light side, ~0.45 just
	// above. Collision distances in saved runs depend on this seam.
	atOne := Radius(1)
	justAbove := Radius(1 + 1e-9)

	if atOne != 0.5 {
		t.Fatalf("Radius(1) = %v, expected 0.5", atOne)
	}
	if justAbove >= 0.46 {
		t.Errorf("Radius(1+eps) = %v, expected ~0.45", justAbove)
	}
}

func TestRadiusMonotoneAboveOne(t *testing.T) {
	prev := Radius(1.001)
	for mass := 1.5; mass <= 500; mass *= 1.5 {
		r := Radius(mass)
		if r <= prev {
			t.Errorf("Radius(%v) = %v, expected > %v", mass, r, prev)
		}
		prev = r
	}
}
