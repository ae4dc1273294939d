package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
)

func TestBoundaryCheck(t *testing.T) {
	b := Boundary{Radius: 60}

	// Mass 1 has radius 0.5, so the center may reach 59.5 from the axis.
	tests := []struct {
		name string
		pos  mgl64.Vec3
		want bool
	}{
		{"well inside", vec(10, 0, 10), false},
		{"at the limit", vec(59.5, 0, 0), false},
		{"just outside", vec(59.6, 0, 0), true},
		{"outside along z", vec(0, 0, -59.6), true},
		{"outside diagonally", vec(45, 0, 45), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies := []*body.Body{testBody("a", 1, tt.pos, mgl64.Vec3{})}
			_, got := b.Check(bodies)
			if got != tt.want {
				t.Errorf("position %v: violation = %v, expected %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestBoundaryIgnoresAltitude(t *testing.T) {
	b := Boundary{Radius: 60}
	bodies := []*body.Body{testBody("high", 1, vec(0, 1000, 0), mgl64.Vec3{})}

	if _, ok := b.Check(bodies); ok {
		t.Error("expected no violation for a body far up the vertical axis")
	}
}

func TestBoundaryFirstBodyWins(t *testing.T) {
	b := Boundary{Radius: 60}
	bodies := []*body.Body{
		testBody("inside", 1, vec(0, 0, 0), mgl64.Vec3{}),
		testBody("out1", 1, vec(70, 0, 0), mgl64.Vec3{}),
		testBody("out2", 1, vec(0, 0, 80), mgl64.Vec3{}),
	}

	v, ok := b.Check(bodies)
	if !ok {
		t.Fatal("expected a violation")
	}
	if v.BodyID != "out1" {
		t.Errorf("expected first offender out1, got %s", v.BodyID)
	}
	if v.Position != vec(70, 0, 0) {
		t.Errorf("expected violation position %v, got %v", vec(70, 0, 0), v.Position)
	}
}

func TestBoundaryAccountsForBodyRadius(t *testing.T) {
	b := Boundary{Radius: 60}

	// Mass 1000 has radius 1.5, so its center must stay within 58.5.
	heavy := testBody("heavy", 1000, vec(58.6, 0, 0), mgl64.Vec3{})
	if _, ok := b.Check([]*body.Body{heavy}); !ok {
		t.Error("expected violation once radius pushes past the boundary")
	}

	heavy.Position = vec(58.4, 0, 0)
	if _, ok := b.Check([]*body.Body{heavy}); ok {
		t.Error("expected no violation with the full radius inside")
	}
}
