package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
)

func pairAt(dist float64) []*body.Body {
	return []*body.Body{
		testBody("a", 1, vec(0, 0, 0), mgl64.Vec3{}),
		testBody("b", 1, vec(dist, 0, 0), mgl64.Vec3{}),
	}
}

func TestDetectCollision(t *testing.T) {
	// Mass 1 bodies have radius 0.5, so centers collide below distance 1.
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"overlapping", 0.9, true},
		{"touching exactly", 1.0, false},
		{"separated", 1.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := DetectCollision(pairAt(tt.dist))
			if got != tt.want {
				t.Errorf("distance %v: collision = %v, expected %v", tt.dist, got, tt.want)
			}
		})
	}
}

func TestDetectCollisionReportsPairAndMidpoint(t *testing.T) {
	col, ok := DetectCollision(pairAt(0.5))
	if !ok {
		t.Fatal("expected a collision")
	}
	if col.BodyA != "a" || col.BodyB != "b" {
		t.Errorf("expected pair a/b, got %s/%s", col.BodyA, col.BodyB)
	}
	if col.Point != vec(0.25, 0, 0) {
		t.Errorf("expected midpoint %v, got %v", vec(0.25, 0, 0), col.Point)
	}
}

func TestDetectCollisionFirstPairWins(t *testing.T) {
	// All three bodies overlap; index order makes (a, b) the reported pair.
	bodies := []*body.Body{
		testBody("a", 1, vec(0, 0, 0), mgl64.Vec3{}),
		testBody("b", 1, vec(0.3, 0, 0), mgl64.Vec3{}),
		testBody("c", 1, vec(0.6, 0, 0), mgl64.Vec3{}),
	}

	col, ok := DetectCollision(bodies)
	if !ok {
		t.Fatal("expected a collision")
	}
	if col.BodyA != "a" || col.BodyB != "b" {
		t.Errorf("expected first pair a/b, got %s/%s", col.BodyA, col.BodyB)
	}
}

func TestDetectCollisionUsesMassRadii(t *testing.T) {
	// Mass 100 has radius 1.15; with a mass 1 partner (0.5) the threshold
	// is 1.65.
	heavy := testBody("heavy", 100, vec(0, 0, 0), mgl64.Vec3{})
	light := testBody("light", 1, vec(1.6, 0, 0), mgl64.Vec3{})

	if _, ok := DetectCollision([]*body.Body{heavy, light}); !ok {
		t.Error("expected collision at distance 1.6 with radii summing to 1.65")
	}

	light.Position = vec(1.7, 0, 0)
	if _, ok := DetectCollision([]*body.Body{heavy, light}); ok {
		t.Error("expected no collision at distance 1.7")
	}
}
