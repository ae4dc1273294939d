package body

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

func TestTrailAppendAndOrder(t *testing.T) {
	tr := NewTrail(4)
	if tr.Len() != 0 {
		t.Fatalf("expected empty trail, got len %d", tr.Len())
	}

	tr.Append(vec(1, 0, 0))
	tr.Append(vec(2, 0, 0))
	tr.Append(vec(3, 0, 0))

	got := tr.Positions()
	want := []mgl64.Vec3{vec(1, 0, 0), vec(2, 0, 0), vec(3, 0, 0)}
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Append(vec(float64(i), 0, 0))
	}

	if tr.Len() != 3 {
		t.Fatalf("expected len 3 at capacity, got %d", tr.Len())
	}

	got := tr.Positions()
	want := []mgl64.Vec3{vec(3, 0, 0), vec(4, 0, 0), vec(5, 0, 0)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTrailLatest(t *testing.T) {
	tr := NewTrail(2)
	if _, ok := tr.Latest(); ok {
		t.Error("expected no latest position on empty trail")
	}

	tr.Append(vec(1, 2, 3))
	tr.Append(vec(4, 5, 6))
	tr.Append(vec(7, 8, 9))

	latest, ok := tr.Latest()
	if !ok {
		t.Fatal("expected a latest position")
	}
	if latest != vec(7, 8, 9) {
		t.Errorf("expected latest %v, got %v", vec(7, 8, 9), latest)
	}
}

func TestTrailReset(t *testing.T) {
	tr := NewTrail(5)
	for i := 0; i < 5; i++ {
		tr.Append(vec(float64(i), 0, 0))
	}

	tr.Reset(vec(9, 9, 9))

	if tr.Len() != 1 {
		t.Fatalf("expected len 1 after reset, got %d", tr.Len())
	}
	got := tr.Positions()
	if got[0] != vec(9, 9, 9) {
		t.Errorf("expected reset position %v, got %v", vec(9, 9, 9), got[0])
	}
	if tr.Cap() != 5 {
		t.Errorf("expected capacity unchanged at 5, got %d", tr.Cap())
	}
}

func TestTrailCapacityClamp(t *testing.T) {
	tr := NewTrail(0)
	if tr.Cap() != 1 {
		t.Errorf("expected capacity clamped to 1, got %d", tr.Cap())
	}
	tr.Append(vec(1, 0, 0))
	tr.Append(vec(2, 0, 0))
	if tr.Len() != 1 {
		t.Errorf("expected len 1, got %d", tr.Len())
	}
}

func TestTrailPositionsIsCopy(t *testing.T) {
	tr := NewTrail(3)
	tr.Append(vec(1, 0, 0))

	got := tr.Positions()
	got[0] = vec(42, 0, 0)

	again := tr.Positions()
	if again[0] != vec(1, 0, 0) {
		t.Errorf("expected stored position %v, got %v", vec(1, 0, 0), again[0])
	}
}
