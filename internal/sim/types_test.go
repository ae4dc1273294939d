package sim

import (
	"testing"
)

func TestRunStateString(t *testing.T) {
	tests := []struct {
		state RunState
		want  string
	}{
		{StateSetup, "setup"},
		{StateRunning, "running"},
		{StatePaused, "paused"},
		{StateTerminated, "terminated"},
		{RunState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("RunState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestCauseString(t *testing.T) {
	tests := []struct {
		cause Cause
		want  string
	}{
		{CauseCollision, "collision"},
		{CauseBoundary, "boundary"},
		{Cause(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cause.String(); got != tt.want {
			t.Errorf("Cause(%d).String() = %q, want %q", tt.cause, got, tt.want)
		}
	}
}

func TestDefaultOptionsValid(t *testing.T) {
	if err := validateOptions(DefaultOptions()); err != nil {
		t.Errorf("DefaultOptions failed validation: %v", err)
	}
}

func TestDefaultBodiesValid(t *testing.T) {
	configs := DefaultBodies()

	if len(configs) != BodyCount {
		t.Fatalf("expected %d default bodies, got %d", BodyCount, len(configs))
	}
	if err := validateConfigs(configs); err != nil {
		t.Errorf("DefaultBodies failed validation: %v", err)
	}

	// The stock arrangement is momentum-neutral so the system does not
	// drift toward the boundary.
	var px, py, pz float64
	for _, cfg := range configs {
		px += cfg.Mass * cfg.Velocity.X()
		py += cfg.Mass * cfg.Velocity.Y()
		pz += cfg.Mass * cfg.Velocity.Z()
	}
	if px != 0 || py != 0 || pz != 0 {
		t.Errorf("expected zero net momentum, got (%v, %v, %v)", px, py, pz)
	}
}
