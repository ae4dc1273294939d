package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
)

// BodyCount is the number of bodies a controller simulates.
const BodyCount = 3

// RunState is the controller's lifecycle state.
type RunState int

const (
	StateSetup RunState = iota
	StateRunning
	StatePaused
	StateTerminated
)

func (s RunState) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Cause tags what ended a run.
type Cause int

const (
	CauseCollision Cause = iota
	CauseBoundary
)

func (c Cause) String() string {
	switch c {
	case CauseCollision:
		return "collision"
	case CauseBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Termination records the terminal outcome of a run. It is an expected
// result, not an error: the controller reports it through frames and holds
// in StateTerminated until Reset.
type Termination struct {
	Cause  Cause
	Bodies []string   // the colliding pair, or the single out-of-bounds body
	Point  mgl64.Vec3 // collision midpoint, or the offending body's position
}

// BodyConfig seeds one body at initialization.
type BodyConfig struct {
	ID       string
	Mass     float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Options carries the scalar run configuration.
type Options struct {
	G               float64 // gravitational constant, tuned for looks
	BoundaryRadius  float64 // ground-plane limit from the vertical axis
	FreePlay        bool    // disables the boundary entirely
	TrailCapacity   int     // positions retained per body
	SpeedMultiplier float64 // scales dt per sub-step, zero freezes time
	TimeStep        float64 // fixed quantum consumed per sub-step, in seconds
	MaxSubSteps     int     // sub-step cap per Step call
}

// Defaults for Options and the stock scenario.
const (
	DefaultG               = 0.3
	DefaultBoundaryRadius  = 60.0
	DefaultTrailCapacity   = 400
	DefaultSpeedMultiplier = 1.0
	DefaultTimeStep        = 1.0 / 60.0
	DefaultMaxSubSteps     = 8
)

// DefaultOptions returns the stock run configuration.
func DefaultOptions() Options {
	return Options{
		G:               DefaultG,
		BoundaryRadius:  DefaultBoundaryRadius,
		FreePlay:        false,
		TrailCapacity:   DefaultTrailCapacity,
		SpeedMultiplier: DefaultSpeedMultiplier,
		TimeStep:        DefaultTimeStep,
		MaxSubSteps:     DefaultMaxSubSteps,
	}
}

// DefaultBodies returns the stock arrangement: a symmetric light pair
// counter-orbiting in the ground plane around a heavier mass at rest in the
// center. It stays well inside the default boundary.
func DefaultBodies() []BodyConfig {
	return []BodyConfig{
		{ID: "alpha", Mass: 1.0, Position: mgl64.Vec3{-5, 0, 0}, Velocity: mgl64.Vec3{0, 0, 0.42}},
		{ID: "beta", Mass: 1.0, Position: mgl64.Vec3{5, 0, 0}, Velocity: mgl64.Vec3{0, 0, -0.42}},
		{ID: "gamma", Mass: 1.5, Position: mgl64.Vec3{0, 0, 0}, Velocity: mgl64.Vec3{0, 0, 0}},
	}
}

// ForceModel produces per-body accelerations from current positions.
type ForceModel interface {
	Accelerations(bodies []*body.Body) []mgl64.Vec3
}

// Integrator advances body kinematics in place by dt given accelerations
// computed from the pre-step positions.
type Integrator interface {
	Step(bodies []*body.Body, acc []mgl64.Vec3, dt float64)
}

// Frame is the per-step view handed to callers. Everything in it is a deep
// copy; holding a frame never aliases controller state.
type Frame struct {
	State       RunState
	Time        float64 // simulated seconds since the run started
	Bodies      []BodySnapshot
	Termination *Termination // nil unless State is StateTerminated
}

// BodySnapshot is one body's state at frame time.
type BodySnapshot struct {
	ID       string
	Mass     float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Trail    []mgl64.Vec3 // oldest first
}
