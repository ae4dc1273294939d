package sim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/body"
	"github.com/shhawkins/three-body-simulator/internal/integrators"
	"github.com/shhawkins/three-body-simulator/internal/physics"
)

// Controller owns the bodies and runs the step pipeline: one force pass
// over all unique pairs, one integrator pass, collision check, boundary
// check, trail append. It performs no internal threading and no I/O; the
// caller clocks it through Step and sequences all access.
type Controller struct {
	bodies []*body.Body
	opts   Options

	force ForceModel
	integ Integrator

	state RunState
	term  *Termination

	time  float64 // simulated seconds in the current run
	accum float64 // elapsed real seconds not yet converted into sub-steps
}

// New constructs a controller in StateSetup. configs must hold exactly
// BodyCount entries with unique ids, positive finite masses, and finite
// vectors.
func New(configs []BodyConfig, opts Options) (*Controller, error) {
	c := &Controller{}
	if err := c.Initialize(configs, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize replaces the body set and options wholesale and returns the
// controller to StateSetup. On validation failure nothing changes.
func (c *Controller) Initialize(configs []BodyConfig, opts Options) error {
	if err := validateConfigs(configs); err != nil {
		return err
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	bodies := make([]*body.Body, len(configs))
	for i, cfg := range configs {
		bodies[i] = body.New(cfg.ID, cfg.Mass, cfg.Position, cfg.Velocity, opts.TrailCapacity)
	}

	c.bodies = bodies
	c.opts = opts
	c.force = physics.NewGravity(opts.G)
	c.integ = integrators.NewSymplecticEuler()
	c.state = StateSetup
	c.term = nil
	c.time = 0
	c.accum = 0
	return nil
}

// State returns the current run state.
func (c *Controller) State() RunState { return c.state }

// Options returns a copy of the active options.
func (c *Controller) Options() Options { return c.opts }

// Start begins a run from StateSetup. It refreshes the snapshot that
// Reset(false) restores, so edits made during setup become the new initial
// conditions.
func (c *Controller) Start() error {
	if c.state != StateSetup {
		return fmt.Errorf("%w: start from %s", ErrIllegalTransition, c.state)
	}
	for _, b := range c.bodies {
		b.CaptureInitial()
	}
	c.state = StateRunning
	c.time = 0
	c.accum = 0
	return nil
}

// Pause suspends stepping. Body edits are legal while paused.
func (c *Controller) Pause() error {
	if c.state != StateRunning {
		return fmt.Errorf("%w: pause from %s", ErrIllegalTransition, c.state)
	}
	c.state = StatePaused
	return nil
}

// Resume continues a paused run.
func (c *Controller) Resume() error {
	if c.state != StatePaused {
		return fmt.Errorf("%w: resume from %s", ErrIllegalTransition, c.state)
	}
	c.state = StateRunning
	return nil
}

// Stop abandons a running simulation and returns to StateSetup, leaving
// bodies and trails exactly where they are so the stopped arrangement can
// be edited and re-run.
func (c *Controller) Stop() error {
	if c.state != StateRunning {
		return fmt.Errorf("%w: stop from %s", ErrIllegalTransition, c.state)
	}
	c.state = StateSetup
	c.accum = 0
	return nil
}

// Reset leaves StateTerminated for StateSetup. With toDefaults the current
// configuration is abandoned for the stock one; otherwise every body
// returns to the snapshot captured by the last Start and its trail is
// truncated to that position.
func (c *Controller) Reset(toDefaults bool) error {
	if c.state != StateTerminated {
		return fmt.Errorf("%w: reset from %s", ErrIllegalTransition, c.state)
	}
	if toDefaults {
		return c.Initialize(DefaultBodies(), DefaultOptions())
	}
	for _, b := range c.bodies {
		b.RestoreInitial()
	}
	c.state = StateSetup
	c.term = nil
	c.time = 0
	c.accum = 0
	return nil
}

// SetBodyMass changes a body's mass. Legal in StateSetup and StatePaused.
func (c *Controller) SetBodyMass(id string, mass float64) error {
	if !c.editable() {
		return fmt.Errorf("%w: edit body in %s", ErrIllegalTransition, c.state)
	}
	b, err := c.findBody(id)
	if err != nil {
		return err
	}
	if err := validateMass(id, mass); err != nil {
		return err
	}
	b.Mass = mass
	return nil
}

// SetBodyPosition moves a body. Legal in StateSetup and StatePaused. In
// setup the trail is re-seeded at the new position, since the pre-run
// history is meaningless; while paused the recorded path is kept.
func (c *Controller) SetBodyPosition(id string, pos mgl64.Vec3) error {
	if !c.editable() {
		return fmt.Errorf("%w: edit body in %s", ErrIllegalTransition, c.state)
	}
	b, err := c.findBody(id)
	if err != nil {
		return err
	}
	if !body.Finite(pos) {
		return fmt.Errorf("%w: body %q position has a non-finite component", ErrInvalidConfig, id)
	}
	b.Position = pos
	if c.state == StateSetup {
		b.Trail.Reset(pos)
	}
	return nil
}

// SetBodyVelocity changes a body's velocity. Legal in StateSetup and
// StatePaused.
func (c *Controller) SetBodyVelocity(id string, vel mgl64.Vec3) error {
	if !c.editable() {
		return fmt.Errorf("%w: edit body in %s", ErrIllegalTransition, c.state)
	}
	b, err := c.findBody(id)
	if err != nil {
		return err
	}
	if !body.Finite(vel) {
		return fmt.Errorf("%w: body %q velocity has a non-finite component", ErrInvalidConfig, id)
	}
	b.Velocity = vel
	return nil
}

// SetFreePlay toggles the boundary check. Legal in any state; it takes
// effect on the next sub-step.
func (c *Controller) SetFreePlay(on bool) {
	c.opts.FreePlay = on
}

// SetSpeed changes the speed multiplier. Zero freezes simulated time while
// sub-steps keep consuming the accumulator.
func (c *Controller) SetSpeed(multiplier float64) error {
	if multiplier < 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return fmt.Errorf("%w: speed multiplier %v", ErrInvalidConfig, multiplier)
	}
	c.opts.SpeedMultiplier = multiplier
	return nil
}

// Step consumes elapsed real seconds and advances a whole number of fixed
// sub-steps, at most MaxSubSteps. When the cap is hit the remaining backlog
// is dropped, so a caller that fell behind gets a slowdown instead of a
// death spiral, and Step(0) can never advance the simulation. Outside
// StateRunning the call is a no-op returning the current frame.
func (c *Controller) Step(elapsed float64) Frame {
	if c.state != StateRunning || math.IsNaN(elapsed) || math.IsInf(elapsed, 0) || elapsed <= 0 {
		return c.Frame()
	}

	c.accum += elapsed
	for steps := 0; c.accum >= c.opts.TimeStep && c.state == StateRunning; steps++ {
		if steps == c.opts.MaxSubSteps {
			c.accum = 0
			break
		}
		c.accum -= c.opts.TimeStep
		c.stepOnce(c.opts.TimeStep * c.opts.SpeedMultiplier)
	}
	return c.Frame()
}

// stepOnce runs one pipeline pass at integration step dt. Detection runs on
// the post-integration positions; the trail only records positions from
// steps that survive both checks, so a trail never ends inside another body
// or beyond the boundary.
func (c *Controller) stepOnce(dt float64) {
	acc := c.force.Accelerations(c.bodies)
	c.integ.Step(c.bodies, acc, dt)
	c.time += dt

	if col, ok := physics.DetectCollision(c.bodies); ok {
		c.terminate(Termination{
			Cause:  CauseCollision,
			Bodies: []string{col.BodyA, col.BodyB},
			Point:  col.Point,
		})
		return
	}

	if !c.opts.FreePlay {
		boundary := physics.Boundary{Radius: c.opts.BoundaryRadius}
		if v, ok := boundary.Check(c.bodies); ok {
			c.terminate(Termination{
				Cause:  CauseBoundary,
				Bodies: []string{v.BodyID},
				Point:  v.Position,
			})
			return
		}
	}

	for _, b := range c.bodies {
		b.Trail.Append(b.Position)
	}
}

func (c *Controller) terminate(t Termination) {
	c.state = StateTerminated
	c.term = &t
	c.accum = 0
}

// Frame snapshots the controller for external consumers. Every slice and
// vector in the result is a copy.
func (c *Controller) Frame() Frame {
	f := Frame{
		State:  c.state,
		Time:   c.time,
		Bodies: make([]BodySnapshot, len(c.bodies)),
	}
	for i, b := range c.bodies {
		f.Bodies[i] = BodySnapshot{
			ID:       b.ID,
			Mass:     b.Mass,
			Position: b.Position,
			Velocity: b.Velocity,
			Trail:    b.Trail.Positions(),
		}
	}
	if c.term != nil {
		t := *c.term
		t.Bodies = append([]string(nil), c.term.Bodies...)
		f.Termination = &t
	}
	return f
}

func (c *Controller) editable() bool {
	return c.state == StateSetup || c.state == StatePaused
}

func (c *Controller) findBody(id string) (*body.Body, error) {
	for _, b := range c.bodies {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBody, id)
}

func validateConfigs(configs []BodyConfig) error {
	if len(configs) != BodyCount {
		return fmt.Errorf("%w: want %d bodies, got %d", ErrInvalidConfig, BodyCount, len(configs))
	}
	seen := make(map[string]struct{}, len(configs))
	for _, cfg := range configs {
		if cfg.ID == "" {
			return fmt.Errorf("%w: empty body id", ErrInvalidConfig)
		}
		if _, dup := seen[cfg.ID]; dup {
			return fmt.Errorf("%w: duplicate body id %q", ErrInvalidConfig, cfg.ID)
		}
		seen[cfg.ID] = struct{}{}
		if err := validateMass(cfg.ID, cfg.Mass); err != nil {
			return err
		}
		if !body.Finite(cfg.Position) || !body.Finite(cfg.Velocity) {
			return fmt.Errorf("%w: body %q has a non-finite component", ErrInvalidConfig, cfg.ID)
		}
	}
	return nil
}

func validateMass(id string, mass float64) error {
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return fmt.Errorf("%w: body %q mass %v, must be positive and finite", ErrInvalidConfig, id, mass)
	}
	return nil
}

func validateOptions(opts Options) error {
	switch {
	case math.IsNaN(opts.G) || math.IsInf(opts.G, 0):
		return fmt.Errorf("%w: gravitational constant %v", ErrInvalidConfig, opts.G)
	case opts.BoundaryRadius <= 0 || math.IsNaN(opts.BoundaryRadius):
		return fmt.Errorf("%w: boundary radius %v", ErrInvalidConfig, opts.BoundaryRadius)
	case opts.TrailCapacity < 1:
		return fmt.Errorf("%w: trail capacity %d", ErrInvalidConfig, opts.TrailCapacity)
	case opts.SpeedMultiplier < 0 || math.IsNaN(opts.SpeedMultiplier) || math.IsInf(opts.SpeedMultiplier, 0):
		return fmt.Errorf("%w: speed multiplier %v", ErrInvalidConfig, opts.SpeedMultiplier)
	case opts.TimeStep <= 0 || math.IsNaN(opts.TimeStep) || math.IsInf(opts.TimeStep, 0):
		return fmt.Errorf("%w: time step %v", ErrInvalidConfig, opts.TimeStep)
	case opts.MaxSubSteps < 1:
		return fmt.Errorf("%w: max sub-steps %d", ErrInvalidConfig, opts.MaxSubSteps)
	}
	return nil
}
