// Package runner drives a simulation controller through batch runs:
// headless ticking, trajectory capture, and metric collection.
package runner

import (
	"context"
	"fmt"

	"github.com/shhawkins/three-body-simulator/internal/metrics"
	"github.com/shhawkins/three-body-simulator/internal/sim"
)

// Runner feeds a controller a fixed number of external ticks and records
// the resulting trajectory.
type Runner struct {
	ctrl    *sim.Controller
	metrics []metrics.Metric
}

// New wraps a controller. The runner assumes exclusive ownership of it for
// the duration of Run.
func New(ctrl *sim.Controller) *Runner {
	return &Runner{ctrl: ctrl}
}

// AddMetric attaches a metric observed once per recorded frame.
func (r *Runner) AddMetric(m metrics.Metric) {
	r.metrics = append(r.metrics, m)
}

// Result is a completed batch run. Header[0] is "time"; States rows align
// with Times and hold the remaining Header columns.
type Result struct {
	Header      []string
	Times       []float64
	States      [][]float64
	Metrics     map[string]float64
	Termination *sim.Termination
	TicksRun    int
	Final       sim.Frame
}

// Run starts the controller if it is still in setup and feeds it tickDelta
// seconds per tick. It returns early when the run terminates, and honors
// ctx between ticks, handing back the partial result with the context
// error.
func (r *Runner) Run(ctx context.Context, ticks int, tickDelta float64) (*Result, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("runner: ticks must be positive, got %d", ticks)
	}
	if tickDelta <= 0 {
		return nil, fmt.Errorf("runner: tick delta must be positive, got %f", tickDelta)
	}

	if r.ctrl.State() == sim.StateSetup {
		if err := r.ctrl.Start(); err != nil {
			return nil, err
		}
	}
	if r.ctrl.State() != sim.StateRunning {
		return nil, fmt.Errorf("runner: controller not runnable in state %s", r.ctrl.State())
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	frame := r.ctrl.Frame()
	result := &Result{
		Header:  header(frame),
		Times:   make([]float64, 0, ticks+1),
		States:  make([][]float64, 0, ticks+1),
		Metrics: make(map[string]float64),
	}
	r.record(frame, result)

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			r.finish(frame, result)
			return result, ctx.Err()
		default:
		}

		frame = r.ctrl.Step(tickDelta)
		result.TicksRun++
		r.record(frame, result)

		if frame.State == sim.StateTerminated {
			break
		}
	}

	r.finish(frame, result)
	return result, nil
}

func (r *Runner) record(f sim.Frame, result *Result) {
	for _, m := range r.metrics {
		m.Observe(f)
	}
	result.Times = append(result.Times, f.Time)
	result.States = append(result.States, flatten(f))
}

func (r *Runner) finish(f sim.Frame, result *Result) {
	result.Final = f
	result.Termination = f.Termination
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func header(f sim.Frame) []string {
	h := make([]string, 0, 1+len(f.Bodies)*6)
	h = append(h, "time")
	for _, b := range f.Bodies {
		h = append(h,
			b.ID+"_px", b.ID+"_py", b.ID+"_pz",
			b.ID+"_vx", b.ID+"_vy", b.ID+"_vz")
	}
	return h
}

func flatten(f sim.Frame) []float64 {
	row := make([]float64, 0, len(f.Bodies)*6)
	for _, b := range f.Bodies {
		row = append(row,
			b.Position.X(), b.Position.Y(), b.Position.Z(),
			b.Velocity.X(), b.Velocity.Y(), b.Velocity.Z())
	}
	return row
}
