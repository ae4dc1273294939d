// Package config reads and writes scenario files: the three bodies plus the
// scalar run options, YAML-encoded.
package config

import (
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/shhawkins/three-body-simulator/internal/sim"
)

// Scenario is the on-disk description of a run. It converts losslessly to
// controller input via BodyConfigs and Options; validation happens there,
// not here.
type Scenario struct {
	Name            string     `yaml:"name"`
	G               float64    `yaml:"g"`
	BoundaryRadius  float64    `yaml:"boundary_radius"`
	FreePlay        bool       `yaml:"free_play"`
	TrailCapacity   int        `yaml:"trail_capacity"`
	SpeedMultiplier float64    `yaml:"speed_multiplier"`
	TimeStep        float64    `yaml:"time_step,omitempty"`
	MaxSubSteps     int        `yaml:"max_sub_steps,omitempty"`
	Bodies          []BodySpec `yaml:"bodies"`
}

// BodySpec is one body's entry in a scenario file.
type BodySpec struct {
	ID       string     `yaml:"id"`
	Mass     float64    `yaml:"mass"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
}

// Default returns the stock scenario, mirroring sim.DefaultBodies and
// sim.DefaultOptions.
func Default() *Scenario {
	return fromSim("default", sim.DefaultBodies(), sim.DefaultOptions())
}

// Load reads a scenario file. Omitted scalar fields keep their stock
// values; a bodies list, when present, replaces the stock one wholesale.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes a scenario file.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BodyConfigs converts the file form into controller input.
func (s *Scenario) BodyConfigs() []sim.BodyConfig {
	out := make([]sim.BodyConfig, len(s.Bodies))
	for i, b := range s.Bodies {
		out[i] = sim.BodyConfig{
			ID:       b.ID,
			Mass:     b.Mass,
			Position: mgl64.Vec3(b.Position),
			Velocity: mgl64.Vec3(b.Velocity),
		}
	}
	return out
}

// Options converts the scalar settings into controller options. Zero step
// settings fall back to the defaults so older files keep working.
func (s *Scenario) Options() sim.Options {
	opts := sim.DefaultOptions()
	opts.G = s.G
	opts.BoundaryRadius = s.BoundaryRadius
	opts.FreePlay = s.FreePlay
	opts.TrailCapacity = s.TrailCapacity
	opts.SpeedMultiplier = s.SpeedMultiplier
	if s.TimeStep > 0 {
		opts.TimeStep = s.TimeStep
	}
	if s.MaxSubSteps > 0 {
		opts.MaxSubSteps = s.MaxSubSteps
	}
	return opts
}

func fromSim(name string, bodies []sim.BodyConfig, opts sim.Options) *Scenario {
	s := &Scenario{
		Name:            name,
		G:               opts.G,
		BoundaryRadius:  opts.BoundaryRadius,
		FreePlay:        opts.FreePlay,
		TrailCapacity:   opts.TrailCapacity,
		SpeedMultiplier: opts.SpeedMultiplier,
		Bodies:          make([]BodySpec, len(bodies)),
	}
	for i, b := range bodies {
		s.Bodies[i] = BodySpec{
			ID:       b.ID,
			Mass:     b.Mass,
			Position: b.Position,
			Velocity: b.Velocity,
		}
	}
	return s
}
