package config

import "sort"

// Presets are the built-in scenarios. They share the stock step settings;
// only arrangement, constant, and boundary differ.
var Presets = map[string]*Scenario{
	"default": Default(),

	// The classic figure-8 choreography, G = 1, unit masses, scaled up 8x
	// in space (velocities by 1/sqrt(8)) so the closest approaches stay
	// clear of the collision radii.
	"figure8": {
		Name:            "figure8",
		G:               1.0,
		BoundaryRadius:  60,
		TrailCapacity:   600,
		SpeedMultiplier: 2.0,
		Bodies: []BodySpec{
			{ID: "alpha", Mass: 1, Position: [3]float64{-8, 0, 0}, Velocity: [3]float64{0.122684, 0, 0.188090}},
			{ID: "beta", Mass: 1, Position: [3]float64{8, 0, 0}, Velocity: [3]float64{0.122684, 0, 0.188090}},
			{ID: "gamma", Mass: 1, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{-0.245368, 0, -0.376180}},
		},
	},

	// A heavy pair whose mass product sits above the force clamp
	// threshold, with a light probe circling far out.
	"binary": {
		Name:            "binary",
		G:               0.3,
		BoundaryRadius:  60,
		TrailCapacity:   400,
		SpeedMultiplier: 1.0,
		Bodies: []BodySpec{
			{ID: "alpha", Mass: 12, Position: [3]float64{-4, 0, 0}, Velocity: [3]float64{0, 0, 0.3}},
			{ID: "beta", Mass: 12, Position: [3]float64{4, 0, 0}, Velocity: [3]float64{0, 0, -0.3}},
			{ID: "gamma", Mass: 0.5, Position: [3]float64{0, 0, 25}, Velocity: [3]float64{0.5, 0, 0}},
		},
	},

	// A probe aimed outward; demonstrates boundary termination within a
	// few simulated seconds.
	"escape": {
		Name:            "escape",
		G:               0.3,
		BoundaryRadius:  60,
		TrailCapacity:   400,
		SpeedMultiplier: 1.0,
		Bodies: []BodySpec{
			{ID: "alpha", Mass: 1.5, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{0, 0, 0}},
			{ID: "beta", Mass: 1, Position: [3]float64{-8, 0, 0}, Velocity: [3]float64{0, 0, 0.24}},
			{ID: "gamma", Mass: 1, Position: [3]float64{40, 0, 0}, Velocity: [3]float64{3, 0, 0}},
		},
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Scenario {
	s, ok := Presets[name]
	if !ok {
		return nil
	}
	return s
}

// ListPresets returns all preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
