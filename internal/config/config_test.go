package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/shhawkins/three-body-simulator/internal/sim"
)

func TestDefaultMatchesStock(t *testing.T) {
	s := Default()

	if s.G != sim.DefaultG {
		t.Errorf("expected g %v, got %v", sim.DefaultG, s.G)
	}
	if s.BoundaryRadius != sim.DefaultBoundaryRadius {
		t.Errorf("expected boundary %v, got %v", sim.DefaultBoundaryRadius, s.BoundaryRadius)
	}
	if len(s.Bodies) != sim.BodyCount {
		t.Fatalf("expected %d bodies, got %d", sim.BodyCount, len(s.Bodies))
	}
	if s.Bodies[0].ID != "alpha" || s.Bodies[0].Position != ([3]float64{-5, 0, 0}) {
		t.Errorf("unexpected first body: %+v", s.Bodies[0])
	}
}

func TestScenarioConvertsToControllerInput(t *testing.T) {
	s := Default()

	configs := s.BodyConfigs()
	if configs[2].Position != (mgl64.Vec3{0, 0, 0}) || configs[2].Mass != 1.5 {
		t.Errorf("unexpected converted body: %+v", configs[2])
	}

	opts := s.Options()
	if opts != sim.DefaultOptions() {
		t.Errorf("expected stock options, got %+v", opts)
	}

	if _, err := sim.New(configs, opts); err != nil {
		t.Errorf("default scenario rejected by controller: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	s := GetPreset("binary")
	if err := Save(path, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Name != "binary" || loaded.G != 0.3 {
		t.Errorf("expected binary scenario, got %s g=%v", loaded.Name, loaded.G)
	}
	if len(loaded.Bodies) != 3 || loaded.Bodies[0].Mass != 12 {
		t.Errorf("bodies did not survive the round trip: %+v", loaded.Bodies)
	}
	if loaded.Bodies[2].Velocity != ([3]float64{0.5, 0, 0}) {
		t.Errorf("expected probe velocity preserved, got %v", loaded.Bodies[2].Velocity)
	}
}

func TestLoadFillsOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := `
name: custom
g: 0.7
boundary_radius: 45
trail_capacity: 100
speed_multiplier: 1
`
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.G != 0.7 || s.BoundaryRadius != 45 {
		t.Errorf("explicit fields not applied: g=%v boundary=%v", s.G, s.BoundaryRadius)
	}
	// The omitted bodies list keeps the stock arrangement, and omitted step
	// settings resolve to defaults.
	if len(s.Bodies) != 3 || s.Bodies[0].ID != "alpha" {
		t.Errorf("expected stock bodies, got %+v", s.Bodies)
	}
	if s.Options().TimeStep != sim.DefaultTimeStep {
		t.Errorf("expected default time step, got %v", s.Options().TimeStep)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("figure8") == nil {
		t.Error("expected figure8 preset")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("expected sorted names, got %v", names)
		}
	}
}

func TestAllPresetsAreRunnable(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			s := GetPreset(name)
			ctrl, err := sim.New(s.BodyConfigs(), s.Options())
			if err != nil {
				t.Fatalf("preset %s rejected: %v", name, err)
			}
			if err := ctrl.Start(); err != nil {
				t.Fatalf("preset %s failed to start: %v", name, err)
			}
			// One tick must not terminate any shipped preset.
			f := ctrl.Step(s.Options().TimeStep)
			if f.State != sim.StateRunning {
				t.Errorf("preset %s terminated immediately: %+v", name, f.Termination)
			}
		})
	}
}
