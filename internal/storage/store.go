// Package storage persists completed runs: one directory per run holding
// metadata.json and trajectory.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shhawkins/three-body-simulator/internal/runner"
	"github.com/shhawkins/three-body-simulator/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the metadata.json payload for one stored run.
type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	TickDelta   float64            `json:"tick_delta"`
	Ticks       int                `json:"ticks"`
	Options     OptionsRecord      `json:"options"`
	Termination *TerminationRecord `json:"termination,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// OptionsRecord mirrors sim.Options in serializable form.
type OptionsRecord struct {
	G               float64 `json:"g"`
	BoundaryRadius  float64 `json:"boundary_radius"`
	FreePlay        bool    `json:"free_play"`
	TrailCapacity   int     `json:"trail_capacity"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
	TimeStep        float64 `json:"time_step"`
	MaxSubSteps     int     `json:"max_sub_steps"`
}

// TerminationRecord mirrors sim.Termination in serializable form.
type TerminationRecord struct {
	Cause  string     `json:"cause"`
	Bodies []string   `json:"bodies"`
	Point  [3]float64 `json:"point"`
}

func optionsRecord(opts sim.Options) OptionsRecord {
	return OptionsRecord{
		G:               opts.G,
		BoundaryRadius:  opts.BoundaryRadius,
		FreePlay:        opts.FreePlay,
		TrailCapacity:   opts.TrailCapacity,
		SpeedMultiplier: opts.SpeedMultiplier,
		TimeStep:        opts.TimeStep,
		MaxSubSteps:     opts.MaxSubSteps,
	}
}

func terminationRecord(t *sim.Termination) *TerminationRecord {
	if t == nil {
		return nil
	}
	return &TerminationRecord{
		Cause:  t.Cause.String(),
		Bodies: append([]string(nil), t.Bodies...),
		Point:  t.Point,
	}
}

// Save writes a completed run under a fresh id derived from the scenario
// name and the current time.
func (s *Store) Save(scenario string, opts sim.Options, tickDelta float64, result *runner.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    scenario,
		Timestamp:   time.Now(),
		TickDelta:   tickDelta,
		Ticks:       result.TicksRun,
		Options:     optionsRecord(opts),
		Termination: terminationRecord(result.Termination),
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(result.Header); err != nil {
		return "", err
	}
	for i := range result.States {
		row := make([]string, 0, 1+len(result.States[i]))
		row = append(row, strconv.FormatFloat(result.Times[i], 'f', 6, 64))
		for _, val := range result.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every readable run. Entries with missing or
// corrupt metadata are skipped rather than failing the listing.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads one run's recorded frames: the column header, the
// time column, and the remaining columns row by row. Unparseable rows are
// skipped.
func (s *Store) LoadTrajectory(runID string) ([]string, []float64, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) == 0 {
		return []string{}, []float64{}, [][]float64{}, nil
	}

	header := records[0]
	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}

		times = append(times, t)
		states = append(states, state)
	}

	return header, times, states, nil
}
