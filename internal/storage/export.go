package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// ExportData bundles a stored run for export in one self-contained payload.
type ExportData struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	TickDelta   float64            `json:"tick_delta"`
	Ticks       int                `json:"ticks"`
	Header      []string           `json:"header"`
	Times       []float64          `json:"times"`
	States      [][]float64        `json:"states"`
	Termination *TerminationRecord `json:"termination,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// BuildExport combines a run's metadata and trajectory into an ExportData.
func BuildExport(meta *RunMetadata, header []string, times []float64, states [][]float64) *ExportData {
	return &ExportData{
		ID:          meta.ID,
		Scenario:    meta.Scenario,
		TickDelta:   meta.TickDelta,
		Ticks:       meta.Ticks,
		Header:      header,
		Times:       times,
		States:      states,
		Termination: meta.Termination,
		Metrics:     meta.Metrics,
	}
}

// ExportJSON writes the payload to path as indented JSON.
func ExportJSON(data *ExportData, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONStdout writes the payload to standard output as indented JSON.
func ExportJSONStdout(data *ExportData) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a trajectory to w as CSV with the given header row.
func ExportCSV(w io.Writer, header []string, times []float64, states [][]float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range states {
		row := make([]string, 0, 1+len(states[i]))
		row = append(row, strconv.FormatFloat(times[i], 'f', 6, 64))
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
