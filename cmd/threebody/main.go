package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/shhawkins/three-body-simulator/internal/config"
	"github.com/shhawkins/three-body-simulator/internal/metrics"
	"github.com/shhawkins/three-body-simulator/internal/runner"
	"github.com/shhawkins/three-body-simulator/internal/sim"
	"github.com/shhawkins/three-body-simulator/internal/storage"
	"github.com/shhawkins/three-body-simulator/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	ticks      int
	tickDelta  float64
	speed      float64
	freePlay   bool
	outPath    string
	presetName string
)

// main registers the CLI commands. Running with no subcommand opens the
// live view on the stock arrangement.
func main() {
	rootCmd := &cobra.Command{
		Use:   "threebody",
		Short: "three-body gravity sandbox",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".threebody", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headless and store the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().IntVar(&ticks, "ticks", 3600, "number of ticks")
	runCmd.Flags().Float64Var(&tickDelta, "tick-delta", 0, "seconds per tick (0 = one sub-step per tick)")
	runCmd.Flags().Float64Var(&speed, "speed", 1.0, "speed multiplier override")
	runCmd.Flags().BoolVar(&freePlay, "free-play", false, "free play override (no boundary checks)")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "interactive live view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	liveCmd.Flags().Float64Var(&speed, "speed", 1.0, "speed multiplier override")
	liveCmd.Flags().BoolVar(&freePlay, "free-play", false, "free play override (no boundary checks)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored body positions",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a preset to a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initConfigCmd.Flags().StringVar(&presetName, "preset", "default", "preset to write")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run every preset and compare metrics",
		RunE:  sweepPresets,
	}
	sweepCmd.Flags().IntVar(&ticks, "ticks", 3600, "number of ticks per scenario")
	sweepCmd.Flags().Float64Var(&tickDelta, "tick-delta", 0, "seconds per tick (0 = one sub-step per tick)")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, initConfigCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveScenario picks the scenario: an explicit config file wins over the
// named preset.
func resolveScenario(name string) (*config.Scenario, error) {
	if configFile != "" {
		scn, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return scn, nil
	}

	scn := config.GetPreset(name)
	if scn == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	return scn, nil
}

func scenarioArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "default"
}

func runScenario(cmd *cobra.Command, args []string) error {
	scn, err := resolveScenario(scenarioArg(args))
	if err != nil {
		return err
	}

	opts := scn.Options()
	if cmd.Flags().Changed("speed") {
		opts.SpeedMultiplier = speed
	}
	if cmd.Flags().Changed("free-play") {
		opts.FreePlay = freePlay
	}

	ctrl, err := sim.New(scn.BodyConfigs(), opts)
	if err != nil {
		return err
	}

	delta := tickDelta
	if delta <= 0 {
		delta = opts.TimeStep
	}

	r := runner.New(ctrl)
	r.AddMetric(metrics.NewEnergyDrift(opts.G))
	r.AddMetric(metrics.NewMomentumDrift())
	r.AddMetric(metrics.NewMinSeparation())

	fmt.Printf("running %s...\n", scn.Name)
	start := time.Now()

	result, err := r.Run(context.Background(), ticks, delta)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(scn.Name, opts, delta, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.TicksRun)
	fmt.Printf("sim time: %.2fs\n", result.Final.Time)
	if result.Termination != nil {
		fmt.Printf("terminated: %s (%s)\n",
			result.Termination.Cause, strings.Join(result.Termination.Bodies, " + "))
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	scn, err := resolveScenario(scenarioArg(args))
	if err != nil {
		return err
	}

	opts := scn.Options()
	if cmd.Flags().Changed("speed") {
		opts.SpeedMultiplier = speed
	}
	if cmd.Flags().Changed("free-play") {
		opts.FreePlay = freePlay
	}

	ctrl, err := sim.New(scn.BodyConfigs(), opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(ctrl, scn.Name))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tTICKS\tDT\tRESULT")

	for _, run := range runs {
		result := "clean"
		if run.Termination != nil {
			result = fmt.Sprintf("%s (%s)",
				run.Termination.Cause, strings.Join(run.Termination.Bodies, " + "))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%s\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.TickDelta,
			result,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	header, _, states, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(states))

	// Plot the horizontal-plane coordinates of each body.
	plotted := 0
	for col := 0; col+1 < len(header) && plotted < 6; col++ {
		name := header[col+1]
		if !strings.HasSuffix(name, "_px") && !strings.HasSuffix(name, "_pz") {
			continue
		}

		data := make([]float64, len(states))
		for i := range states {
			if col < len(states[i]) {
				data[i] = states[i][col]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
		plotted++
	}

	if plotted == 0 {
		return fmt.Errorf("no position columns found")
	}
	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	header, times, states, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	data := storage.BuildExport(meta, header, times, states)
	if outPath != "" {
		if err := storage.ExportJSON(data, outPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}
	return storage.ExportJSONStdout(data)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	header, times, states, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, header, times, states)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tG\tBOUNDARY\tFREE PLAY\tBODIES")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%t\t%d\n",
			p.Name, p.G, p.BoundaryRadius, p.FreePlay, len(p.Bodies))
	}

	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]

	p := config.GetPreset(presetName)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
	}

	if err := config.Save(path, p); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func sweepPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	scenarios := make([]runner.Scenario, 0, len(names))
	for _, name := range names {
		p := config.GetPreset(name)
		scenarios = append(scenarios, runner.Scenario{
			Name:   p.Name,
			Bodies: p.BodyConfigs(),
			Opts:   p.Options(),
		})
	}

	delta := tickDelta
	if delta <= 0 {
		delta = sim.DefaultOptions().TimeStep
	}

	fmt.Printf("sweeping %d scenarios over %d ticks...\n\n", len(scenarios), ticks)
	start := time.Now()

	results, err := runner.Sweep(context.Background(), scenarios, ticks, delta)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tTICKS\tSIM TIME\tRESULT\tENERGY DRIFT\tMOMENTUM DRIFT\tMIN SEP")

	for i, res := range results {
		result := "clean"
		if res.Termination != nil {
			result = fmt.Sprintf("%s (%s)",
				res.Termination.Cause, strings.Join(res.Termination.Bodies, " + "))
		}
		fmt.Fprintf(w, "%s\t%d\t%.2fs\t%s\t%.2e\t%.2e\t%.3f\n",
			scenarios[i].Name,
			res.TicksRun,
			res.Final.Time,
			result,
			res.Metrics["energy_drift"],
			res.Metrics["momentum_drift"],
			res.Metrics["min_separation"],
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", time.Since(start))
	return nil
}
