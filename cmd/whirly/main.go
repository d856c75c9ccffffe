package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dsconnelly/whirly/internal/analysis"
	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/experiment"
	"github.com/dsconnelly/whirly/internal/solver"
	"github.com/dsconnelly/whirly/internal/spectral"
	"github.com/dsconnelly/whirly/internal/storage"
	"github.com/dsconnelly/whirly/internal/sweep"
	"github.com/dsconnelly/whirly/internal/viz"
)

var (
	dataDir      string
	tau          float64
	gridSize     int
	domain       float64
	reynolds     float64
	duration     float64
	outputTau    float64
	seed         int64
	operator     string
	configFile   string
	preset       string
	ensembleSize int
	// Flow parameters
	amplitude    float64
	cells        int
	radius       float64
	separation   float64
	thickness    float64
	perturbation float64
	kmin         int
	kmax         int
	// Snapshot selection and figure output
	snapshot    int
	output      string
	title       string
	seriesChart bool
	themeName   string
	canvasSize  int
	// Refinement study depth
	levels int
	// Parameter sweep range
	param      string
	paramMin   float64
	paramMax   float64
	paramSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "whirly",
		Short: "spectral fluid simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".whirly", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [flow]",
		Short: "run a simulation and save the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().IntVar(&ensembleSize, "ensemble", 1, "number of seed-varied ensemble members")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run diagnostics in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "plot the energy spectrum of a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().IntVar(&snapshot, "snapshot", -1, "snapshot index (-1 for the last)")

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "draw a saved snapshot in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&snapshot, "snapshot", -1, "snapshot index (-1 for the last)")
	showCmd.Flags().StringVar(&themeName, "theme", "", "color theme (vortex, plasma, mono)")
	showCmd.Flags().IntVar(&canvasSize, "width", 72, "canvas width in characters")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render a saved run to an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().IntVar(&snapshot, "snapshot", -1, "snapshot index (-1 for the last)")
	renderCmd.Flags().StringVar(&output, "output", "", "output path (png, svg, or pdf)")
	renderCmd.Flags().StringVar(&title, "title", "", "figure title")
	renderCmd.Flags().BoolVar(&seriesChart, "series", false, "render the diagnostic series instead of a field")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the diagnostic series as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [flow]",
		Short: "run with live terminal visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario.yaml]",
		Short: "run a scripted scenario of simulations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	varyCmd := &cobra.Command{
		Use:   "vary [flow]",
		Short: "sweep one parameter across a range",
		Args:  cobra.ExactArgs(1),
		RunE:  runVary,
	}
	addConfigFlags(varyCmd)
	varyCmd.Flags().StringVar(&param, "param", "re", "parameter to sweep")
	varyCmd.Flags().Float64Var(&paramMin, "min", 100, "lowest parameter value")
	varyCmd.Flags().Float64Var(&paramMax, "max", 1000, "highest parameter value")
	varyCmd.Flags().IntVar(&paramSteps, "steps", 5, "number of sweep points")

	convergeCmd := &cobra.Command{
		Use:   "converge [flow]",
		Short: "measure convergence under timestep refinement",
		Args:  cobra.ExactArgs(1),
		RunE:  runConverge,
	}
	addConfigFlags(convergeCmd)
	convergeCmd.Flags().IntVar(&levels, "levels", 4, "number of refinement levels")

	compareCmd := &cobra.Command{
		Use:   "compare [flow] [stepper1] [stepper2] ...",
		Short: "compare steppers on the same flow",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSteppers,
	}
	addConfigFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [flow]",
		Short: "benchmark the solver across grid sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchFlow,
	}

	flowsCmd := &cobra.Command{
		Use:   "flows",
		Short: "list available flows, operators, and steppers",
		RunE:  listCatalog,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [flow]",
		Short: "list available presets for a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Println(viz.Subtle.Render("no presets for flow: " + args[0]))
				return nil
			}
			sort.Strings(presets)
			fmt.Println(viz.HeaderStyle.Render("presets for " + args[0]))
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, spectrumCmd, showCmd, renderCmd,
		exportCmd, exportCSVCmd, liveCmd, sweepCmd, varyCmd, convergeCmd, compareCmd,
		benchCmd, flowsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addConfigFlags registers the solver and flow flags shared by the commands
// that build a configuration.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tau, "tau", config.DefaultTau, "timestep")
	cmd.Flags().IntVar(&gridSize, "m", config.DefaultM, "grid points per dimension")
	cmd.Flags().Float64Var(&domain, "p", 2*math.Pi, "domain period")
	cmd.Flags().Float64Var(&reynolds, "re", config.DefaultRe, "reynolds number")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultT, "integration time")
	cmd.Flags().Float64Var(&outputTau, "output-tau", config.DefaultOutputTau, "time between saved snapshots")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random flow seed")
	cmd.Flags().StringVar(&operator, "operator", "navier-stokes", "dissipation operator")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "flow amplitude")
	cmd.Flags().IntVar(&cells, "cells", 2, "vortex cells per dimension (taylor-green)")
	cmd.Flags().Float64Var(&radius, "radius", 0.4, "vortex radius (vortex-pair)")
	cmd.Flags().Float64Var(&separation, "separation", 1.5, "vortex separation (vortex-pair)")
	cmd.Flags().Float64Var(&thickness, "thickness", 0.2, "layer thickness (shear-layer)")
	cmd.Flags().Float64Var(&perturbation, "perturbation", 0.05, "perturbation amplitude (shear-layer)")
	cmd.Flags().IntVar(&kmin, "kmin", 3, "lowest excited wavenumber (random)")
	cmd.Flags().IntVar(&kmax, "kmax", 8, "highest excited wavenumber (random)")
}

// buildConfig layers preset, config file, and explicitly set flags over the
// defaults, in increasing order of precedence.
func buildConfig(cmd *cobra.Command, flow string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Flow = flow

	if preset != "" {
		p := config.GetPreset(flow, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(flow))
		}
		cfg = p.Clone()
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		cfg.Flow = flow
	}

	flags := cmd.Flags()
	if flags.Changed("tau") {
		cfg.Tau = tau
	}
	if flags.Changed("m") {
		cfg.M = gridSize
	}
	if flags.Changed("p") {
		cfg.P = domain
	}
	if flags.Changed("re") {
		cfg.Re = reynolds
	}
	if flags.Changed("time") {
		cfg.T = duration
	}
	if flags.Changed("output-tau") {
		cfg.OutputTau = outputTau
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("operator") {
		cfg.Operator = operator
	}
	if flags.Changed("amplitude") {
		cfg.FlowParams.Amplitude = amplitude
	}
	if flags.Changed("cells") {
		cfg.FlowParams.Cells = cells
	}
	if flags.Changed("radius") {
		cfg.FlowParams.Radius = radius
	}
	if flags.Changed("separation") {
		cfg.FlowParams.Separation = separation
	}
	if flags.Changed("thickness") {
		cfg.FlowParams.Thickness = thickness
	}
	if flags.Changed("perturbation") {
		cfg.FlowParams.Perturbation = perturbation
	}
	if flags.Changed("kmin") {
		cfg.FlowParams.KMin = kmin
	}
	if flags.Changed("kmax") {
		cfg.FlowParams.KMax = kmax
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	if ensembleSize > 1 {
		return runEnsemble(cfg, registry)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, err := experiment.New(cfg, registry)
	if err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", cfg.Flow)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("snapshots: %d\n", len(result.Fields))
	fmt.Println("\n" + viz.HeaderStyle.Render("metrics"))
	printMetrics(result.Metrics)

	return nil
}

func runEnsemble(cfg *config.Config, registry *experiment.Registry) error {
	ens := experiment.NewEnsemble(cfg, registry, ensembleSize, cfg.Seed)

	fmt.Printf("running %d-member %s ensemble...\n", ensembleSize, cfg.Flow)
	start := time.Now()

	results, err := ens.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	fmt.Println(viz.HeaderStyle.Render("members"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEMBER\tSEED\tFINAL ENERGY\tFINAL ENSTROPHY\tDISSIPATION\tSTABILITY")
	for i, r := range results {
		last := len(r.Series.Energy) - 1
		fmt.Fprintf(w, "%d\t%d\t%.6f\t%.6f\t%.6f\t%.2f\n",
			i,
			cfg.Seed+int64(i),
			r.Series.Energy[last],
			r.Series.Enstrophy[last],
			r.Metrics["dissipation"],
			r.Metrics["stability"],
		)
	}

	return w.Flush()
}

func printMetrics(metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, metrics[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println(viz.Subtle.Render("no runs found"))
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	fmt.Println(viz.HeaderStyle.Render("saved runs"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFLOW\tOPERATOR\tTIME\tDURATION\tM\tRE\tSNAPSHOTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%d\t%.0f\t%d\n",
			run.ID,
			run.Flow,
			run.Operator,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.M,
			run.Re,
			run.Snapshots,
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

	times, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("flow: %s (%s, Re=%.0f)\n", meta.Flow, meta.Operator, meta.Re)
	fmt.Printf("samples: %d\n\n", len(times))

	for _, plot := range []struct {
		caption string
		data    []float64
	}{
		{"energy", series.Energy},
		{"enstrophy", series.Enstrophy},
		{"peak vorticity", series.Peak},
	} {
		graph := asciigraph.Plot(plot.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(plot.caption+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	idx := snapshot
	if idx < 0 {
		idx = meta.Snapshots - 1
	}

	samples, err := st.LoadField(runID, idx)
	if err != nil {
		return err
	}

	q := spectral.FromReal(samples, meta.P)
	spec := analysis.Spectrum(q)
	if len(spec) < 2 {
		return fmt.Errorf("grid too small for a spectrum")
	}

	// Shell 0 carries no energy; plot the rest on a log scale.
	logSpec := make([]float64, len(spec)-1)
	for i, e := range spec[1:] {
		logSpec[i] = math.Log10(e + 1e-20)
	}

	fmt.Printf("run: %s (snapshot %d)\n\n", meta.ID, idx)
	graph := asciigraph.Plot(logSpec,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("log10 energy spectrum, shells 1..%d", len(spec)-1)),
	)
	fmt.Println(graph)
	fmt.Println()

	peakShell, peakEnergy := 1, spec[1]
	for k := 2; k < len(spec); k++ {
		if spec[k] > peakEnergy {
			peakShell, peakEnergy = k, spec[k]
		}
	}
	fmt.Printf("dominant shell: k=%d (energy %.3e)\n", peakShell, peakEnergy)

	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	idx := snapshot
	if idx < 0 {
		idx = meta.Snapshots - 1
	}

	samples, err := st.LoadField(runID, idx)
	if err != nil {
		return err
	}

	if themeName != "" {
		viz.SetTheme(themeName)
	}

	cmax := spectral.MaxAbs(samples)
	fmt.Printf("run: %s (snapshot %d of %d)\n", meta.ID, idx, meta.Snapshots)
	fmt.Printf("peak vorticity: %.4f\n\n", cmax)

	canvas := viz.NewFieldCanvas(canvasSize, canvasSize/2)
	fmt.Println(canvas.Render(samples, cmax))
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	figureTitle := title
	if figureTitle == "" {
		figureTitle = meta.Flow
	}

	if seriesChart {
		times, series, err := st.LoadSeries(runID)
		if err != nil {
			return err
		}
		path := output
		if path == "" {
			path = runID + "_series.png"
		}
		if err := viz.RenderSeries(times, series.Energy, series.Enstrophy, figureTitle, path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}

	idx := snapshot
	if idx < 0 {
		idx = meta.Snapshots - 1
	}

	samples, err := st.LoadField(runID, idx)
	if err != nil {
		return err
	}

	path := output
	if path == "" {
		path = fmt.Sprintf("%s_%04d.png", runID, idx)
	}

	cmax := spectral.MaxAbs(samples)
	if err := viz.RenderField(samples, meta.P, cmax, figureTitle, path); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, times, series)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	times, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, times, series)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	op, err := registry.GetOperator(cfg.Operator)
	if err != nil {
		return err
	}

	s, err := solver.New(cfg.Tau, cfg.M, cfg.P, cfg.Re, op)
	if err != nil {
		return err
	}

	q0, err := registry.GetFlow(cfg.Flow, cfg)
	if err != nil {
		return err
	}

	return viz.RunLive(s, q0, cfg.T, cfg.Flow)
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := sweep.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render("scenario " + scenario.Name))
	if scenario.Description != "" {
		fmt.Println(viz.Subtle.Render(scenario.Description))
	}
	fmt.Println()

	outcomes, runErr := sweep.RunScenario(context.Background(), scenario, experiment.NewRegistry(), st)

	if len(outcomes) > 0 {
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tRUN ID\tDISSIPATION\tPEAK\tSTABILITY")
		for _, o := range outcomes {
			fmt.Fprintf(w, "%s\t%s\t%.6f\t%.4f\t%.2f\n",
				o.Name, o.RunID, o.Metrics["dissipation"], o.Metrics["peak"], o.Metrics["stability"])
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return runErr
}

func runVary(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sw := &sweep.ParameterSweep{Param: param, Min: paramMin, Max: paramMax, Steps: paramSteps}
	points, err := sweep.RunSweep(context.Background(), cfg, sw, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.HeaderStyle.Render("sweep over " + param))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFINAL ENERGY\tFINAL ENSTROPHY\tDISSIPATION\n", strings.ToUpper(param))
	for _, pt := range points {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.6f\t%.6f\n",
			pt.Value, pt.FinalEnergy, pt.FinalEnstrophy, pt.Metrics["dissipation"])
	}

	return w.Flush()
}

func runConverge(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	report, err := sweep.TimestepStudy(context.Background(), cfg, experiment.NewRegistry(), levels)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.HeaderStyle.Render("timestep refinement"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAU\tERROR\tORDER")
	for i := range report.Taus {
		order := "-"
		if i > 0 {
			order = fmt.Sprintf("%.2f", report.Orders[i])
		}
		fmt.Fprintf(w, "%.6f\t%.3e\t%s\n", report.Taus[i], report.Errors[i], order)
	}

	return w.Flush()
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	op, err := registry.GetOperator(cfg.Operator)
	if err != nil {
		return err
	}

	s, err := solver.New(cfg.Tau, cfg.M, cfg.P, cfg.Re, op)
	if err != nil {
		return err
	}

	q0, err := registry.GetFlow(cfg.Flow, cfg)
	if err != nil {
		return err
	}

	n, _, stepTau := s.Steps(cfg.T, cfg.T)

	baselineStepper, err := registry.GetStepper("ifrk4", stepTau, s.Diffusion(), s.Nonlinear)
	if err != nil {
		return err
	}
	baseline := q0
	for i := 0; i < n; i++ {
		baseline = baselineStepper.Step(baseline)
	}

	fmt.Println(viz.HeaderStyle.Render("stepper comparison"))
	fmt.Println(viz.Subtle.Render(fmt.Sprintf("flow %s, tau=%.4f, time=%.1f", cfg.Flow, stepTau, cfg.T)) + "\n")
	fmt.Printf("%-10s  %-14s  %-12s  %-10s\n", "stepper", "final_energy", "vs_ifrk4", "time_ms")
	fmt.Println(viz.Subtle.Render(strings.Repeat("-", 52)))

	for _, name := range args[1:] {
		stepper, err := registry.GetStepper(name, stepTau, s.Diffusion(), s.Nonlinear)
		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		q := q0
		for i := 0; i < n; i++ {
			q = stepper.Step(q)
		}
		elapsed := time.Since(start)

		deviation := analysis.Norm(q.Sub(baseline))
		fmt.Printf("%-10s  %14.6f  %12.2e  %10.2f\n",
			name, analysis.Energy(q), deviation, float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func benchFlow(cmd *cobra.Command, args []string) error {
	flow := args[0]
	registry := experiment.NewRegistry()

	sizes := []int{32, 64, 128}
	taus := []float64{0.01, 0.005}

	fmt.Println(viz.HeaderStyle.Render("benchmark " + flow))
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "M\tTAU\tSTEPS\tTIME\tSTEPS/SEC")

	for _, m := range sizes {
		for _, stepTau := range taus {
			cfg := config.DefaultConfig()
			cfg.Flow = flow
			cfg.M = m
			cfg.Tau = stepTau
			cfg.T = 0.5
			cfg.OutputTau = 0.5

			exp, err := experiment.New(cfg, registry)
			if err != nil {
				return err
			}

			steps, _, _ := exp.Solver().Steps(cfg.T, cfg.OutputTau)

			start := time.Now()
			if _, err := exp.Run(context.Background()); err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(steps) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%.4f\t%d\t%v\t%.0f\n", m, stepTau, steps, elapsed.Round(time.Millisecond), stepsPerSec)
		}
	}

	return w.Flush()
}

func listCatalog(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	for _, group := range []struct {
		label string
		names []string
	}{
		{"flows", registry.ListFlows()},
		{"operators", registry.ListOperators()},
		{"steppers", registry.ListSteppers()},
	} {
		sort.Strings(group.names)
		fmt.Println(viz.HeaderStyle.Render(group.label))
		for _, name := range group.names {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
	}

	return nil
}
