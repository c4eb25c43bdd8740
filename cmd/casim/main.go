package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mgrid/casim/internal/automata"
	"github.com/mgrid/casim/internal/config"
	"github.com/mgrid/casim/internal/export"
	"github.com/mgrid/casim/internal/grid"
	"github.com/mgrid/casim/internal/live"
	"github.com/mgrid/casim/internal/metrics"
	"github.com/mgrid/casim/internal/pattern"
	"github.com/mgrid/casim/internal/sim"
	"github.com/mgrid/casim/internal/store"
)

var (
	dataDir    string
	width      int
	height     int
	steps      int
	rule       string
	boundary   string
	patternArg string
	states     int
	seed       int64
	configFile string
	preset     string
	outPath    string
	svgPath    string
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	rootCmd := &cobra.Command{
		Use:   "casim",
		Short: "cellular automaton simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".casim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [mode]",
		Short: "run a simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", 100, "generations to run")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write final grid snapshot as SVG")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [run_id]",
		Short: "show run summary",
		Args:  cobra.ExactArgs(1),
		RunE:  summarizeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "list available automaton modes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range sim.NewRegistry().Modes() {
				fmt.Println(m)
			}
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns [mode]",
		Short: "list preset patterns for a mode",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range pattern.Names(args[0]) {
				fmt.Println(p)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list preset configurations for a mode",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return
			}
			for _, p := range presets {
				fmt.Println(p)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [mode]",
		Short: "run a simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, summaryCmd, exportJSONCmd, modesCmd, patternsCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	cmd.Flags().StringVar(&rule, "rule", "", "B/S rule (custom and generations modes)")
	cmd.Flags().StringVar(&boundary, "boundary", config.DefaultBoundary, "boundary mode: wrap, fixed, reflect")
	cmd.Flags().StringVar(&patternArg, "pattern", "", "initial pattern name")
	cmd.Flags().IntVar(&states, "states", config.DefaultStates, "state count (generations mode)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
}

// resolveConfig folds preset, config file, and CLI flags into one config.
// Precedence, lowest to highest: defaults, preset, config file, flags that
// were set explicitly.
func resolveConfig(cmd *cobra.Command, mode string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Mode = mode

	if preset != "" {
		p := config.GetPreset(mode, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		applyOver(cfg, p)
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		applyOver(cfg, fileCfg)
		cfg.Mode = mode
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("rule") {
		cfg.Rule = rule
	}
	if cmd.Flags().Changed("boundary") {
		cfg.Boundary = boundary
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = patternArg
	}
	if cmd.Flags().Changed("states") {
		cfg.States = states
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

// applyOver copies src's non-zero fields over dst.
func applyOver(dst, src *config.Config) {
	if src.Width > 0 {
		dst.Width = src.Width
	}
	if src.Height > 0 {
		dst.Height = src.Height
	}
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.Pattern != "" {
		dst.Pattern = src.Pattern
	}
	if src.Rule != "" {
		dst.Rule = src.Rule
	}
	if src.Boundary != "" {
		dst.Boundary = src.Boundary
	}
	if src.States > 0 {
		dst.States = src.States
	}
	if src.Seed != 0 {
		dst.Seed = src.Seed
	}
	if src.MaxHistory > 0 {
		dst.MaxHistory = src.MaxHistory
	}
	if src.MaxLog > 0 {
		dst.MaxLog = src.MaxLog
	}
	if src.MaxCycle > 0 {
		dst.MaxCycle = src.MaxCycle
	}
}

func newSimulator(cfg *config.Config) (*sim.Simulator, error) {
	b, err := grid.ParseBoundary(cfg.Boundary)
	if err != nil {
		return nil, err
	}

	opts := sim.Options{
		Boundary: b,
		States:   cfg.States,
		Seed:     cfg.Seed,
	}
	if cfg.Rule != "" {
		opts.Birth, opts.Survival = automata.ParseRule(cfg.Rule)
	}

	simCfg := sim.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Mode:       cfg.Mode,
		Options:    opts,
		MaxHistory: cfg.MaxHistory,
		MaxLog:     cfg.MaxLog,
		MaxCycle:   cfg.MaxCycle,
	}

	s := sim.New(sim.NewRegistry(), simCfg)
	if err := s.Initialize(cfg.Mode, cfg.Pattern); err != nil {
		return nil, err
	}
	return s, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	slog.Info("running simulation", "mode", cfg.Mode, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "steps", steps)
	start := time.Now()

	if _, err := s.Step(steps); err != nil {
		return err
	}
	elapsed := time.Since(start)

	summary := s.MetricsSummary()
	meta := store.RunMetadata{
		Mode:     cfg.Mode,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Rule:     cfg.Rule,
		Boundary: cfg.Boundary,
		Pattern:  cfg.Pattern,
		Seed:     cfg.Seed,
		Steps:    steps,
		Summary:  summary,
	}
	runID, err := st.Save(meta, s.Log())
	if err != nil {
		return err
	}

	slog.Info("completed", "elapsed", elapsed, "run_id", runID)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("generations: %d\n", s.Generation())
	fmt.Printf("population: %d (peak %d, avg %.1f)\n", summary.Population, summary.PeakPopulation, summary.AvgPopulation)
	fmt.Printf("density: %.4f\n", summary.Density)
	if g, err := s.GridSnapshot(); err == nil {
		fmt.Printf("entropy: %.4f bits\n", metrics.Entropy(g))
		fmt.Printf("complexity: %.4f\n", metrics.Complexity(g, nil))
		fmt.Printf("diversity: %.4f\n", metrics.Diversity(g))
	}
	if info, ok := s.Cycle(); ok {
		fmt.Printf("cycle: period %d, first seen at generation %d\n", info.Period, info.FirstSeen)
	}

	if svgPath != "" {
		g, err := s.GridSnapshot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgPath, []byte(export.GridToSVG(g, 8)), 0644); err != nil {
			return err
		}
		slog.Info("wrote snapshot", "path", svgPath)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tSIZE\tSTEPS\tBOUNDARY\tPATTERN")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%s\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Steps,
			run.Boundary,
			run.Pattern,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	log, err := st.LoadMetrics(runID)
	if err != nil {
		return err
	}
	if len(log) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("samples: %d\n\n", len(log))

	population := make([]float64, len(log))
	density := make([]float64, len(log))
	for i, m := range log {
		population[i] = float64(m.Population)
		density[i] = m.Density
	}

	fmt.Println(asciigraph.Plot(population,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(density,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("density"),
	))

	return nil
}

func summarizeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", meta.ID)
	fmt.Fprintf(w, "mode\t%s\n", meta.Mode)
	fmt.Fprintf(w, "time\t%s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "size\t%dx%d\n", meta.Width, meta.Height)
	if meta.Rule != "" {
		fmt.Fprintf(w, "rule\t%s\n", meta.Rule)
	}
	fmt.Fprintf(w, "boundary\t%s\n", meta.Boundary)
	if meta.Pattern != "" {
		fmt.Fprintf(w, "pattern\t%s\n", meta.Pattern)
	}
	fmt.Fprintf(w, "seed\t%d\n", meta.Seed)
	fmt.Fprintf(w, "steps\t%d\n", meta.Steps)
	fmt.Fprintf(w, "population\t%d\n", meta.Summary.Population)
	fmt.Fprintf(w, "peak population\t%d\n", meta.Summary.PeakPopulation)
	fmt.Fprintf(w, "avg population\t%.2f\n", meta.Summary.AvgPopulation)
	fmt.Fprintf(w, "density\t%.4f\n", meta.Summary.Density)
	if meta.Summary.CyclePeriod > 0 {
		fmt.Fprintf(w, "cycle\tperiod %d @ generation %d\n", meta.Summary.CyclePeriod, meta.Summary.CycleStart)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	log, err := st.LoadMetrics(runID)
	if err != nil {
		return err
	}

	return store.ExportJSON(outPath, store.ExportData{
		Mode:     meta.Mode,
		Width:    meta.Width,
		Height:   meta.Height,
		Rule:     meta.Rule,
		Boundary: meta.Boundary,
		Pattern:  meta.Pattern,
		Seed:     meta.Seed,
		Steps:    meta.Steps,
		Log:      log,
		Summary:  meta.Summary,
	})
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(live.NewModel(s), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
