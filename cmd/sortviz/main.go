package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/loop"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorter"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	size       int
	minVal     int
	maxVal     int
	fps        int
	algorithm  string
	descending bool
	seed       int64
	theme      string
	logFile    string
	logLevel   string
	// run/compare only
	values  string
	animate bool
	// sweep only
	sweepFrom   int
	sweepTo     int
	sweepSteps  int
	sweepTrials int
)

const (
	liveWidth  = 70
	liveHeight = 20
)

// main registers the CLI commands. Without a subcommand it launches the
// interactive visualizer.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "step-by-step sorting algorithm visualizer",
		RunE:  runInteractive,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.IntVar(&size, "size", config.DefaultSize, "number of values")
	flags.IntVar(&minVal, "min", config.DefaultMin, "minimum value")
	flags.IntVar(&maxVal, "max", config.DefaultMax, "maximum value")
	flags.IntVar(&fps, "fps", config.DefaultFPS, "frames (steps) per second")
	flags.StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "sorting algorithm (bubble, insertion)")
	flags.BoolVar(&descending, "descending", false, "sort in descending order")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	flags.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort headlessly and print metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&values, "values", "", "comma separated values instead of a random array")
	runCmd.Flags().BoolVar(&animate, "animate", false, "draw each step as plain text bars")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare algorithms on the same array",
		Args:  cobra.NoArgs,
		RunE:  compareAlgorithms,
	}
	compareCmd.Flags().StringVar(&values, "values", "", "comma separated values instead of a random array")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a yaml scenario of loop commands",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().BoolVar(&animate, "animate", false, "draw each step as plain text bars")

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure step counts across array sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 5, "smallest array size")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 50, "largest array size")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of sizes")
	sweepCmd.Flags().IntVar(&sweepTrials, "trials", 5, "random arrays per size")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-11s size=%d range=[%d,%d] fps=%d %s %s\n", name, p.Size, p.Min, p.Max, p.FPS, p.Algorithm, p.Direction)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, scriptCmd, sweepCmd, presetsCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies the preset, then the config file, then any flags
// set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadOver(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("min") {
		cfg.Min = minVal
	}
	if flags.Changed("max") {
		cfg.Max = maxVal
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("descending") {
		cfg.Direction = sorter.Ascending.String()
		if descending {
			cfg.Direction = sorter.Descending.String()
		}
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !viz.HasTheme(cfg.Theme) {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file.
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	renderer := viz.NewRenderer(viz.RenderConfig{
		Theme:     viz.GetTheme(cfg.Theme),
		Layout:    viz.DefaultLayout(),
		ShowStats: true,
	})

	l, err := loop.New(loopConfig(cfg), renderer, log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"size":      cfg.Size,
		"algorithm": cfg.Algorithm,
		"theme":     cfg.Theme,
		"fps":       cfg.FPS,
	}).Info("starting visualizer")

	p := tea.NewProgram(viz.NewApp(l, renderer, cfg.FPS), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func loopConfig(cfg *config.Config) loop.Config {
	return loop.Config{
		Size:      cfg.Size,
		Min:       cfg.Min,
		Max:       cfg.Max,
		Algorithm: cfg.Algorithm,
		Direction: cfg.SortDirection(),
		Seed:      cfg.Seed,
	}
}

// initialValues parses --values or generates a random array from cfg.
func initialValues(cfg *config.Config) ([]int, error) {
	if values == "" {
		s := cfg.Seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		return array.Generate(rand.New(rand.NewSource(s)), cfg.Size, cfg.Min, cfg.Max)
	}

	parts := strings.Split(values, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

type runResult struct {
	name    string
	metrics map[string]float64
	history []float64
	elapsed time.Duration
}

// sortAll steps s over vals until it reports completion.
func sortAll(s sorter.Sorter, vals []int, dir sorter.Direction) runResult {
	set := metrics.NewSet(dir)
	set.Begin(vals)
	start := time.Now()
	for !s.IsDone() {
		set.Observe(vals, s.Step())
	}
	return runResult{
		name:    s.Name(),
		metrics: set.Values(),
		history: set.History(),
		elapsed: time.Since(start),
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Algorithm = args[0]
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	vals, err := initialValues(cfg)
	if err != nil {
		return err
	}
	initial := append([]int(nil), vals...)

	dir := cfg.SortDirection()
	if animate {
		return animateRun(cfg, vals, log)
	}
	s, err := sorter.NewRegistry().Get(cfg.Algorithm, vals, dir)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"algorithm": cfg.Algorithm,
		"direction": dir.String(),
		"size":      len(vals),
	}).Debug("headless run")

	fmt.Printf("sorting %d values with %s (%s)...\n", len(vals), s.Name(), dir)
	res := sortAll(s, vals, dir)

	fmt.Printf("completed in %v\n", res.elapsed)
	fmt.Printf("initial: %v\n", initial)
	fmt.Printf("final:   %v\n", vals)
	fmt.Println("\nmetrics:")
	for _, name := range metrics.NewSet(dir).Names() {
		fmt.Printf("  %s: %.0f\n", name, res.metrics[name])
	}

	if len(res.history) > 1 {
		graph := asciigraph.Plot(res.history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("inversions per step"),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	if !sorter.IsOrdered(vals, dir) {
		return fmt.Errorf("%s left the array unordered", s.Name())
	}
	return nil
}

// animateRun sorts vals through the interaction loop, drawing every step.
func animateRun(cfg *config.Config, vals []int, log logrus.FieldLogger) error {
	r := tui.NewLiveRenderer(os.Stdout, liveWidth, liveHeight, 0)
	l, err := loop.New(loopConfig(cfg), r, log)
	if err != nil {
		return err
	}
	l.Array().Set(vals)

	r.Start()
	tui.Animate(l, cfg.FPS)
	r.Stop()

	final := l.Array().Values()
	if !sorter.IsOrdered(final, l.Direction()) {
		return fmt.Errorf("%s left the array unordered", cfg.Algorithm)
	}
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	var renderer loop.Renderer
	var live *tui.LiveRenderer
	if animate {
		live = tui.NewLiveRenderer(os.Stdout, liveWidth, liveHeight, cfg.FPS)
		renderer = live
	}
	l, err := loop.New(loopConfig(cfg), renderer, log)
	if err != nil {
		return err
	}

	if live != nil {
		live.Start()
	}
	report, err := automation.RunScenario(context.Background(), sc, l)
	if live != nil {
		live.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("  %s\n", sc.Description)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tCOMMAND\tTICKS\tSORTING")
	for i, sr := range report.Steps {
		fmt.Fprintf(w, "%d\t%s\t%d\t%v\n", i+1, sr.Command, sr.Ticks, sr.Sorting)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\ntotal ticks: %d\n", report.TotalTicks)
	fmt.Printf("final: %v\n", report.Values)
	if report.Quit {
		fmt.Println("stopped by quit")
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Algorithm = args[0]
	}

	sweep := &automation.SizeSweep{
		Algorithm: cfg.Algorithm,
		Direction: cfg.SortDirection(),
		MinSize:   sweepFrom,
		MaxSize:   sweepTo,
		NumSteps:  sweepSteps,
		Trials:    sweepTrials,
		Min:       cfg.Min,
		Max:       cfg.Max,
		Seed:      cfg.Seed,
	}
	results, err := automation.RunSweep(context.Background(), sweep, sorter.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s over sizes [%d, %d], %d trials each\n\n", cfg.Algorithm, sweepFrom, sweepTo, sweepTrials)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tWRITES")
	steps := make([]float64, 0, len(results))
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\n", res.Size, res.Steps, res.Comparisons, res.Writes)
		steps = append(steps, res.Steps)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(steps) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(steps,
			asciigraph.Height(10),
			asciigraph.Caption("mean steps by size"),
		))
	}
	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	vals, err := initialValues(cfg)
	if err != nil {
		return err
	}
	dir := cfg.SortDirection()
	registry := sorter.NewRegistry()

	fmt.Printf("comparing algorithms on %d values (%s, %d inversions)\n\n", len(vals), dir, metrics.Inversions(vals, dir))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tWRITES\tTIME")

	for _, name := range registry.Names() {
		work := append([]int(nil), vals...)
		s, err := registry.Get(name, work, dir)
		if err != nil {
			return err
		}
		res := sortAll(s, work, dir)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%v\n",
			res.name,
			res.metrics["steps"],
			res.metrics["comparisons"],
			res.metrics["writes"],
			res.elapsed,
		)
	}

	return w.Flush()
}
