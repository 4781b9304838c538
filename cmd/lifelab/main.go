package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifelab/internal/automation"
	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/gui"
	"github.com/san-kum/lifelab/internal/metrics"
	"github.com/san-kum/lifelab/internal/pattern"
	"github.com/san-kum/lifelab/internal/sim"
	"github.com/san-kum/lifelab/internal/storage"
	"github.com/san-kum/lifelab/internal/tui"
	"github.com/san-kum/lifelab/internal/viz"
)

var (
	dataDir     string
	width       int
	height      int
	patternName string
	offsetX     int
	offsetY     int
	probability float64
	seed        int64
	epochs      int
	intervalMs  int
	stopStable  bool
	configFile  string
	preset      string
	// gui options
	scale int
	tps   int
	// patterns command
	showMask string
	// sweep options
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	sweepTrials int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifelab",
		Short: "conway's game of life lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the console watcher, seeded with the glider gun.
			cfg := config.DefaultConfig()
			cfg.Pattern = "gosper-gun"
			return watchField(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the result",
		RunE:  runSimulation,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().BoolVar(&stopStable, "stop-when-stable", true, "stop once an epoch leaves the field unchanged")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with the interactive terminal view",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "run with the plain console view",
		RunE:  runWatch,
	}
	addSceneFlags(watchCmd)
	watchCmd.Flags().BoolVar(&stopStable, "stop-when-stable", false, "stop once an epoch leaves the field unchanged")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run with the graphical window",
		RunE:  runGUI,
	}
	addSceneFlags(guiCmd)
	guiCmd.Flags().IntVar(&scale, "scale", 10, "pixels per cell")
	guiCmd.Flags().IntVar(&tps, "tps", 10, "epochs per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's population history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's population history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list known patterns",
		RunE:  listPatterns,
	}
	patternsCmd.Flags().StringVar(&showMask, "show", "", "print the mask of a pattern")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				desc := cfg.Pattern
				if desc == "" {
					desc = fmt.Sprintf("random p=%.2f", cfg.Probability)
				}
				fmt.Printf("  %-10s %dx%d  %s\n", name, cfg.Width, cfg.Height, desc)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep random soups across a range of alive probabilities",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "field width")
	sweepCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "field height")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.05, "lowest alive probability")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.5, "highest alive probability")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of probability values")
	sweepCmd.Flags().IntVar(&sweepTrials, "trials", 5, "trials per probability value")
	sweepCmd.Flags().IntVar(&epochs, "epochs", config.DefaultEpochs, "epochs per trial")
	sweepCmd.Flags().Int64Var(&seed, "seed", -1, "sweep seed (negative: derive from clock)")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "run every scene in a batch file and store the results",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	rootCmd.AddCommand(runCmd, liveCmd, watchCmd, guiCmd, sweepCmd, batchCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, patternsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "field width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "field height")
	cmd.Flags().StringVar(&patternName, "pattern", "", "seed pattern (see 'lifelab patterns')")
	cmd.Flags().IntVar(&offsetX, "dx", 0, "pattern x offset")
	cmd.Flags().IntVar(&offsetY, "dy", 0, "pattern y offset")
	cmd.Flags().Float64Var(&probability, "probability", config.DefaultProbability, "alive probability for random seeding")
	cmd.Flags().Int64Var(&seed, "seed", -1, "random seed (negative: derive from clock)")
	cmd.Flags().IntVar(&epochs, "epochs", config.DefaultEpochs, "number of epochs")
	cmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "delay between epochs in milliseconds")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves the scene: defaults, then preset, then config
// file, then explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("pattern") {
		cfg.Pattern = patternName
	}
	if flags.Changed("dx") {
		cfg.OffsetX = offsetX
	}
	if flags.Changed("dy") {
		cfg.OffsetY = offsetY
	}
	if flags.Changed("probability") {
		cfg.Probability = probability
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("epochs") {
		cfg.Epochs = epochs
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	f, err := cfg.BuildField()
	if err != nil {
		return err
	}

	runner := sim.NewRunner()
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}

	fmt.Printf("running life simulation (%dx%d, %d epochs)...\n", cfg.Width, cfg.Height, cfg.Epochs)
	start := time.Now()

	result, err := runner.Run(context.Background(), f, sim.Config{
		Epochs:         cfg.Epochs,
		StopWhenStable: stopStable,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, f, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("epochs: %d\n", result.Epochs)
	if result.Stable {
		fmt.Println("field stabilized early")
	}
	fmt.Println("\nmetrics:")
	printMetrics(os.Stdout, result.Metrics)

	return nil
}

func printMetrics(w io.Writer, values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %.4f\n", name, values[name])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	f, err := cfg.BuildField()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(f, cfg))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return watchField(cfg)
}

func watchField(cfg *config.Config) error {
	f, err := cfg.BuildField()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := tui.NewConsoleView()
	view.Start()
	defer view.Stop()

	runner := sim.NewRunner()
	runner.AddObserver(view)

	result, err := runner.Run(ctx, f, sim.Config{
		Epochs:         cfg.Epochs,
		Interval:       cfg.Interval(),
		StopWhenStable: stopStable,
	})
	if errors.Is(err, context.Canceled) {
		fmt.Printf("\ninterrupted after %d epochs\n", result.Epochs)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nfinished: %d epochs, population %d", result.Epochs, f.Population())
	if result.Stable {
		fmt.Print(" (stable)")
	}
	fmt.Println()
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	f, err := cfg.BuildField()
	if err != nil {
		return err
	}

	return gui.Run(f, scale, tps)
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := &automation.ProbabilitySweep{
		Width:   width,
		Height:  height,
		MinProb: sweepMin,
		MaxProb: sweepMax,
		Steps:   sweepSteps,
		Trials:  sweepTrials,
		Epochs:  epochs,
		Seed:    seed,
	}

	points, err := automation.RunSweep(cmd.Context(), sweep)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nPROB\tMEAN POP\tDENSITY\tSTABLE")
	data := make([]float64, len(points))
	for i, pt := range points {
		data[i] = pt.MeanPopulation
		fmt.Fprintf(w, "%.3f\t%.1f\t%.1f%%\t%.0f%%\n",
			pt.Probability,
			pt.MeanPopulation,
			100*pt.MeanDensity,
			100*pt.StableFraction,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("mean final population vs alive probability"),
	)
	fmt.Println("\n" + graph)

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	batch, err := automation.LoadBatch(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	if batch.Name != "" {
		fmt.Printf("batch: %s\n", batch.Name)
	}

	runIDs, err := automation.RunBatch(cmd.Context(), batch, st)
	if err != nil {
		return err
	}

	fmt.Printf("\nstored %d runs:\n", len(runIDs))
	for _, id := range runIDs {
		fmt.Printf("  %s\n", id)
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
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tSEED\tEPOCHS\tPOP\tSTABLE")

	for _, run := range runs {
		seedInfo := run.Pattern
		if seedInfo == "" {
			seedInfo = fmt.Sprintf("p=%.2f", run.Probability)
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%d\t%d\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			seedInfo,
			run.Epochs,
			run.Population,
			run.Stable,
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

	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("field: %dx%d\n", meta.Width, meta.Height)
	fmt.Printf("samples: %d\n\n", len(pops))

	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population vs epoch"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	finalField, err := st.LoadFinalField(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, pops, finalField)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"epoch", "population"}); err != nil {
		return err
	}
	for epoch, pop := range pops {
		if err := w.Write([]string{strconv.Itoa(epoch), strconv.Itoa(pop)}); err != nil {
			return err
		}
	}

	return nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	if showMask != "" {
		mask, err := pattern.Get(showMask)
		if err != nil {
			return err
		}
		for _, row := range mask {
			fmt.Println(row)
		}
		return nil
	}

	for _, name := range pattern.Names() {
		mask, _ := pattern.Get(name)
		w, h := pattern.Size(mask)
		fmt.Printf("  %-12s %dx%d\n", name, w, h)
	}
	return nil
}
