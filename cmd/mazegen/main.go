package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mazegen/internal/config"
	"github.com/san-kum/mazegen/internal/experiment"
	"github.com/san-kum/mazegen/internal/generator"
	"github.com/san-kum/mazegen/internal/logging"
	"github.com/san-kum/mazegen/internal/optim"
	"github.com/san-kum/mazegen/internal/render"
	"github.com/san-kum/mazegen/internal/viz"
	"github.com/spf13/cobra"
)

var (
	rows       int
	cols       int
	size       int
	seed       int64
	source     string
	preset     string
	configFile string
	logLevel   string
	logFile    string
	// Live view
	frameRate     int
	stepsPerFrame int
	theme         string
	liveGIFOut    string
	// Export targets
	svgOut string
	gifOut string
	every  int
	// Seed search
	searchCount  int
	searchMetric string
	minimize     bool
)

// main runs the CLI and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers commands and flags. The live view runs when no
// subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "mazegen",
		Short:             "step-by-step perfect maze generator",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the small live maze when no command given
			if !cmd.Flags().Changed("preset") {
				preset = "small"
			}
			return runLive(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&rows, "rows", config.DefaultRows, "grid rows")
	pf.IntVar(&cols, "cols", config.DefaultCols, "grid columns")
	pf.IntVar(&size, "size", config.DefaultSize, "rendering extent in pixels (svg/gif)")
	pf.Int64Var(&seed, "seed", 0, "random seed")
	pf.StringVar(&source, "source", config.DefaultSource, "index source (seeded, first, time)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to file instead of stderr")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate maze generation in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps", config.DefaultStepsPerFrame, "generation steps per frame")
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	liveCmd.Flags().StringVar(&liveGIFOut, "gif-out", "maze.gif", "where G recordings are saved")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate a maze and print it with metrics",
		RunE:  runMaze,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print the generation trace as CSV",
		RunE:  traceMaze,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot backtrack stack depth per step",
		RunE:  plotDepth,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "export the finished maze as SVG",
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output file (default stdout)")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "record the generation as an animated GIF",
		RunE:  exportGIF,
	}
	gifCmd.Flags().StringVarP(&gifOut, "out", "o", "maze.gif", "output file")
	gifCmd.Flags().IntVar(&every, "every", 0, "capture a frame every N steps (0 picks one from the grid size)")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "find the seed that maximizes a metric",
		RunE:  searchSeeds,
	}
	searchCmd.Flags().IntVar(&searchCount, "count", 100, "number of seeds to try, starting at --seed")
	searchCmd.Flags().StringVar(&searchMetric, "metric", "dead_ends", "metric to optimize")
	searchCmd.Flags().BoolVar(&minimize, "min", false, "minimize instead of maximize")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROWS\tCOLS\tSIZE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, p.Rows, p.Cols, p.Size)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, traceCmd, plotCmd, svgCmd, gifCmd, searchCmd, presetsCmd, initCmd)
	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if err := logging.SetLevel(logLevel); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logging.SetOutput(f)
	}
	return nil
}

// resolveConfig layers preset, config file and explicit flags in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	// Load preset if specified
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Cols = cols
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("source") {
		cfg.Source = source
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("steps") {
		cfg.StepsPerFrame = stepsPerFrame
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Logger().Debug("config resolved", "rows", cfg.Rows, "cols", cfg.Cols, "seed", cfg.Seed, "source", cfg.Source)
	return cfg, nil
}

// setupExperiment builds the grid and engine without stepping it.
func setupExperiment(cmd *cobra.Command) (*config.Config, *experiment.Experiment, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	exp := experiment.New(experiment.Config{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Seed:   cfg.Seed,
		Source: cfg.Source,
	})
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return nil, nil, err
	}
	return cfg, exp, nil
}

func generate(cmd *cobra.Command) (*config.Config, *experiment.Result, error) {
	cfg, exp, err := setupExperiment(cmd)
	if err != nil {
		return nil, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := exp.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cfg, result, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg, experiment.NewRegistry())
	if err != nil {
		return err
	}
	if cmd.Flags().Lookup("gif-out") != nil {
		m = m.WithGIFPath(liveGIFOut)
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runMaze(cmd *cobra.Command, args []string) error {
	cfg, result, err := generate(cmd)
	if err != nil {
		return err
	}

	fmt.Print(render.ASCII(result.Grid.Snapshot(), nil))
	fmt.Printf("\n%dx%d maze, seed %d (%s)\n", cfg.Rows, cfg.Cols, cfg.Seed, cfg.Source)
	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(w, "  %s\t%g\n", name, result.Metrics[name])
	}
	return w.Flush()
}

func traceMaze(cmd *cobra.Command, args []string) error {
	_, result, err := generate(cmd)
	if err != nil {
		return err
	}
	return writeTrace(os.Stdout, result.Events)
}

func writeTrace(out io.Writer, events []generator.Event) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"step", "result", "from", "to", "depth"}); err != nil {
		return err
	}
	for _, ev := range events {
		row := []string{
			strconv.Itoa(ev.Step),
			ev.Result.String(),
			ev.From.String(),
			ev.To.String(),
			strconv.Itoa(ev.Depth),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func plotDepth(cmd *cobra.Command, args []string) error {
	cfg, exp, err := setupExperiment(cmd)
	if err != nil {
		return err
	}
	rec := generator.NewRecorder()
	exp.GetEngine().AddObserver(rec)

	if _, err := exp.Run(context.Background()); err != nil {
		return err
	}

	depths := rec.Depths()
	if len(depths) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("maze: %dx%d\n", cfg.Rows, cfg.Cols)
	fmt.Printf("steps: %d\n\n", len(depths))
	graph := asciigraph.Plot(depths,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("backtrack stack depth"),
	)
	fmt.Println(graph)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, result, err := generate(cmd)
	if err != nil {
		return err
	}

	svg := render.SVG(result.Grid.Snapshot(), cfg.Size, nil)
	if svgOut == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	logging.Logger().Info("svg written", "path", svgOut)
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	if every < 0 {
		return fmt.Errorf("--every must not be negative, got %d", every)
	}
	cfg, exp, err := setupExperiment(cmd)
	if err != nil {
		return err
	}
	interval := frameInterval(cfg.Rows, cfg.Cols, every)

	eng := exp.GetEngine()
	frames := []*image.Paletted{capture(eng, cfg.Size)}
	err = eng.Run(context.Background(), func(res generator.StepResult) bool {
		if res == generator.Done || eng.Steps()%interval == 0 {
			frames = append(frames, capture(eng, cfg.Size))
		}
		return true
	})
	if err != nil {
		return err
	}

	f, err := os.Create(gifOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render.WriteGIF(f, frames, 2); err != nil {
		return err
	}
	logging.Logger().Info("gif written", "path", gifOut, "frames", len(frames))
	fmt.Printf("wrote %s (%d frames)\n", gifOut, len(frames))
	return nil
}

// maxAutoFrames bounds recordings when --every is left at 0. A full run
// takes about 2*rows*cols steps.
const maxAutoFrames = 200

func frameInterval(rows, cols, every int) int {
	if every > 0 {
		return every
	}
	return max(1, (2*rows*cols+maxAutoFrames-1)/maxAutoFrames)
}

func capture(eng *generator.Engine, size int) *image.Paletted {
	cur := eng.Current()
	return render.Frame(eng.Grid().Snapshot(), size, &cur)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func searchSeeds(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s := &optim.SeedSearch{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		From:     cfg.Seed,
		Count:    searchCount,
		Minimize: minimize,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("searching %d seeds on %dx%d...\n", searchCount, cfg.Rows, cfg.Cols)
	start := time.Now()
	res, err := s.Search(ctx, experiment.NewRegistry(), searchMetric)
	if err != nil {
		return err
	}
	logging.Logger().Debug("search done", "runs", res.Runs, "elapsed", time.Since(start))

	fmt.Printf("best seed: %d (%s = %g)\n\n", res.BestSeed, searchMetric, res.BestValue)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMIN\tMEAN\tMAX")
	for _, name := range sortedSummaryKeys(res.Summaries) {
		sum := res.Summaries[name]
		fmt.Fprintf(w, "%s\t%g\t%.2f\t%g\n", name, sum.Min, sum.Mean, sum.Max)
	}
	return w.Flush()
}

func sortedSummaryKeys(m map[string]optim.Summary) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
