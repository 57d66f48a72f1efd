package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandel/internal/config"
	"github.com/san-kum/mandel/internal/engine"
	"github.com/san-kum/mandel/internal/explorer"
	"github.com/san-kum/mandel/internal/metrics"
	"github.com/san-kum/mandel/internal/scene"
)

var (
	configFile  string
	verbose     bool
	width       int
	height      int
	tilesX      int
	tilesY      int
	laneWidth   int
	workers     int
	iterations  uint32
	preset      string
	theme       string
	supersample int
	steps       int
	repeats     int
	cols        int
	rows        int
)

// main registers the command tree; with no subcommand the interactive
// explorer starts.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mandel",
		Short: "mandelbrot escape-time explorer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
		RunE: runExplore,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log renders to stderr")
	pf.IntVar(&tilesX, "tiles-x", engine.DefaultTilesX, "tile columns")
	pf.IntVar(&tilesY, "tiles-y", engine.DefaultTilesY, "tile rows")
	pf.IntVar(&laneWidth, "lanes", engine.DefaultLaneWidth, "pixels per kernel batch")
	pf.IntVar(&workers, "workers", 0, "concurrent tiles (0 = GOMAXPROCS)")
	pf.Uint32Var(&iterations, "iterations", engine.DefaultIterations, "iteration budget")
	pf.StringVar(&preset, "preset", "", "start at a named preset")
	pf.IntVar(&supersample, "supersample", config.DefaultSupersample, "engine pixels per terminal sub-pixel")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive terminal explorer",
		RunE:  runExplore,
	}
	exploreCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", explorer.ThemeNames()))
	exploreCmd.Flags().IntVar(&steps, "steps", scene.DefaultSteps, "frames per animated transition")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "print one frame to stdout",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&cols, "cols", 80, "terminal columns")
	snapshotCmd.Flags().IntVar(&rows, "rows", 24, "terminal rows")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time renders across tile and lane layouts",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&width, "width", 640, "grid width")
	benchCmd.Flags().IntVar(&height, "height", 360, "grid height")
	benchCmd.Flags().IntVar(&repeats, "repeat", 5, "renders per layout")

	traceCmd := &cobra.Command{
		Use:   "trace [from] [to]",
		Short: "animate between two presets and plot frame times",
		Args:  cobra.ExactArgs(2),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&width, "width", 640, "grid width")
	traceCmd.Flags().IntVar(&height, "height", 360, "grid height")
	traceCmd.Flags().IntVar(&steps, "steps", scene.DefaultSteps, "frames in the transition")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named viewports",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(exploreCmd, snapshotCmd, benchCmd, traceCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file if given, then applies any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("tiles-x") {
		cfg.Engine.TilesX = tilesX
	}
	if flags.Changed("tiles-y") {
		cfg.Engine.TilesY = tilesY
	}
	if flags.Changed("lanes") {
		cfg.Engine.LaneWidth = laneWidth
	}
	if flags.Changed("workers") {
		cfg.Engine.Workers = workers
	}
	if flags.Changed("iterations") {
		cfg.Viewport.Iterations = iterations
	}
	if flags.Changed("preset") {
		cfg.Explorer.Preset = preset
	}
	if flags.Changed("supersample") {
		cfg.Explorer.Supersample = supersample
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Explorer.Theme = theme
	}
	if flags.Lookup("steps") != nil && flags.Changed("steps") {
		cfg.AnimationSteps = steps
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return explorer.Run(cfg)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v, err := cfg.StartViewport(cols * cfg.Explorer.Supersample)
	if err != nil {
		return err
	}
	out, err := explorer.Snapshot(cfg, v, cols, rows-1)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if repeats < 1 {
		return fmt.Errorf("repeat must be positive, got %d", repeats)
	}
	v, err := cfg.StartViewport(cfg.Width)
	if err != nil {
		return err
	}

	layouts := []engine.Config{
		{TilesX: 1, TilesY: 1, LaneWidth: 1},
		{TilesX: 1, TilesY: 1, LaneWidth: engine.DefaultLaneWidth},
		{TilesX: 2, TilesY: 2, LaneWidth: engine.DefaultLaneWidth},
		engine.DefaultConfig(),
		{TilesX: engine.DefaultTilesX, TilesY: engine.DefaultTilesY, LaneWidth: 8},
		{TilesX: 8, TilesY: 8, LaneWidth: engine.DefaultLaneWidth},
		cfg.Engine,
	}

	fmt.Printf("benchmarking %dx%d at %v\n\n", cfg.Width, cfg.Height, v)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TILES\tLANES\tWORKERS\tMEAN\tMIN\tMAX\tPIXELS/SEC")

	means := make([]float64, 0, len(layouts))
	for _, layout := range layouts {
		layout.Workers = cfg.Engine.Workers
		eng, err := engine.New(cfg.Width, cfg.Height, layout)
		if err != nil {
			return err
		}

		frameTime, throughput := metrics.NewFrameTime(), metrics.NewThroughput()
		seq := scene.New(eng)
		for i := 0; i < repeats; i++ {
			metrics.ObserveAll(seq.Push(v), frameTime, throughput)
		}
		means = append(means, frameTime.Value())

		workerLabel := "auto"
		if layout.Workers > 0 {
			workerLabel = fmt.Sprint(layout.Workers)
		}
		fmt.Fprintf(w, "%dx%d\t%d\t%s\t%.2fms\t%.2fms\t%.2fms\t%.0f\n",
			layout.TilesX, layout.TilesY, layout.LaneWidth, workerLabel,
			frameTime.Value(), frameTime.Min(), frameTime.Max(), throughput.Value())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(means,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("mean render time (ms) per layout"),
	))
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	from, to := config.GetPreset(args[0]), config.GetPreset(args[1])
	if from == nil || to == nil {
		return fmt.Errorf("unknown preset (available: %v)", config.ListPresets())
	}

	eng, err := engine.New(cfg.Width, cfg.Height, cfg.Engine)
	if err != nil {
		return err
	}

	seq := scene.New(eng)
	seq.Push(from.Viewport(cfg.Width))

	times := make([]float64, 0, cfg.AnimationSteps)
	frameTime, throughput := metrics.NewFrameTime(), metrics.NewThroughput()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tCENTER\tSCALE\tITER\tINTERIOR\tTIME")
	final := seq.Animate(to.Viewport(cfg.Width), cfg.AnimationSteps, func(step, total int, s *scene.Scene) {
		interior := metrics.NewInterior()
		metrics.ObserveAll(s, frameTime, throughput, interior)
		times = append(times, float64(s.Elapsed().Microseconds())/1000)

		v := s.Viewport()
		fmt.Fprintf(w, "%d/%d\t%.6f, %.6f\t%.3g\t%d\t%.1f%%\t%v\n",
			step, total, v.CenterX, v.CenterY, v.Scale, v.Iterations, interior.Value()*100, s.Elapsed())
	})
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nfinal: %v\n", final.Viewport())
	fmt.Printf("%s: mean %.2f min %.2f max %.2f, %s: %.0f\n\n",
		frameTime.Name(), frameTime.Value(), frameTime.Min(), frameTime.Max(),
		throughput.Name(), throughput.Value())
	if len(times) > 1 {
		fmt.Println(asciigraph.Plot(times,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s -> %s frame time (ms)", args[0], args[1])),
		))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCENTER\tSPAN\tITER\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g, %g\t%g\t%d\t%s\n", p.Name, p.CenterX, p.CenterY, p.Span, p.Iterations, p.Description)
	}
	return w.Flush()
}
