package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/tslab/internal/anim"
	"github.com/san-kum/tslab/internal/config"
	"github.com/san-kum/tslab/internal/export"
	"github.com/san-kum/tslab/internal/kinetics"
	"github.com/san-kum/tslab/internal/palette"
	"github.com/san-kum/tslab/internal/plot"
	"github.com/san-kum/tslab/internal/raster"
	"github.com/san-kum/tslab/internal/viz"
)

var (
	// ErrUnknownPlot is returned for a plot name other than eyring or salt.
	ErrUnknownPlot = errors.New("unknown plot")
	// ErrTooFewFrames is returned when a recording cannot show its mode switch.
	ErrTooFewFrames = errors.New("too few frames")
)

var (
	// Global
	configFile string
	logLevel   string
	logFile    string
	seed       int64
	// Eyring
	deltaH float64
	deltaS float64
	// Salt effect
	zA int
	zB int
	// Output, one destination per command
	preset    string
	chartOut  string
	gifOut    string
	exportOut string
	chartW    int
	chartH    int
	termW     int
	termH     int
	format    string
	// Animation
	mode      string
	particles int
	frameRate int
	frames    int
	width     int
	height    int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flag variables are package level, so
// each call also resets them to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tslab",
		Short:         "transition-state kinetics lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, viz.TabEyring)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file for the interactive UI")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "particle seed (0 = time based)")

	eyringCmd := &cobra.Command{
		Use:   "eyring",
		Short: "plot ln(k/T) against 1/T",
		Args:  cobra.NoArgs,
		RunE:  runEyring,
	}
	eyringCmd.Flags().Float64Var(&deltaH, "dh", config.DefaultDeltaH, "enthalpy of activation (kJ/mol)")
	eyringCmd.Flags().Float64Var(&deltaS, "ds", config.DefaultDeltaS, "entropy of activation (J/(mol K))")
	addPlotFlags(eyringCmd)

	saltCmd := &cobra.Command{
		Use:   "salt",
		Short: "plot log(k/k0) against sqrt(I)",
		Args:  cobra.NoArgs,
		RunE:  runSalt,
	}
	saltCmd.Flags().IntVar(&zA, "za", config.DefaultZA, "charge of ion A")
	saltCmd.Flags().IntVar(&zB, "zb", config.DefaultZB, "charge of ion B")
	addPlotFlags(saltCmd)

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "open the transition-state animation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, viz.TabAnimation)
		},
	}
	addAnimationFlags(animateCmd)

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record the animation to a GIF",
		Args:  cobra.NoArgs,
		RunE:  runRecord,
	}
	addAnimationFlags(recordCmd)
	recordCmd.Flags().IntVar(&frames, "frames", 120, "number of frames")
	recordCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	recordCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	recordCmd.Flags().StringVarP(&gifOut, "out", "o", "transition_state.gif", "output file")
	recordCmd.Flags().Lookup("mode").Usage = "associative, dissociative or both"

	presetsCmd := &cobra.Command{
		Use:   "presets [plot]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export [eyring|salt]",
		Short: "export curve data",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().Float64Var(&deltaH, "dh", config.DefaultDeltaH, "enthalpy of activation (kJ/mol)")
	exportCmd.Flags().Float64Var(&deltaS, "ds", config.DefaultDeltaS, "entropy of activation (J/(mol K))")
	exportCmd.Flags().IntVar(&zA, "za", config.DefaultZA, "charge of ion A")
	exportCmd.Flags().IntVar(&zB, "zb", config.DefaultZB, "charge of ion B")
	exportCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	exportCmd.Flags().StringVar(&format, "format", "csv", "csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "output file (- for stdout)")

	rootCmd.AddCommand(eyringCmd, saltCmd, animateCmd, recordCmd, presetsCmd, exportCmd)
	return rootCmd
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	cmd.Flags().StringVarP(&chartOut, "out", "o", "", "write a .png or .svg chart instead of printing")
	cmd.Flags().IntVar(&chartW, "chart-width", 800, "image chart width")
	cmd.Flags().IntVar(&chartH, "chart-height", 500, "image chart height")
	cmd.Flags().IntVar(&termW, "term-width", 70, "terminal chart width")
	cmd.Flags().IntVar(&termH, "term-height", 15, "terminal chart height")
}

func addAnimationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "associative or dissociative")
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particles per mode")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
}

// loadConfig reads --config when given and lets explicitly set flags win.
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
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("preset") != nil && preset != "" {
		plotName := cmd.Name()
		if plotName == "export" && flags.NArg() > 0 {
			plotName = flags.Arg(0)
		}
		if err := cfg.Apply(plotName, preset); err != nil {
			return nil, err
		}
	}
	if flags.Changed("dh") {
		cfg.Eyring.DeltaH = deltaH
	}
	if flags.Changed("ds") {
		cfg.Eyring.DeltaS = deltaS
	}
	if flags.Changed("za") {
		cfg.Salt.ZA = zA
	}
	if flags.Changed("zb") {
		cfg.Salt.ZB = zB
	}
	if flags.Changed("mode") {
		cfg.Animation.Mode = mode
	}
	if flags.Changed("particles") {
		cfg.Animation.Particles = particles
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = frameRate
	}
	if flags.Changed("width") {
		cfg.Animation.Width = width
	}
	if flags.Changed("height") {
		cfg.Animation.Height = height
	}
	return cfg, nil
}

func runEyring(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	p := kinetics.Eyring(kinetics.EyringParams{DeltaH: cfg.Eyring.DeltaH, DeltaS: cfg.Eyring.DeltaS})
	logger.Debug("eyring curve", "points", len(p.Curve), "slope", p.Slope)
	return emitFigure(cmd.OutOrStdout(), plot.EyringFigure(p), logger)
}

func runSalt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	p := kinetics.SaltEffect(kinetics.SaltParams{ZA: cfg.Salt.ZA, ZB: cfg.Salt.ZB})
	logger.Debug("salt effect curve", "points", len(p.Curve), "product", p.Product, "class", p.Class)
	return emitFigure(cmd.OutOrStdout(), plot.SaltEffectFigure(p), logger)
}

// emitFigure prints f to w, or renders it to chartOut with the format
// taken from the file extension.
func emitFigure(w io.Writer, f plot.Figure, logger *log.Logger) error {
	if chartOut == "" {
		fmt.Fprintln(w, plot.Terminal(f, termW, termH))
		return nil
	}

	ext := strings.TrimPrefix(filepath.Ext(chartOut), ".")
	fmtOut, err := plot.ParseFormat(ext)
	if err != nil {
		return err
	}
	file, err := os.Create(chartOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", chartOut, err)
	}
	defer file.Close()

	if err := plot.Render(file, f, fmtOut, chartW, chartH); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	logger.Info("chart saved", "path", chartOut, "format", fmtOut)
	return nil
}

func runTUI(cmd *cobra.Command, tab viz.Tab) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := anim.ParseMode(cfg.Animation.Mode); err != nil {
		return err
	}
	logger, closeLog, err := tuiLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	app := viz.NewApp(cfg,
		viz.WithLogger(logger),
		viz.WithContext(cmd.Context()),
		viz.WithTab(tab),
	)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	both := cfg.Animation.Mode == "both"
	start := anim.Associative
	if !both {
		if start, err = anim.ParseMode(cfg.Animation.Mode); err != nil {
			return err
		}
	}
	if frames < 1 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrTooFewFrames, frames)
	}
	// both modes need at least one frame each
	if both && frames < 2 {
		return fmt.Errorf("%w: mode both needs at least 2 frames, got %d", ErrTooFewFrames, frames)
	}

	w, h := cfg.Animation.Width, cfg.Animation.Height
	img := raster.New(w, h, palette.RGBA(palette.Night))
	style := anim.DefaultStyle()
	if cfg.Animation.Radius > 0 {
		style.Radius = cfg.Animation.Radius
	}
	opts := []anim.Option{
		anim.WithMode(start),
		anim.WithParticles(cfg.Animation.Particles),
		anim.WithStyle(style),
		anim.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, anim.WithSeed(cfg.Seed))
	}
	engine := anim.New(img, float64(w), float64(h), opts...)

	interval := anim.IntervalForFPS(cfg.Animation.FPS)
	rec := raster.NewRecorder(raster.FramePalette(palette.Night, palette.LightBlue, palette.Red, palette.White), interval)
	loop := anim.NewLoop(anim.RealClock(), interval)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	captured := 0
	handle := loop.Start(ctx, func(now time.Time) {
		if captured >= frames {
			return
		}
		engine.Frame(now)
		rec.Capture(img)
		captured++
		if both && captured == frames/2 {
			engine.SetMode(anim.Dissociative)
		}
		if captured >= frames {
			cancel()
		}
	})
	logger.Info("recording", "frames", frames, "fps", cfg.Animation.FPS, "mode", cfg.Animation.Mode)
	<-handle.Done()

	if rec.Len() < frames {
		logger.Warn("recording interrupted", "captured", rec.Len())
	}
	file, err := os.Create(gifOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", gifOut, err)
	}
	defer file.Close()
	if err := rec.Encode(file); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	logger.Info("gif saved", "path", gifOut, "frames", rec.Len())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	plots := []string{config.PlotEyring, config.PlotSalt}
	if len(args) == 1 {
		plots = args
	}
	out := cmd.OutOrStdout()
	for _, name := range plots {
		presets := config.ListPresets(name)
		if presets == nil {
			return fmt.Errorf("%w: %s", ErrUnknownPlot, name)
		}
		fmt.Fprintf(out, "presets for %s:\n", name)
		for _, p := range presets {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	var data func(*config.Config) export.ExportData
	switch args[0] {
	case config.PlotEyring:
		data = func(cfg *config.Config) export.ExportData {
			return export.Eyring(kinetics.Eyring(kinetics.EyringParams{DeltaH: cfg.Eyring.DeltaH, DeltaS: cfg.Eyring.DeltaS}))
		}
	case config.PlotSalt:
		data = func(cfg *config.Config) export.ExportData {
			return export.SaltEffect(kinetics.SaltEffect(kinetics.SaltParams{ZA: cfg.Salt.ZA, ZB: cfg.Salt.ZB}))
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPlot, args[0])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmtOut, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	if exportOut == "" || exportOut == "-" {
		err = export.Write(cmd.OutOrStdout(), data(cfg), fmtOut)
	} else {
		err = export.WriteFile(exportOut, data(cfg), fmtOut)
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	return nil
}
