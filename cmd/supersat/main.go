// Package main provides the CLI entry point for supersat-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/supersat-go/pkg/supersat"
	"github.com/ukaji3/supersat-go/pkg/supersat/config"
	"github.com/ukaji3/supersat-go/pkg/supersat/logging"
	"github.com/ukaji3/supersat-go/pkg/supersat/render"
	"github.com/ukaji3/supersat-go/pkg/supersat/repl"

	// Embedded zone database for the log time zone.
	_ "time/tzdata"
)

var (
	configPath string
	logFile    string
	logLevel   string
	gridMin    float64
	gridMax    float64
	gridPoints int
	backend    string
	outDir     string
	unlinked   bool
	noStartup  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "supersat",
		Short: "Explore ice and water supersaturation interactively",
		Long: `supersat-go draws saturation curves on an S_i(T) diagram linked to a
T_F(T) frost-point diagram and reads plotting commands from stdin.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: $SUPERSAT_CONFIG, ./supersat.yaml, ~/.config/supersat/config.yaml)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file, opened in append mode")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Console log level: debug, info, warn, error")
	rootCmd.Flags().Float64Var(&gridMin, "grid-min", 0, "Lower temperature bound in K")
	rootCmd.Flags().Float64Var(&gridMax, "grid-max", 0, "Upper temperature bound in K")
	rootCmd.Flags().IntVar(&gridPoints, "grid-points", 0, "Number of temperature samples")
	rootCmd.Flags().StringVar(&backend, "backend", "", "Rendering backend: png, xlsx, none")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for rendered diagrams")
	rootCmd.Flags().BoolVar(&unlinked, "unlinked", false, "Only show the S_i(T) diagram")
	rootCmd.Flags().BoolVar(&noStartup, "no-startup", false, "Skip the startup recipes")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	consoleLevel, _ := logging.ParseLevel(cfg.Log.ConsoleLevel)
	loc, err := logging.LoadLocation(cfg.Log.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	logger, err := logging.Open(cfg.Log.File, logging.Options{
		Level:        level,
		Console:      os.Stdout,
		ConsoleLevel: consoleLevel,
		Location:     loc,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	renderOpts := cfg.RenderOptions()
	if renderOpts.Backend != render.BackendNone {
		if err := os.MkdirAll(renderOpts.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	linked := cfg.Linked()
	surfaces := func(slug string) (render.Surface, error) {
		return render.New(slug, renderOpts)
	}
	session, err := supersat.New(supersat.Options{
		GridMin:    cfg.Grid.Min,
		GridMax:    cfg.Grid.Max,
		GridPoints: cfg.Grid.Points,
		Linked:     &linked,
		Surfaces:   surfaces,
		Logger:     logger.Logger,
	})
	if err != nil {
		return fmt.Errorf("session creation failed: %w", err)
	}

	if !noStartup {
		startup(session, cfg.Session.Startup, logger.Logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return repl.New(session, os.Stdout, logger.Logger).Run(ctx, os.Stdin)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.ConsoleLevel = logLevel
	}
	if flags.Changed("grid-min") {
		cfg.Grid.Min = gridMin
	}
	if flags.Changed("grid-max") {
		cfg.Grid.Max = gridMax
	}
	if flags.Changed("grid-points") {
		cfg.Grid.Points = gridPoints
	}
	if flags.Changed("backend") {
		cfg.Render.Backend = backend
	}
	if flags.Changed("out-dir") {
		cfg.Render.OutputDir = outDir
	}
	if unlinked {
		linked := false
		cfg.Session.Linked = &linked
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// startup draws the configured recipes. Failures are logged and do not stop
// the program.
func startup(s *supersat.Session, recipes []string, log *slog.Logger) {
	for _, name := range recipes {
		if _, err := s.Draw(name, supersat.DrawOptions{}); err != nil {
			log.Error(err.Error(), "recipe", name)
		}
	}
}
