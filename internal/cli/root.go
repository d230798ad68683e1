// Package cli implements the mobius command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/export"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// CLIContext carries the loaded config and logger through the command tree.
type CLIContext struct {
	Config     model.AppConfig
	ConfigPath string
	Logger     logging.Logger
}

// PresetPath returns the preset store that sits next to the config file.
func (c *CLIContext) PresetPath() string {
	return filepath.Join(filepath.Dir(c.ConfigPath), "presets.json")
}

// SaveConfig persists the current config.
func (c *CLIContext) SaveConfig() error {
	if err := project.SaveAppConfig(c.ConfigPath, c.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// NewRootCommand creates the root command with all global flags and
// subcommands. Run without a subcommand it evaluates the example strip
// (R=1, w=0.3, n=200), prints both quantities and renders a PNG.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	var render renderOptions

	cmd := &cobra.Command{
		Use:   "mobius",
		Short: "Mobius strip surface geometry engine",
		Long: "mobius samples a parametric Mobius strip on a regular grid and estimates its\n" +
			"surface area and boundary length numerically.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExample(cmd, render)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ~/.mobius/config.json)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (console, json); overrides the config")

	render.bind(cmd, "png")

	cmd.AddCommand(
		newComputeCmd(),
		newConvergeCmd(),
		newExportCmd(),
		newBatchCmd(),
		newPresetCmd(),
	)
	return cmd
}

// persistentPreRun loads config and logger, then stores a CLIContext.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	path := opts.ConfigPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logCfg := logging.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat}
	if opts.LogLevel != "" {
		logCfg.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		logCfg.Format = opts.LogFormat
	}
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	cliCtx := &CLIContext{Config: cfg, ConfigPath: path, Logger: logger.Named("cli")}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.New("CLIContext not found in command context")
	}
	return cliCtx, nil
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd, err)
		return err
	}
	return nil
}

func runExample(cmd *cobra.Command, render renderOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	strip, err := engine.New(model.ExampleShapeConfig(),
		engine.WithQuadrature(cliCtx.Config.Quadrature),
		engine.WithLogger(cliCtx.Logger.Named("engine")))
	if err != nil {
		return err
	}

	summary := strip.Summary()
	printQuantities(cmd, summary)
	return render.run(cliCtx, strip)
}

// printQuantities writes the two headline numbers.
func printQuantities(cmd *cobra.Command, s model.GeometricSummary) {
	fmt.Fprintf(cmd.OutOrStdout(), "Surface Area: %.4f\n", s.SurfaceArea)
	fmt.Fprintf(cmd.OutOrStdout(), "Edge Length: %.4f\n", s.EdgeLength)
}

// renderOptions selects the rendering collaborator invoked after a run.
type renderOptions struct {
	mode string
	out  string
}

func (r *renderOptions) bind(cmd *cobra.Command, defaultMode string) {
	cmd.Flags().StringVar(&r.mode, "render", defaultMode, "render the surface after computing (none, png)")
	cmd.Flags().StringVar(&r.out, "plot", "", "PNG output path (default: <output_dir>/mobius_strip.png)")
}

func (r renderOptions) run(cliCtx *CLIContext, strip *engine.Strip) error {
	switch r.mode {
	case "none", "":
		return nil
	case "png":
	default:
		return fmt.Errorf("unknown render mode %q (want none or png)", r.mode)
	}

	path := r.out
	if path == "" {
		path = filepath.Join(cliCtx.Config.OutputDir, "mobius_strip.png")
	}
	if err := export.RenderPNG(path, strip.Points(), cliCtx.Config.Render); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	cliCtx.Logger.Info("surface rendered", logging.String("path", path))
	return nil
}
