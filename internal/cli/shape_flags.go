package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
)

// shapeFlags are the shape parameters shared by compute, converge and export.
// Unset flags fall back to the preset (if named) and then to the config.
type shapeFlags struct {
	radius     float64
	width      float64
	resolution int
	quadrature string
	preset     string
}

func (f *shapeFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64VarP(&f.radius, "radius", "R", 0, "centerline radius (default from config)")
	fl.Float64VarP(&f.width, "width", "w", 0, "strip width (default from config)")
	fl.IntVarP(&f.resolution, "resolution", "n", 0, "samples per parameter axis (default from config)")
	fl.StringVarP(&f.quadrature, "quadrature", "q", "", "area quadrature rule (simpson, trapezoid)")
	fl.StringVarP(&f.preset, "preset", "p", "", "start from a saved preset")
}

// resolve merges config, preset and explicit flags into one shape and rule.
func (f *shapeFlags) resolve(cmd *cobra.Command, cliCtx *CLIContext) (model.ShapeConfig, model.QuadratureRule, error) {
	shape := cliCtx.Config.Shape
	rule := cliCtx.Config.Quadrature

	if f.preset != "" {
		store, err := project.LoadPresets(cliCtx.PresetPath())
		if err != nil {
			return model.ShapeConfig{}, "", fmt.Errorf("failed to load presets: %w", err)
		}
		p := store.Find(f.preset)
		if p == nil {
			return model.ShapeConfig{}, "", fmt.Errorf("preset %q not found", f.preset)
		}
		shape = p.Shape
	}

	fl := cmd.Flags()
	if fl.Changed("radius") {
		shape.Radius = f.radius
	}
	if fl.Changed("width") {
		shape.Width = f.width
	}
	if fl.Changed("resolution") {
		shape.Resolution = f.resolution
	}
	if fl.Changed("quadrature") {
		parsed, ok := model.ParseQuadratureRule(strings.ToLower(f.quadrature))
		if !ok {
			return model.ShapeConfig{}, "", fmt.Errorf("unknown quadrature rule %q", f.quadrature)
		}
		rule = parsed
	}

	if err := shape.Validate(); err != nil {
		return model.ShapeConfig{}, "", err
	}
	return shape, rule, nil
}

// newStrip builds a strip with the command's logger attached.
func newStrip(cliCtx *CLIContext, shape model.ShapeConfig, rule model.QuadratureRule) (*engine.Strip, error) {
	return engine.New(shape, engineOptions(cliCtx, rule)...)
}

func engineOptions(cliCtx *CLIContext, rule model.QuadratureRule) []engine.Option {
	return []engine.Option{
		engine.WithQuadrature(rule),
		engine.WithLogger(cliCtx.Logger.Named("engine").With(logging.String("rule", string(rule)))),
	}
}
