package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// envPrefix is the environment variable prefix for config overrides, e.g.
// MOBIUS_SHAPE_RADIUS or MOBIUS_RENDER_ALPHA.
const envPrefix = "MOBIUS"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.mobius/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".mobius")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// newViper builds a viper instance reading JSON, with MOBIUS_ environment
// overrides where "." in a key maps to "_".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// setDefaults registers every key so environment variables can override
// values that are absent from the file.
func setDefaults(v *viper.Viper, cfg model.AppConfig) {
	v.SetDefault("shape.radius", cfg.Shape.Radius)
	v.SetDefault("shape.width", cfg.Shape.Width)
	v.SetDefault("shape.resolution", cfg.Shape.Resolution)
	v.SetDefault("quadrature", string(cfg.Quadrature))
	v.SetDefault("render.width", cfg.Render.Width)
	v.SetDefault("render.height", cfg.Render.Height)
	v.SetDefault("render.alpha", cfg.Render.Alpha)
	v.SetDefault("render.colormap", cfg.Render.Colormap)
	v.SetDefault("render.elevation", cfg.Render.Elevation)
	v.SetDefault("render.azimuth", cfg.Render.Azimuth)
	v.SetDefault("render.wire_stride", cfg.Render.WireStride)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("recent_exports", cfg.RecentExports)
	v.SetDefault("theme", cfg.Theme)
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path and applies MOBIUS_
// environment overrides. If the file does not exist, the defaults (plus any
// overrides) are returned with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := newViper()
	setDefaults(v, model.DefaultAppConfig())

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return model.AppConfig{}, fmt.Errorf("config: failed to read %q: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return model.AppConfig{}, err
	}

	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if config.RecentExports == nil {
		config.RecentExports = []string{}
	}

	rule, ok := model.ParseQuadratureRule(strings.ToLower(string(config.Quadrature)))
	if !ok {
		return model.AppConfig{}, fmt.Errorf("config: unknown quadrature rule %q", config.Quadrature)
	}
	config.Quadrature = rule

	if err := config.Shape.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("config: %w", err)
	}
	if err := config.Render.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("config: %w", err)
	}
	return config, nil
}
