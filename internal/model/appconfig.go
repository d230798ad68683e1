package model

// RenderSettings controls how the point grid is drawn by the exporters and
// the desktop viewer.
type RenderSettings struct {
	Width      int     `json:"width" mapstructure:"width"`             // pixels
	Height     int     `json:"height" mapstructure:"height"`           // pixels
	Alpha      float64 `json:"alpha" mapstructure:"alpha"`             // face opacity, 0..1
	Colormap   string  `json:"colormap" mapstructure:"colormap"`       // "viridis" or "gray"
	Elevation  float64 `json:"elevation" mapstructure:"elevation"`     // camera elevation, degrees
	Azimuth    float64 `json:"azimuth" mapstructure:"azimuth"`         // camera azimuth, degrees
	WireStride int     `json:"wire_stride" mapstructure:"wire_stride"` // draw every k-th grid line, 0 = auto
}

// DefaultRenderSettings mirrors a 10x7 inch figure at 100 dpi viewed from the
// usual 3D-axes camera angle.
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Width:      1000,
		Height:     700,
		Alpha:      0.85,
		Colormap:   "viridis",
		Elevation:  30,
		Azimuth:    -60,
		WireStride: 0,
	}
}

// Validate reports the first unusable render setting.
func (r RenderSettings) Validate() error {
	switch {
	case r.Width <= 0:
		return &ConfigError{Field: "render.width", Value: float64(r.Width), Reason: "must be positive"}
	case r.Height <= 0:
		return &ConfigError{Field: "render.height", Value: float64(r.Height), Reason: "must be positive"}
	case r.Alpha < 0 || r.Alpha > 1:
		return &ConfigError{Field: "render.alpha", Value: r.Alpha, Reason: "must be within [0, 1]"}
	case r.WireStride < 0:
		return &ConfigError{Field: "render.wire_stride", Value: float64(r.WireStride), Reason: "must not be negative"}
	}
	return nil
}

// Stride returns the grid stride to draw n samples with roughly target
// lines per direction, honouring an explicit WireStride.
func (r RenderSettings) Stride(n, target int) int {
	if r.WireStride > 0 {
		return r.WireStride
	}
	if target <= 0 || n <= target {
		return 1
	}
	return (n - 1 + target - 1) / target
}

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	Shape      ShapeConfig    `json:"shape" mapstructure:"shape"`
	Quadrature QuadratureRule `json:"quadrature" mapstructure:"quadrature"`
	Render     RenderSettings `json:"render" mapstructure:"render"`

	// Application preferences
	OutputDir     string   `json:"output_dir" mapstructure:"output_dir"`
	LogLevel      string   `json:"log_level" mapstructure:"log_level"`   // "debug", "info", "warn", "error"
	LogFormat     string   `json:"log_format" mapstructure:"log_format"` // "json" or "console"
	RecentExports []string `json:"recent_exports" mapstructure:"recent_exports"`
	Theme         string   `json:"theme" mapstructure:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Shape:         DefaultShapeConfig(),
		Quadrature:    QuadratureSimpson,
		Render:        DefaultRenderSettings(),
		OutputDir:     ".",
		LogLevel:      "info",
		LogFormat:     "console",
		RecentExports: []string{},
		Theme:         "system",
	}
}

const maxRecentExports = 10

// AddRecentExport records path at the front of the recent list, dropping
// duplicates and trimming the list to its maximum length.
func (c *AppConfig) AddRecentExport(path string) {
	recent := []string{path}
	for _, p := range c.RecentExports {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentExports {
		recent = recent[:maxRecentExports]
	}
	c.RecentExports = recent
}
