package model

import (
	"fmt"
	"math"
)

// ShapeConfig describes one Möbius strip: centerline radius, strip width and
// the number of samples taken along each parameter axis.
type ShapeConfig struct {
	Radius     float64 `json:"radius" mapstructure:"radius"`         // R, distance from the axis to the centerline
	Width      float64 `json:"width" mapstructure:"width"`           // w, full width across the strip
	Resolution int     `json:"resolution" mapstructure:"resolution"` // n, samples per axis
}

// Minimum samples per axis needed to form finite differences and segments.
const MinResolution = 2

// DefaultShapeConfig returns the library defaults (R=1.0, w=0.2, n=100).
func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		Radius:     1.0,
		Width:      0.2,
		Resolution: 100,
	}
}

// ExampleShapeConfig returns the configuration used by the command-line
// example run (R=1.0, w=0.3, n=200).
func ExampleShapeConfig() ShapeConfig {
	return ShapeConfig{
		Radius:     1.0,
		Width:      0.3,
		Resolution: 200,
	}
}

// Validate reports an InvalidConfig error when the strip is degenerate or
// cannot be sampled.
func (c ShapeConfig) Validate() error {
	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) || c.Radius <= 0 {
		return &ConfigError{Field: "radius", Value: c.Radius, Reason: "must be a positive finite number"}
	}
	if math.IsNaN(c.Width) || math.IsInf(c.Width, 0) || c.Width <= 0 {
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be a positive finite number"}
	}
	if c.Resolution < MinResolution {
		return &ConfigError{
			Field:  "resolution",
			Value:  float64(c.Resolution),
			Reason: fmt.Sprintf("must be at least %d", MinResolution),
		}
	}
	return nil
}

// Scaled returns a copy with radius and width multiplied by k. The
// resolution is unchanged so the width-to-radius ratio stays fixed.
func (c ShapeConfig) Scaled(k float64) ShapeConfig {
	c.Radius *= k
	c.Width *= k
	return c
}

// WithResolution returns a copy sampled at n points per axis.
func (c ShapeConfig) WithResolution(n int) ShapeConfig {
	c.Resolution = n
	return c
}

func (c ShapeConfig) String() string {
	return fmt.Sprintf("R=%g w=%g n=%d", c.Radius, c.Width, c.Resolution)
}
