package model

import (
	"time"

	"github.com/google/uuid"
)

// QuadratureRule selects the composite rule used to integrate the area density.
type QuadratureRule string

const (
	QuadratureSimpson   QuadratureRule = "simpson"   // Composite Simpson, trapezoidal end interval for even sample counts
	QuadratureTrapezoid QuadratureRule = "trapezoid" // Composite trapezoidal rule
)

// ParseQuadratureRule maps a user-supplied name to a rule. Unknown names
// fall back to Simpson and report false.
func ParseQuadratureRule(s string) (QuadratureRule, bool) {
	switch QuadratureRule(s) {
	case QuadratureSimpson, "":
		return QuadratureSimpson, true
	case QuadratureTrapezoid, "trapz", "trapezoidal":
		return QuadratureTrapezoid, true
	default:
		return QuadratureSimpson, false
	}
}

// GeometricSummary holds the derived quantities of one evaluated strip.
type GeometricSummary struct {
	ID          string         `json:"id"`
	Shape       ShapeConfig    `json:"shape"`
	SurfaceArea float64        `json:"surface_area"` // square units
	EdgeLength  float64        `json:"edge_length"`  // linear units
	Quadrature  QuadratureRule `json:"quadrature"`   // Rule actually applied to the area integral
	Degenerate  bool           `json:"degenerate"`   // True when the grid was too small for Simpson's rule
	ComputedAt  string         `json:"computed_at"`
}

// NewGeometricSummary stamps a summary with a fresh ID and the current time.
func NewGeometricSummary(shape ShapeConfig, area, length float64, rule QuadratureRule, degenerate bool) GeometricSummary {
	return GeometricSummary{
		ID:          uuid.New().String()[:8],
		Shape:       shape,
		SurfaceArea: area,
		EdgeLength:  length,
		Quadrature:  rule,
		Degenerate:  degenerate,
		ComputedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}
