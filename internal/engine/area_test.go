package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

func measure(t *testing.T, cfg model.ShapeConfig, rule model.QuadratureRule) AreaEstimate {
	t.Helper()
	grid, err := BuildGrid(cfg)
	require.NoError(t, err)
	return SurfaceArea(grid, Evaluate(grid, cfg.Radius), rule)
}

func TestSurfaceArea_ExampleReference(t *testing.T) {
	est := measure(t, model.ExampleShapeConfig(), model.QuadratureSimpson)

	assert.InDelta(t, 1.8864193416, est.Area, 1e-8)
	assert.Equal(t, model.QuadratureSimpson, est.Rule)
	assert.False(t, est.Degenerate)
}

func TestSurfaceArea_OddResolutionReference(t *testing.T) {
	est := measure(t, model.ShapeConfig{Radius: 1, Width: 0.3, Resolution: 201}, model.QuadratureSimpson)
	assert.InDelta(t, 1.8864224722, est.Area, 1e-8)
}

func TestSurfaceArea_DefaultsReference(t *testing.T) {
	est := measure(t, model.DefaultShapeConfig(), model.QuadratureSimpson)
	assert.InDelta(t, 1.2563177079, est.Area, 1e-8)
}

func TestSurfaceArea_CloseToCenterlineTimesWidth(t *testing.T) {
	// For a narrow strip the area is close to 2πR·w.
	est := measure(t, model.ShapeConfig{Radius: 1, Width: 0.3, Resolution: 401}, model.QuadratureSimpson)
	assert.InEpsilon(t, 2*math.Pi*0.3, est.Area, 0.01)
}

func TestSurfaceArea_TrapezoidCloseToSimpson(t *testing.T) {
	cfg := model.ExampleShapeConfig()
	simpson := measure(t, cfg, model.QuadratureSimpson)
	trap := measure(t, cfg, model.QuadratureTrapezoid)

	assert.Equal(t, model.QuadratureTrapezoid, trap.Rule)
	assert.InEpsilon(t, simpson.Area, trap.Area, 0.01)
}

func TestSurfaceArea_TwoSamplesDoesNotFail(t *testing.T) {
	est := measure(t, model.ShapeConfig{Radius: 1, Width: 0.3, Resolution: 2}, model.QuadratureSimpson)

	// Both u samples land on the same chord under the half-twist, so the
	// tangents are parallel and the area collapses.
	assert.InDelta(t, 0.0, est.Area, 1e-9)
	assert.True(t, est.Degenerate)
	assert.Equal(t, model.QuadratureTrapezoid, est.Rule)
}

func TestSurfaceArea_SmallGrids(t *testing.T) {
	assert.InDelta(t, 0.03, measure(t, model.ShapeConfig{Radius: 1, Width: 0.3, Resolution: 3}, model.QuadratureSimpson).Area, 1e-9)
	assert.InDelta(t, 0.7803303038, measure(t, model.ShapeConfig{Radius: 1, Width: 0.3, Resolution: 4}, model.QuadratureSimpson).Area, 1e-8)
}

func TestAreaDensity_NonNegative(t *testing.T) {
	cfg := model.ShapeConfig{Radius: 1, Width: 0.5, Resolution: 33}
	grid, err := BuildGrid(cfg)
	require.NoError(t, err)
	dA := AreaDensity(grid, Evaluate(grid, cfg.Radius))

	lo, hi := dA.MinMax()
	assert.GreaterOrEqual(t, lo, 0.0)
	// Interior density approaches |R + v cos(u/2)| which lies within R ± w/2.
	assert.Less(t, hi, 1.0+0.25+0.1)
}
