package engine

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// DefaultResolutions are the sample counts used by a default convergence study.
var DefaultResolutions = []int{50, 200, 800}

// ConvergenceResult holds the measurements at one resolution and the change
// from the previous (coarser) entry of the study.
type ConvergenceResult struct {
	Shape       model.ShapeConfig
	SurfaceArea float64
	EdgeLength  float64
	Rule        model.QuadratureRule
	AreaDelta   float64 // |area - previous area|, 0 for the first entry
	LengthDelta float64 // |length - previous length|, 0 for the first entry
}

// Converge evaluates base at every resolution and reports the results in the
// order given. Each resolution gets its own Strip; they run concurrently and
// share nothing. All configurations are validated before any work starts.
func Converge(ctx context.Context, base model.ShapeConfig, resolutions []int, opts ...Option) ([]ConvergenceResult, error) {
	if len(resolutions) == 0 {
		return nil, fmt.Errorf("convergence study needs at least one resolution")
	}
	for _, n := range resolutions {
		if err := base.WithResolution(n).Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]ConvergenceResult, len(resolutions))
	g, ctx := errgroup.WithContext(ctx)
	for i, n := range resolutions {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			strip, err := New(base.WithResolution(n), opts...)
			if err != nil {
				return err
			}
			est := strip.Area()
			results[i] = ConvergenceResult{
				Shape:       strip.Config(),
				SurfaceArea: est.Area,
				EdgeLength:  strip.EdgeLength(),
				Rule:        est.Rule,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := 1; i < len(results); i++ {
		results[i].AreaDelta = math.Abs(results[i].SurfaceArea - results[i-1].SurfaceArea)
		results[i].LengthDelta = math.Abs(results[i].EdgeLength - results[i-1].EdgeLength)
	}
	return results, nil
}

// ScaleRatios compares base against the same shape with radius and width
// scaled by k at identical resolution. The area ratio should be close to k²
// and the length ratio close to k.
func ScaleRatios(base model.ShapeConfig, k float64, opts ...Option) (areaRatio, lengthRatio float64, err error) {
	small, err := New(base, opts...)
	if err != nil {
		return 0, 0, err
	}
	large, err := New(base.Scaled(k), opts...)
	if err != nil {
		return 0, 0, err
	}
	return large.SurfaceArea() / small.SurfaceArea(), large.EdgeLength() / small.EdgeLength(), nil
}
