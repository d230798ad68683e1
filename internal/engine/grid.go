package engine

import (
	"math"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// ParameterGrid is the uniformly sampled (u, v) parameter domain of a strip.
type ParameterGrid struct {
	U  []float64 // n samples over [0, 2π], both endpoints included
	V  []float64 // n samples over [-w/2, w/2], both endpoints included
	Du float64
	Dv float64

	// MeshU[i,j] = U[j], MeshV[i,j] = V[i].
	MeshU Field
	MeshV Field
}

// BuildGrid samples the parameter domain for cfg. It fails with
// model.ErrInvalidConfig before allocating anything when cfg is degenerate.
func BuildGrid(cfg model.ShapeConfig) (*ParameterGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Resolution
	u := linspace(0, 2*math.Pi, n)
	v := linspace(-cfg.Width/2, cfg.Width/2, n)

	meshU := newField(n, n)
	meshV := newField(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			meshU.set(i, j, u[j])
			meshV.set(i, j, v[i])
		}
	}

	return &ParameterGrid{
		U:     u,
		V:     v,
		Du:    u[1] - u[0],
		Dv:    v[1] - v[0],
		MeshU: meshU,
		MeshV: meshV,
	}, nil
}

// Size returns the number of samples per axis.
func (g *ParameterGrid) Size() int {
	return len(g.U)
}

// linspace returns n evenly spaced samples over the closed interval
// [start, stop]. The last sample is exactly stop.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
