package engine

import (
	"math"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// AreaEstimate is the integrated surface area with the quadrature used.
type AreaEstimate struct {
	Area       float64
	Rule       model.QuadratureRule
	Degenerate bool
}

// Tangents holds the discrete partial derivatives of the surface.
type Tangents struct {
	Xu, Yu, Zu Field
	Xv, Yv, Zv Field
}

// EstimateTangents differentiates the point grid along u (columns, spacing
// Du) and v (rows, spacing Dv).
func EstimateTangents(grid *ParameterGrid, pts *SurfacePoints) Tangents {
	return Tangents{
		Xu: GradientAlongU(pts.X, grid.Du),
		Yu: GradientAlongU(pts.Y, grid.Du),
		Zu: GradientAlongU(pts.Z, grid.Du),
		Xv: GradientAlongV(pts.X, grid.Dv),
		Yv: GradientAlongV(pts.Y, grid.Dv),
		Zv: GradientAlongV(pts.Z, grid.Dv),
	}
}

// AreaDensity returns |T_u x T_v| at every sample, the local area scale of
// the parametrization.
func AreaDensity(grid *ParameterGrid, pts *SurfacePoints) Field {
	t := EstimateTangents(grid, pts)
	rows, cols := pts.Size()
	dA := newField(rows, cols)
	for k := range dA.data {
		xu, yu, zu := t.Xu.data[k], t.Yu.data[k], t.Zu.data[k]
		xv, yv, zv := t.Xv.data[k], t.Yv.data[k], t.Zv.data[k]

		nx := yu*zv - zu*yv
		ny := zu*xv - xu*zv
		nz := xu*yv - yu*xv
		dA.data[k] = math.Sqrt(nx*nx + ny*ny + nz*nz)
	}
	return dA
}

// SurfaceArea integrates the area density over v for every u column, then
// integrates the column totals over u.
func SurfaceArea(grid *ParameterGrid, pts *SurfacePoints, rule model.QuadratureRule) AreaEstimate {
	dA := AreaDensity(grid, pts)

	est := AreaEstimate{Rule: rule}
	perU := make([]float64, dA.Cols())
	for j := range perU {
		in := Integrate(dA.Col(j), grid.Dv, rule)
		perU[j] = in.Value
		est.Rule = in.Rule
		est.Degenerate = est.Degenerate || in.Degenerate
	}

	total := Integrate(perU, grid.Du, rule)
	est.Area = total.Value
	est.Degenerate = est.Degenerate || total.Degenerate
	if total.Degenerate {
		est.Rule = total.Rule
	}
	return est
}
