package engine

import "math"

// Polyline is an ordered sequence of 3D points.
type Polyline struct {
	X, Y, Z []float64
}

// Len returns the number of vertices.
func (p Polyline) Len() int { return len(p.X) }

// Length sums the Euclidean lengths of consecutive segments. The polyline is
// open: no segment joins the last vertex back to the first.
func (p Polyline) Length() float64 {
	var total float64
	for k := 1; k < len(p.X); k++ {
		dx := p.X[k] - p.X[k-1]
		dy := p.Y[k] - p.Y[k-1]
		dz := p.Z[k] - p.Z[k-1]
		total += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return total
}

// BoundaryRows returns the strip boundary as two open polylines in
// increasing u: row 0 (v = -w/2) and the last row (v = +w/2).
//
// On the closed surface these two rows are one connected curve, because the
// half-twist glues v at u=2π onto -v at u=0. They are kept as two open
// polylines here, so the boundary is approximated rather than traced as a
// single loop.
func BoundaryRows(pts *SurfacePoints) [2]Polyline {
	rows, _ := pts.Size()
	row := func(i int) Polyline {
		return Polyline{X: pts.X.Row(i), Y: pts.Y.Row(i), Z: pts.Z.Row(i)}
	}
	return [2]Polyline{row(0), row(rows - 1)}
}

// EdgeLength returns the summed length of both boundary rows.
func EdgeLength(pts *SurfacePoints) float64 {
	var total float64
	for _, p := range BoundaryRows(pts) {
		total += p.Length()
	}
	return total
}
