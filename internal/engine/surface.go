package engine

import "math"

// SurfacePoints holds the 3D position of every grid sample as three
// parallel fields.
type SurfacePoints struct {
	X Field
	Y Field
	Z Field
}

// Evaluate maps every (u, v) grid sample onto the Möbius strip of centerline
// radius r:
//
//	x = (r + v cos(u/2)) cos u
//	y = (r + v cos(u/2)) sin u
//	z = v sin(u/2)
//
// The half angle makes the width direction turn by π over one revolution,
// which closes the strip with a single half-twist.
func Evaluate(grid *ParameterGrid, r float64) *SurfacePoints {
	rows, cols := grid.MeshU.Rows(), grid.MeshU.Cols()
	pts := &SurfacePoints{
		X: newField(rows, cols),
		Y: newField(rows, cols),
		Z: newField(rows, cols),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			u := grid.MeshU.At(i, j)
			v := grid.MeshV.At(i, j)
			half := u / 2
			radial := r + v*math.Cos(half)
			pts.X.set(i, j, radial*math.Cos(u))
			pts.Y.set(i, j, radial*math.Sin(u))
			pts.Z.set(i, j, v*math.Sin(half))
		}
	}
	return pts
}

// Size returns rows and columns of the point grid.
func (p *SurfacePoints) Size() (rows, cols int) {
	return p.X.Rows(), p.X.Cols()
}

// Point returns the 3D coordinate at row i, column j.
func (p *SurfacePoints) Point(i, j int) (x, y, z float64) {
	return p.X.At(i, j), p.Y.At(i, j), p.Z.At(i, j)
}

// Clone returns a deep copy so callers cannot alias engine state.
func (p *SurfacePoints) Clone() *SurfacePoints {
	return &SurfacePoints{X: p.X.Clone(), Y: p.Y.Clone(), Z: p.Z.Clone()}
}
