package export

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
)

// Point2 is a projected point in view coordinates (x right, y up).
type Point2 struct {
	X, Y float64
}

// Projector maps 3D surface points onto a 2D view plane. Elevation and
// azimuth are in degrees and follow the usual 3D-axes convention: the viewer
// sits in direction (cos el·cos az, cos el·sin az, sin el).
type Projector struct {
	Elevation float64
	Azimuth   float64

	right [3]float64
	up    [3]float64
	view  [3]float64
}

// NewProjector builds a projector for the given view angles.
func NewProjector(elevation, azimuth float64) Projector {
	el := elevation * math.Pi / 180
	az := azimuth * math.Pi / 180
	return Projector{
		Elevation: elevation,
		Azimuth:   azimuth,
		right:     [3]float64{-math.Sin(az), math.Cos(az), 0},
		up:        [3]float64{-math.Sin(el) * math.Cos(az), -math.Sin(el) * math.Sin(az), math.Cos(el)},
		view:      [3]float64{math.Cos(el) * math.Cos(az), math.Cos(el) * math.Sin(az), math.Sin(el)},
	}
}

// Project returns the view-plane position of (x, y, z) and its depth towards
// the viewer. Larger depth means closer.
func (p Projector) Project(x, y, z float64) (Point2, float64) {
	pt := Point2{
		X: x*p.right[0] + y*p.right[1] + z*p.right[2],
		Y: x*p.up[0] + y*p.up[1] + z*p.up[2],
	}
	return pt, x*p.view[0] + y*p.view[1] + z*p.view[2]
}

// Face is one projected quad of the surface mesh.
type Face struct {
	Corners [4]Point2
	Depth   float64 // mean corner depth
	Level   float64 // mean z mapped to [0, 1] over the whole surface
}

// Scene is a projected surface ready to draw back to front.
type Scene struct {
	Faces []Face
	Edges [2][]Point2
	Min   Point2
	Max   Point2
}

// BuildScene projects the surface mesh. stride > 1 coarsens the mesh by
// sampling every stride-th row and column; the last row and column are always
// kept so the surface is never clipped. Faces come back in painter's order,
// farthest first.
func BuildScene(pts *engine.SurfacePoints, proj Projector, stride int) *Scene {
	rows := sampleIndices(pts.X.Rows(), stride)
	cols := sampleIndices(pts.X.Cols(), stride)

	zmin, zmax := pts.Z.MinMax()
	zspan := zmax - zmin

	s := &Scene{
		Min: Point2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point2{X: math.Inf(-1), Y: math.Inf(-1)},
	}

	projected := make([][]Point2, len(rows))
	depths := make([][]float64, len(rows))
	for a, i := range rows {
		projected[a] = make([]Point2, len(cols))
		depths[a] = make([]float64, len(cols))
		for b, j := range cols {
			pt, d := proj.Project(pts.X.At(i, j), pts.Y.At(i, j), pts.Z.At(i, j))
			projected[a][b] = pt
			depths[a][b] = d
			s.grow(pt)
		}
	}

	for a := 0; a+1 < len(rows); a++ {
		for b := 0; b+1 < len(cols); b++ {
			z := (pts.Z.At(rows[a], cols[b]) + pts.Z.At(rows[a], cols[b+1]) +
				pts.Z.At(rows[a+1], cols[b+1]) + pts.Z.At(rows[a+1], cols[b])) / 4
			level := 0.5
			if zspan > 0 {
				level = (z - zmin) / zspan
			}
			s.Faces = append(s.Faces, Face{
				Corners: [4]Point2{projected[a][b], projected[a][b+1], projected[a+1][b+1], projected[a+1][b]},
				Depth:   (depths[a][b] + depths[a][b+1] + depths[a+1][b+1] + depths[a+1][b]) / 4,
				Level:   level,
			})
		}
	}
	sort.SliceStable(s.Faces, func(i, j int) bool { return s.Faces[i].Depth < s.Faces[j].Depth })

	for k, edge := range engine.BoundaryRows(pts) {
		line := make([]Point2, edge.Len())
		for j := range line {
			line[j], _ = proj.Project(edge.X[j], edge.Y[j], edge.Z[j])
		}
		s.Edges[k] = line
	}
	return s
}

func (s *Scene) grow(p Point2) {
	s.Min.X = math.Min(s.Min.X, p.X)
	s.Min.Y = math.Min(s.Min.Y, p.Y)
	s.Max.X = math.Max(s.Max.X, p.X)
	s.Max.Y = math.Max(s.Max.Y, p.Y)
}

// Viewport maps view coordinates into a device rectangle with y pointing
// down, preserving aspect ratio and centering the scene.
type Viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
	minX    float64
	maxY    float64
}

// Fit returns the viewport that fits the scene into a width x height box
// starting at (left, top) with margin on every side.
func (s *Scene) Fit(left, top, width, height, margin float64) Viewport {
	spanX := s.Max.X - s.Min.X
	spanY := s.Max.Y - s.Min.Y
	availW := width - 2*margin
	availH := height - 2*margin

	scale := 1.0
	if spanX > 0 && spanY > 0 {
		scale = math.Min(availW/spanX, availH/spanY)
	}
	return Viewport{
		scale:   scale,
		offsetX: left + margin + (availW-spanX*scale)/2,
		offsetY: top + margin + (availH-spanY*scale)/2,
		minX:    s.Min.X,
		maxY:    s.Max.Y,
	}
}

// Map converts a view point to device coordinates.
func (v Viewport) Map(p Point2) (float64, float64) {
	return v.offsetX + (p.X-v.minX)*v.scale, v.offsetY + (v.maxY-p.Y)*v.scale
}

// sampleIndices returns 0, stride, 2·stride, ... and always n-1.
func sampleIndices(n, stride int) []int {
	if stride < 1 {
		stride = 1
	}
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n-1; i += stride {
		idx = append(idx, i)
	}
	if n > 0 {
		idx = append(idx, n-1)
	}
	return idx
}

// Colormap maps a level in [0, 1] to a color.
type Colormap func(level float64) color.RGBA

var viridisStops = []color.RGBA{
	{68, 1, 84, 255},
	{72, 40, 120, 255},
	{62, 73, 137, 255},
	{49, 104, 142, 255},
	{38, 130, 142, 255},
	{31, 158, 137, 255},
	{53, 183, 121, 255},
	{109, 205, 89, 255},
	{253, 231, 37, 255},
}

var grayStops = []color.RGBA{
	{40, 40, 40, 255},
	{220, 220, 220, 255},
}

// Viridis is the perceptually uniform default colormap.
func Viridis(level float64) color.RGBA { return interpolate(viridisStops, level) }

// Gray is a plain dark-to-light ramp.
func Gray(level float64) color.RGBA { return interpolate(grayStops, level) }

// ColormapByName resolves a colormap from configuration.
func ColormapByName(name string) (Colormap, error) {
	switch name {
	case "", "viridis":
		return Viridis, nil
	case "gray", "grey":
		return Gray, nil
	default:
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
}

func interpolate(stops []color.RGBA, level float64) color.RGBA {
	if math.IsNaN(level) || level <= 0 {
		return stops[0]
	}
	if level >= 1 {
		return stops[len(stops)-1]
	}
	pos := level * float64(len(stops)-1)
	k := int(pos)
	t := pos - float64(k)
	a, b := stops[k], stops[k+1]
	lerp := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + t*(float64(y)-float64(x)))) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
