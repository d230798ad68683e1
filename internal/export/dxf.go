package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// DXF layer names.
const (
	LayerMesh     = "MESH"
	LayerBoundary = "BOUNDARY"
)

// Grid lines per direction written to the mesh layer before coarsening.
const dxfTargetLines = 64

// ExportDXF writes the surface as a 3D wireframe of LINE entities. The mesh
// layer carries the sampled grid lines in both parameter directions; the
// boundary layer carries both boundary rows at full resolution.
func ExportDXF(path string, pts *engine.SurfacePoints, settings model.RenderSettings) error {
	if pts == nil || pts.X.Rows() < 2 || pts.X.Cols() < 2 {
		return fmt.Errorf("no surface points to export")
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(LayerMesh, color.Cyan, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerMesh, err)
	}
	stride := settings.Stride(pts.X.Cols(), dxfTargetLines)
	rows := sampleIndices(pts.X.Rows(), stride)
	cols := sampleIndices(pts.X.Cols(), stride)

	line := func(i1, j1, i2, j2 int) error {
		_, err := d.Line(
			pts.X.At(i1, j1), pts.Y.At(i1, j1), pts.Z.At(i1, j1),
			pts.X.At(i2, j2), pts.Y.At(i2, j2), pts.Z.At(i2, j2),
		)
		return err
	}
	for _, i := range rows {
		for b := 1; b < len(cols); b++ {
			if err := line(i, cols[b-1], i, cols[b]); err != nil {
				return fmt.Errorf("failed to write mesh line: %w", err)
			}
		}
	}
	for _, j := range cols {
		for a := 1; a < len(rows); a++ {
			if err := line(rows[a-1], j, rows[a], j); err != nil {
				return fmt.Errorf("failed to write mesh line: %w", err)
			}
		}
	}

	if _, err := d.AddLayer(LayerBoundary, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerBoundary, err)
	}
	for _, edge := range engine.BoundaryRows(pts) {
		for j := 1; j < edge.Len(); j++ {
			if _, err := d.Line(edge.X[j-1], edge.Y[j-1], edge.Z[j-1], edge.X[j], edge.Y[j], edge.Z[j]); err != nil {
				return fmt.Errorf("failed to write boundary line: %w", err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF %s: %w", path, err)
	}
	return nil
}
