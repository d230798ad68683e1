package export

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

func TestExportDXF_LineCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.dxf")
	s := buildTestStrip(t, 5)

	if err := ExportDXF(path, s.Points(), model.DefaultRenderSettings()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	d, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("cannot reopen DXF: %v", err)
	}

	var lines []*entity.Line
	for _, e := range d.Entities() {
		if l, ok := e.(*entity.Line); ok {
			lines = append(lines, l)
		}
	}
	// 5 rows x 4 segments + 5 columns x 4 segments on the mesh layer, and
	// 2 boundary rows x 4 segments.
	if len(lines) != 48 {
		t.Fatalf("got %d lines, want 48", len(lines))
	}

	maxZ := 0.0
	for _, l := range lines {
		maxZ = math.Max(maxZ, math.Abs(l.Start[2]))
		maxZ = math.Max(maxZ, math.Abs(l.End[2]))
	}
	if maxZ <= 0 || maxZ > 0.15+1e-9 {
		t.Errorf("z range %f outside (0, w/2]", maxZ)
	}
}

func TestExportDXF_Stride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coarse.dxf")
	s := buildTestStrip(t, 9)

	settings := model.DefaultRenderSettings()
	settings.WireStride = 4 // samples 0, 4, 8

	if err := ExportDXF(path, s.Points(), settings); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}
	d, err := dxf.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, e := range d.Entities() {
		if _, ok := e.(*entity.Line); ok {
			count++
		}
	}
	// Mesh: 3 rows x 2 + 3 columns x 2; boundary: 2 x 8.
	if count != 28 {
		t.Errorf("got %d lines, want 28", count)
	}
}

func TestExportDXF_NoPoints(t *testing.T) {
	if err := ExportDXF(filepath.Join(t.TempDir(), "x.dxf"), nil, model.DefaultRenderSettings()); err == nil {
		t.Fatal("expected error for nil points")
	}
}
