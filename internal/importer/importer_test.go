package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Radius,Width,Resolution\nClassic,1,0.2,100\nWide,2,0.8,200\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Radius;Width;Resolution\nClassic;1;0.2;100\nWide;2;0.8;200\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tRadius\tWidth\tResolution\nClassic\t1\t0.2\t100\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Radius|Width|Resolution\nClassic|1|0.2|100\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Label", "Radius", "Width", "Resolution", "Quadrature"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{Label: 0, Radius: 1, Width: 2, Resolution: 3, Quadrature: 4}
	if mapping != want {
		t.Errorf("mapping = %+v, want %+v", mapping, want)
	}
}

func TestDetectColumns_AliasesAndOrder(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"N", "W", "R", "Name"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{Label: 3, Radius: 2, Width: 1, Resolution: 0, Quadrature: -1}
	if mapping != want {
		t.Errorf("mapping = %+v, want %+v", mapping, want)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{" SHAPE ", "RADIUS", "WIDTH", "SAMPLES"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Resolution != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Classic", "1", "0.2", "100"})

	if isHeader {
		t.Error("numeric row must not be treated as header")
	}
	want := ColumnMapping{Label: 0, Radius: 1, Width: 2, Resolution: 3, Quadrature: 4}
	if mapping != want {
		t.Errorf("positional mapping = %+v, want %+v", mapping, want)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}
	return path
}

func TestImportCSV_WithHeaders(t *testing.T) {
	path := writeCSV(t, "Label,Radius,Width,Resolution,Quadrature\nClassic,1,0.2,100,simpson\nWide,2,0.8,51,trapz\n")

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(result.Shapes))
	}

	first := result.Shapes[0]
	if first.Label != "Classic" || first.Shape != model.DefaultShapeConfig() {
		t.Errorf("unexpected first row %+v", first)
	}
	if first.Quadrature != model.QuadratureSimpson {
		t.Errorf("expected simpson, got %s", first.Quadrature)
	}

	second := result.Shapes[1]
	want := model.ShapeConfig{Radius: 2, Width: 0.8, Resolution: 51}
	if second.Shape != want {
		t.Errorf("second shape = %+v, want %+v", second.Shape, want)
	}
	if second.Quadrature != model.QuadratureTrapezoid {
		t.Errorf("expected trapezoid, got %s", second.Quadrature)
	}
}

func TestImportCSV_Positional(t *testing.T) {
	path := writeCSV(t, "Classic,1,0.2,100\n,1,0.3,200\n")

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(result.Shapes))
	}
	if result.Shapes[1].Label != "Shape 2" {
		t.Errorf("expected generated label, got %q", result.Shapes[1].Label)
	}
}

func TestImportCSV_SemicolonWarning(t *testing.T) {
	path := writeCSV(t, "Label;Radius;Width;Resolution\nClassic;1;0.2;100\n")

	result := ImportCSV(path)

	if len(result.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d (errors %v)", len(result.Shapes), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_InvalidRows(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"Label,Radius,Width,Resolution",
		"Good,1,0.2,100",
		"NoRadius,,0.2,100",
		"BadWidth,1,wide,100",
		"Negative,1,-0.2,100",
		"TooCoarse,1,0.2,1",
		"BadRes,1,0.2,many",
		"",
	}, "\n"))

	result := ImportCSV(path)

	if len(result.Shapes) != 1 {
		t.Fatalf("expected 1 valid shape, got %d", len(result.Shapes))
	}
	if len(result.Errors) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 3") || !strings.Contains(result.Errors[0], "radius") {
		t.Errorf("unexpected first error %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[2], "invalid config") {
		t.Errorf("validation error should come from ShapeConfig.Validate, got %q", result.Errors[2])
	}
}

func TestImportCSV_MissingResolutionDefaults(t *testing.T) {
	path := writeCSV(t, "Label,Radius,Width\nPlain,1,0.3\n")

	result := ImportCSV(path)

	if len(result.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d (errors %v)", len(result.Shapes), result.Errors)
	}
	if got := result.Shapes[0].Shape.Resolution; got != model.DefaultShapeConfig().Resolution {
		t.Errorf("resolution = %d, want default", got)
	}
	if len(result.Warnings) < 2 {
		t.Errorf("expected header and default-resolution warnings, got %v", result.Warnings)
	}
}

func TestImportCSV_UnknownQuadrature(t *testing.T) {
	path := writeCSV(t, "Label,Radius,Width,Resolution,Rule\nOdd,1,0.3,50,romberg\n")

	result := ImportCSV(path)

	if len(result.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(result.Shapes))
	}
	if result.Shapes[0].Quadrature != model.QuadratureSimpson {
		t.Errorf("unknown rule should fall back to simpson")
	}
	last := result.Warnings[len(result.Warnings)-1]
	if !strings.Contains(last, "romberg") {
		t.Errorf("expected quadrature warning, got %v", result.Warnings)
	}
}

func TestImportCSV_MissingRequiredColumns(t *testing.T) {
	path := writeCSV(t, "Label,Resolution\nA,100\n")

	result := ImportCSV(path)

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Radius, Width") {
		t.Errorf("expected missing-columns error, got %v", result.Errors)
	}
}

func TestImportCSV_EmptyAndMissingFile(t *testing.T) {
	result := ImportCSV(writeCSV(t, "   \n"))
	if len(result.Errors) != 1 || result.Errors[0] != "File is empty" {
		t.Errorf("expected empty file error, got %v", result.Errors)
	}

	result = ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Cannot open file") {
		t.Errorf("expected open error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("r|w|n\n1|0.3|200\n"), '|')

	if len(result.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d (errors %v)", len(result.Shapes), result.Errors)
	}
	if result.Shapes[0].Shape != model.ExampleShapeConfig() {
		t.Errorf("unexpected shape %+v", result.Shapes[0].Shape)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Radius", "Width", "Samples"},
		{"Example", 1, 0.3, 200},
		{"Big", 5, 1.5, 101},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(result.Shapes))
	}
	if result.Shapes[0].Shape != model.ExampleShapeConfig() {
		t.Errorf("unexpected first shape %+v", result.Shapes[0].Shape)
	}
	if result.Shapes[1].Label != "Big" || result.Shapes[1].Shape.Resolution != 101 {
		t.Errorf("unexpected second row %+v", result.Shapes[1])
	}
}

func TestImportExcel_InvalidRow(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Label", "Radius", "Width", "Resolution"},
		{"Zero", 0, 0.3, 100},
	})

	result := ImportExcel(path)

	if len(result.Shapes) != 0 {
		t.Errorf("expected no shapes, got %d", len(result.Shapes))
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Row 2") {
		t.Errorf("expected one row error, got %v", result.Errors)
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportFile_Dispatch(t *testing.T) {
	xlsx := createTestExcel(t, [][]interface{}{{"R", "W", "N"}, {1, 0.2, 100}})
	if r := ImportFile(xlsx); len(r.Shapes) != 1 {
		t.Errorf("xlsx dispatch failed: %+v", r)
	}

	csvPath := writeCSV(t, "R,W,N\n1,0.2,100\n")
	if r := ImportFile(csvPath); len(r.Shapes) != 1 {
		t.Errorf("csv dispatch failed: %+v", r)
	}
}
