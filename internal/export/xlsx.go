package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// Sheet names written by ExportExcel.
const (
	SheetSummary     = "Summary"
	SheetConvergence = "Convergence"
	SheetResults     = "Results"
)

// ExportExcel writes the summary and the raw X, Y, Z fields to an xlsx
// workbook. Field sheets are laid out one row per v sample and one column per
// u sample. A Convergence sheet is added when the report carries a study.
func ExportExcel(path string, report Report) error {
	if err := report.validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, report.Summary); err != nil {
		return err
	}

	fields := []struct {
		name  string
		field engine.Field
	}{
		{"X", report.Points.X},
		{"Y", report.Points.Y},
		{"Z", report.Points.Z},
	}
	for _, fl := range fields {
		if err := writeFieldSheet(f, fl.name, fl.field); err != nil {
			return err
		}
	}

	if len(report.Convergence) > 0 {
		if err := writeConvergenceSheet(f, report.Convergence); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// ExportConvergenceExcel writes a convergence study on its own.
func ExportConvergenceExcel(path string, results []engine.ConvergenceResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no convergence results to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetConvergence); err != nil {
		return fmt.Errorf("failed to name convergence sheet: %w", err)
	}
	if err := fillConvergence(f, results); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// ExportSummariesExcel writes one row per summary, used for batch runs.
func ExportSummariesExcel(path string, summaries []model.GeometricSummary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no results to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetResults
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name results sheet: %w", err)
	}

	header := []interface{}{"ID", "Radius", "Width", "Resolution", "Surface Area", "Edge Length", "Quadrature", "Degenerate"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, s := range summaries {
		row := []interface{}{
			s.ID, s.Shape.Radius, s.Shape.Width, s.Shape.Resolution,
			s.SurfaceArea, s.EdgeLength, string(s.Quadrature), s.Degenerate,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s model.GeometricSummary) error {
	rows := [][]interface{}{
		{"Field", "Value"},
		{"ID", s.ID},
		{"Radius", s.Shape.Radius},
		{"Width", s.Shape.Width},
		{"Resolution", s.Shape.Resolution},
		{"Surface Area", s.SurfaceArea},
		{"Edge Length", s.EdgeLength},
		{"Quadrature", string(s.Quadrature)},
		{"Degenerate", s.Degenerate},
		{"Computed At", s.ComputedAt},
	}
	for i, row := range rows {
		if err := setRow(f, SheetSummary, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeFieldSheet(f *excelize.File, name string, field engine.Field) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	for i, values := range field.Rows2D() {
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := setRow(f, name, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeConvergenceSheet(f *excelize.File, results []engine.ConvergenceResult) error {
	if _, err := f.NewSheet(SheetConvergence); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetConvergence, err)
	}
	return fillConvergence(f, results)
}

func fillConvergence(f *excelize.File, results []engine.ConvergenceResult) error {
	header := []interface{}{"Resolution", "Surface Area", "Area Delta", "Edge Length", "Length Delta", "Quadrature"}
	if err := setRow(f, SheetConvergence, 1, header); err != nil {
		return err
	}
	for i, r := range results {
		row := []interface{}{r.Shape.Resolution, r.SurfaceArea, r.AreaDelta, r.EdgeLength, r.LengthDelta, string(r.Rule)}
		if err := setRow(f, SheetConvergence, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to create cell reference: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
