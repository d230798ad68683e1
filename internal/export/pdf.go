// Package export writes evaluated strips to files: PDF reports, spreadsheets,
// CAD wireframes and raster images.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// Report bundles everything the PDF and spreadsheet exports need.
type Report struct {
	Summary     model.GeometricSummary
	Points      *engine.SurfacePoints
	Render      model.RenderSettings
	Convergence []engine.ConvergenceResult // optional
}

func (r Report) validate() error {
	if r.Points == nil || r.Points.X.Rows() < 2 || r.Points.X.Cols() < 2 {
		return fmt.Errorf("no surface points to export")
	}
	return r.Render.Validate()
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	qrSize       = 40.0
)

// Cells per direction drawn on the PDF surface page.
const pdfTargetCells = 48

// ExportPDF generates a two-page report: the projected surface followed by a
// summary page with the measured quantities, an optional convergence table
// and a QR code carrying the summary as JSON.
func ExportPDF(path string, report Report) error {
	if err := report.validate(); err != nil {
		return err
	}
	cmap, err := ColormapByName(report.Render.Colormap)
	if err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderSurfacePage(pdf, report, cmap)

	pdf.AddPage()
	if err := renderSummaryPage(pdf, report); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderSurfacePage draws the projected mesh back to front with the two
// boundary rows on top.
func renderSurfacePage(pdf *fpdf.Fpdf, report Report, cmap Colormap) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Mobius strip: %s", report.Summary.Shape)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Surface area: %.4f | Edge length: %.4f | Quadrature: %s",
		report.Summary.SurfaceArea, report.Summary.EdgeLength, report.Summary.Quadrature)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	pts := report.Points
	stride := report.Render.Stride(pts.X.Cols(), pdfTargetCells)
	scene := BuildScene(pts, NewProjector(report.Render.Elevation, report.Render.Azimuth), stride)

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	vp := scene.Fit(marginLeft, drawAreaTop, drawWidth, drawHeight, 5)

	pdf.SetLineWidth(0.1)
	pdf.SetAlpha(report.Render.Alpha, "Normal")
	for _, f := range scene.Faces {
		c := cmap(f.Level)
		poly := make([]fpdf.PointType, len(f.Corners))
		for k, corner := range f.Corners {
			x, y := vp.Map(corner)
			poly[k] = fpdf.PointType{X: x, Y: y}
		}
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.SetDrawColor(int(c.R)/2, int(c.G)/2, int(c.B)/2)
		pdf.Polygon(poly, "FD")
	}
	pdf.SetAlpha(1, "Normal")

	pdf.SetDrawColor(20, 20, 20)
	pdf.SetLineWidth(0.5)
	for _, edge := range scene.Edges {
		for j := 1; j < len(edge); j++ {
			x1, y1 := vp.Map(edge[j-1])
			x2, y2 := vp.Map(edge[j])
			pdf.Line(x1, y1, x2, y2)
		}
	}
}

// renderSummaryPage draws the measured quantities, the convergence table and
// the summary QR code.
func renderSummaryPage(pdf *fpdf.Fpdf, report Report) error {
	s := report.Summary

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Geometric Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	items := []struct {
		label string
		value string
	}{
		{"Radius", fmt.Sprintf("%g", s.Shape.Radius)},
		{"Width", fmt.Sprintf("%g", s.Shape.Width)},
		{"Resolution", fmt.Sprintf("%d x %d", s.Shape.Resolution, s.Shape.Resolution)},
		{"Surface Area", fmt.Sprintf("%.4f", s.SurfaceArea)},
		{"Edge Length", fmt.Sprintf("%.4f", s.EdgeLength)},
		{"Quadrature", string(s.Quadrature)},
		{"Computed At", s.ComputedAt},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if s.Degenerate {
		y += 3
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 6, "WARNING: grid too small for Simpson's rule, trapezoidal rule applied", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 8
	}

	if err := drawSummaryQR(pdf, s); err != nil {
		return err
	}

	if len(report.Convergence) > 0 {
		y += 6
		drawConvergenceTable(pdf, report.Convergence, y)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by mobius - surface geometry engine", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// drawSummaryQR places a QR code encoding the summary JSON in the top right
// corner of the current page.
func drawSummaryQR(pdf *fpdf.Fpdf, s model.GeometricSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	name := "qr_summary_" + s.ID
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, pageWidth-marginRight-qrSize, marginTop+16, qrSize, qrSize, false, opts, 0, "")
	return nil
}

func drawConvergenceTable(pdf *fpdf.Fpdf, results []engine.ConvergenceResult, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Convergence", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{30, 40, 40, 40, 40, 30}
	headers := []string{"Resolution", "Surface Area", "Area Delta", "Edge Length", "Length Delta", "Rule"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, r := range results {
		row := []string{
			fmt.Sprintf("%d", r.Shape.Resolution),
			fmt.Sprintf("%.6f", r.SurfaceArea),
			fmt.Sprintf("%.2e", r.AreaDelta),
			fmt.Sprintf("%.6f", r.EdgeLength),
			fmt.Sprintf("%.2e", r.LengthDelta),
			string(r.Rule),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
}
