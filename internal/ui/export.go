package ui

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/chandramohan-1/mobius-strip/internal/export"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
)

type exportFormat string

const (
	formatPDF  exportFormat = "pdf"
	formatXLSX exportFormat = "xlsx"
	formatPNG  exportFormat = "png"
	formatDXF  exportFormat = "dxf"
)

// defaultFileName builds e.g. "mobius_R1_w0.3_n200.pdf".
func (a *App) defaultFileName(f exportFormat) string {
	return fmt.Sprintf("mobius_R%g_w%g_n%d.%s", a.shape.Radius, a.shape.Width, a.shape.Resolution, f)
}

// exportAs asks for a destination and writes the current strip there.
func (a *App) exportAs(f exportFormat) {
	if a.strip == nil {
		dialog.ShowInformation("Nothing to export", "Compute a strip first.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := a.exportTo(f, path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%s saved to %s", f, path), a.window)
	}, a.window)
	d.SetFileName(a.defaultFileName(f))
	d.Show()
}

// exportTo writes the current strip in format f and records the path in the
// recent exports list.
func (a *App) exportTo(f exportFormat, path string) error {
	if a.strip == nil {
		return fmt.Errorf("no strip computed")
	}
	report := export.Report{
		Summary:     a.strip.Summary(),
		Points:      a.strip.Points(),
		Render:      a.config.Render,
		Convergence: a.convergence,
	}

	var err error
	switch f {
	case formatPDF:
		err = export.ExportPDF(path, report)
	case formatXLSX:
		err = export.ExportExcel(path, report)
	case formatPNG:
		err = export.RenderPNG(path, report.Points, report.Render)
	case formatDXF:
		err = export.ExportDXF(path, report.Points, report.Render)
	default:
		err = fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		// The save dialog creates the file before we write it.
		os.Remove(path)
		return err
	}

	a.logger.Info("strip exported",
		logging.String("format", string(f)),
		logging.String("path", path))
	a.config.AddRecentExport(path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("failed to save config", logging.Err(err))
	}
	return nil
}
