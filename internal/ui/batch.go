package ui

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/sync/errgroup"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/export"
	"github.com/chandramohan-1/mobius-strip/internal/importer"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// batchEntry is one computed row of an imported shape list.
type batchEntry struct {
	Label   string
	Summary model.GeometricSummary
}

// ─── Batch Panel ───────────────────────────────────────────

func (a *App) buildBatchPanel() fyne.CanvasObject {
	a.batchContainer = container.NewStack()
	a.refreshBatch()

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), a.importShapes)
	exportBtn := widget.NewButtonWithIcon("Export Results...", theme.DocumentSaveIcon(), a.exportBatch)

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Imported Shapes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			importBtn,
			exportBtn,
		),
		nil, nil, nil,
		a.batchContainer,
	)
}

var batchHeaders = []string{"Label", "R", "w", "n", "Area", "Length", "Rule"}

func batchCell(e batchEntry, col int) string {
	s := e.Summary
	switch col {
	case 0:
		return e.Label
	case 1:
		return strconv.FormatFloat(s.Shape.Radius, 'g', -1, 64)
	case 2:
		return strconv.FormatFloat(s.Shape.Width, 'g', -1, 64)
	case 3:
		return strconv.Itoa(s.Shape.Resolution)
	case 4:
		return fmt.Sprintf("%.4f", s.SurfaceArea)
	case 5:
		return fmt.Sprintf("%.4f", s.EdgeLength)
	case 6:
		return string(s.Quadrature)
	}
	return ""
}

func (a *App) refreshBatch() {
	a.batchContainer.RemoveAll()
	if len(a.batch) == 0 {
		a.batchContainer.Add(widget.NewLabel("No shapes yet. Import a CSV or Excel file with Radius, Width and Resolution columns."))
		a.batchContainer.Refresh()
		return
	}

	table := widget.NewTable(
		func() (int, int) { return len(a.batch) + 1, len(batchHeaders) },
		func() fyne.CanvasObject { return widget.NewLabel("00000000.0000") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(batchHeaders[id.Col])
				return
			}
			label.TextStyle = fyne.TextStyle{}
			label.SetText(batchCell(a.batch[id.Row-1], id.Col))
		},
	)
	a.batchContainer.Add(table)
	a.batchContainer.Refresh()
}

// ─── Import Functions ──────────────────────────────────────

func (a *App) importShapes() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportFile(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".xlsx"}))
	d.Show()
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	// Warnings don't block the import.
	for _, w := range result.Warnings {
		a.logger.Warn("import warning", logging.String("detail", w))
	}

	if len(result.Shapes) == 0 {
		return
	}

	entries, err := computeBatch(context.Background(), result.Shapes, a.logger)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.batch = entries
	a.refreshBatch()
	if a.tabs != nil {
		a.tabs.SelectIndex(1)
	}

	msg := fmt.Sprintf("Successfully computed %d shapes.", len(entries))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// computeBatch evaluates every row on a bounded worker pool and returns the
// entries in input order.
func computeBatch(ctx context.Context, rows []importer.ShapeRow, logger logging.Logger) ([]batchEntry, error) {
	entries := make([]batchEntry, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			strip, err := engine.New(row.Shape,
				engine.WithQuadrature(row.Quadrature),
				engine.WithLogger(logger.Named("engine")))
			if err != nil {
				return fmt.Errorf("%s: %w", row.Label, err)
			}
			entries[i] = batchEntry{Label: row.Label, Summary: strip.Summary()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *App) exportBatch() {
	if len(a.batch) == 0 {
		dialog.ShowInformation("Nothing to export", "Import shapes first.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		summaries := make([]model.GeometricSummary, len(a.batch))
		for i, e := range a.batch {
			summaries[i] = e.Summary
		}
		if err := export.ExportSummariesExcel(path, summaries); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Batch results saved to %s", path), a.window)
	}, a.window)
	d.SetFileName("mobius_batch.xlsx")
	d.Show()
}
