// Package ui provides the desktop viewer for the Mobius strip engine.
//
// This file builds the icon toolbar using the fyne-tooltip library.

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only button with a tooltip that appears on hover.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// toolbar holds the buttons whose enabled state follows the history.
type toolbar struct {
	undo *ttwidget.Button
	redo *ttwidget.Button
}

// buildToolbar lays out the compute, history and export actions.
func (a *App) buildToolbar() fyne.CanvasObject {
	a.toolbar.undo = newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo parameter change", a.undo)
	a.toolbar.redo = newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo parameter change", a.redo)
	a.refreshToolbar()

	return container.NewHBox(
		newIconButtonWithTooltip(theme.MediaPlayIcon(), "Compute area and edge length", a.compute),
		newIconButtonWithTooltip(theme.ViewRefreshIcon(), "Run convergence study", a.runConvergence),
		widget.NewSeparator(),
		a.toolbar.undo,
		a.toolbar.redo,
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.DocumentIcon(), "Export PDF report", func() { a.exportAs(formatPDF) }),
		newIconButtonWithTooltip(theme.GridIcon(), "Export spreadsheet", func() { a.exportAs(formatXLSX) }),
		newIconButtonWithTooltip(theme.FileImageIcon(), "Export PNG image", func() { a.exportAs(formatPNG) }),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Export DXF wireframe", func() { a.exportAs(formatDXF) }),
	)
}

func (a *App) refreshToolbar() {
	if a.toolbar.undo == nil {
		return
	}
	if a.history.CanUndo() {
		a.toolbar.undo.Enable()
	} else {
		a.toolbar.undo.Disable()
	}
	if a.history.CanRedo() {
		a.toolbar.redo.Enable()
	} else {
		a.toolbar.redo.Disable()
	}
}
