package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
	"github.com/chandramohan-1/mobius-strip/internal/ui/widgets"
)

// Options configures a new App.
type Options struct {
	Config     model.AppConfig
	ConfigPath string
	Logger     logging.Logger
}

// App holds all viewer state and UI references.
type App struct {
	window     fyne.Window
	config     model.AppConfig
	configPath string
	logger     logging.Logger
	presets    model.PresetStore
	history    *History
	toolbar    toolbar
	tabs       *container.AppTabs

	// Parameters currently applied to the strip.
	shape model.ShapeConfig
	rule  model.QuadratureRule

	strip       *engine.Strip
	convergence []engine.ConvergenceResult
	batch       []batchEntry

	// UI references for dynamic updates
	radiusEntry     *widget.Entry
	widthEntry      *widget.Entry
	resolutionEntry *widget.Entry
	ruleSelect      *widget.Select
	presetSelect    *widget.Select
	areaLabel       *widget.Label
	lengthLabel     *widget.Label
	ruleLabel       *widget.Label
	warningLabel    *widget.Label
	mesh            *widgets.MeshCanvas
	batchContainer  *fyne.Container
}

// NewApp creates the viewer state. Presets are read from the directory that
// holds the config file; a broken preset file falls back to the built-ins.
func NewApp(window fyne.Window, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = project.DefaultConfigPath()
	}
	a := &App{
		window:     window,
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger.Named("ui"),
		history:    NewHistory(),
		shape:      opts.Config.Shape,
		rule:       opts.Config.Quadrature,
	}
	if a.rule == "" {
		a.rule = model.QuadratureSimpson
	}

	presets, err := project.LoadPresets(a.presetPath())
	if err != nil {
		a.logger.Warn("failed to load presets, using built-ins", logging.Err(err))
		presets = model.BuiltinPresets()
	}
	a.presets = presets
	return a
}

func (a *App) presetPath() string {
	return filepath.Join(filepath.Dir(a.configPath), "presets.json")
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import Shapes from CSV/Excel...", func() {
			a.importShapes()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() { a.exportAs(formatPDF) }),
		fyne.NewMenuItem("Export Spreadsheet...", func() { a.exportAs(formatXLSX) }),
		fyne.NewMenuItem("Export PNG Image...", func() { a.exportAs(formatPNG) }),
		fyne.NewMenuItem("Export DXF Wireframe...", func() { a.exportAs(formatDXF) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup and Restore...", func() {
			a.showImportExportDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Defaults", func() {
			a.applyParameters(model.DefaultShapeConfig(), model.QuadratureSimpson, "Reset to defaults")
		}),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Render Settings...", func() {
			a.showRenderSettingsDialog()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Compute", a.compute),
		fyne.NewMenuItem("Convergence Study", a.runConvergence),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Presets...", func() {
			a.showPresetManager()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Mobius",
		"Mobius - surface geometry engine\n\n"+
			"Samples a Mobius strip on a parameter grid and measures\n"+
			"its surface area and boundary length numerically.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.mesh = widgets.NewMeshCanvas(a.config.Render, 480, 360)

	viewer := container.NewBorder(a.buildToolbar(), nil, nil, nil, a.mesh)
	split := container.NewHSplit(a.buildParameterPanel(), viewer)
	split.Offset = 0.3

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Strip", split),
		container.NewTabItem("Batch", a.buildBatchPanel()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.compute()
	return a.tabs
}

// ─── Parameter Panel ───────────────────────────────────────

func (a *App) buildParameterPanel() fyne.CanvasObject {
	a.radiusEntry = widget.NewEntry()
	a.widthEntry = widget.NewEntry()
	a.resolutionEntry = widget.NewEntry()
	a.ruleSelect = widget.NewSelect([]string{string(model.QuadratureSimpson), string(model.QuadratureTrapezoid)}, nil)
	a.fillForm()

	for _, e := range []*widget.Entry{a.radiusEntry, a.widthEntry, a.resolutionEntry} {
		e.OnSubmitted = func(string) { a.compute() }
	}

	a.presetSelect = widget.NewSelect(a.presets.Names(), func(name string) {
		if p := a.presets.Find(name); p != nil {
			a.applyParameters(p.Shape, a.rule, "Apply preset "+p.Name)
		}
	})
	a.presetSelect.PlaceHolder = "Choose a preset"

	savePresetBtn := widget.NewButtonWithIcon("Save as Preset", theme.DocumentSaveIcon(), func() {
		a.showSavePresetDialog()
	})

	paramCard := widget.NewCard("Parameters", "", widget.NewForm(
		widget.NewFormItem("Radius R", a.radiusEntry),
		widget.NewFormItem("Width w", a.widthEntry),
		widget.NewFormItem("Resolution n", a.resolutionEntry),
		widget.NewFormItem("Quadrature", a.ruleSelect),
	))

	computeBtn := widget.NewButtonWithIcon("Compute", theme.MediaPlayIcon(), a.compute)
	computeBtn.Importance = widget.HighImportance

	a.areaLabel = widget.NewLabel("-")
	a.lengthLabel = widget.NewLabel("-")
	a.ruleLabel = widget.NewLabel("-")
	a.warningLabel = widget.NewLabel("")
	a.warningLabel.Importance = widget.DangerImportance
	a.warningLabel.Wrapping = fyne.TextWrapWord
	a.warningLabel.Hide()

	resultsCard := widget.NewCard("Results", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabelWithStyle("Surface Area", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), a.areaLabel,
			widget.NewLabelWithStyle("Edge Length", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), a.lengthLabel,
			widget.NewLabelWithStyle("Rule Applied", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), a.ruleLabel,
		),
		a.warningLabel,
	))

	return container.NewVScroll(container.NewVBox(
		widget.NewCard("Presets", "", container.NewVBox(a.presetSelect, savePresetBtn)),
		paramCard,
		container.NewHBox(layout.NewSpacer(), computeBtn),
		resultsCard,
	))
}

// fillForm copies the applied parameters into the form widgets.
func (a *App) fillForm() {
	a.radiusEntry.SetText(strconv.FormatFloat(a.shape.Radius, 'g', -1, 64))
	a.widthEntry.SetText(strconv.FormatFloat(a.shape.Width, 'g', -1, 64))
	a.resolutionEntry.SetText(strconv.Itoa(a.shape.Resolution))
	a.ruleSelect.SetSelected(string(a.rule))
}

// readForm parses and validates the form widgets.
func (a *App) readForm() (model.ShapeConfig, model.QuadratureRule, error) {
	r, err := strconv.ParseFloat(strings.TrimSpace(a.radiusEntry.Text), 64)
	if err != nil {
		return model.ShapeConfig{}, "", fmt.Errorf("radius %q is not a number", a.radiusEntry.Text)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(a.widthEntry.Text), 64)
	if err != nil {
		return model.ShapeConfig{}, "", fmt.Errorf("width %q is not a number", a.widthEntry.Text)
	}
	n, err := strconv.Atoi(strings.TrimSpace(a.resolutionEntry.Text))
	if err != nil {
		return model.ShapeConfig{}, "", fmt.Errorf("resolution %q is not an integer", a.resolutionEntry.Text)
	}
	rule, _ := model.ParseQuadratureRule(a.ruleSelect.Selected)

	shape := model.ShapeConfig{Radius: r, Width: w, Resolution: n}
	if err := shape.Validate(); err != nil {
		return model.ShapeConfig{}, "", err
	}
	return shape, rule, nil
}

// ─── Actions ───────────────────────────────────────────────

// compute applies the form parameters, recording the change in the history,
// and re-evaluates the strip.
func (a *App) compute() {
	shape, rule, err := a.readForm()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if shape != a.shape || rule != a.rule {
		a.history.Push(MakeSnapshot(a.shape, a.rule, "Edit parameters"))
		a.shape, a.rule = shape, rule
		a.refreshToolbar()
	}
	a.evaluate()
}

// applyParameters replaces the applied parameters as one undoable step.
func (a *App) applyParameters(shape model.ShapeConfig, rule model.QuadratureRule, label string) {
	if err := shape.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.history.Push(MakeSnapshot(a.shape, a.rule, label))
	a.restore(MakeSnapshot(shape, rule, label))
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.shape, a.rule, "current"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.shape, a.rule, "current"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) restore(s Snapshot) {
	a.shape, a.rule = s.Shape, s.Quadrature
	a.fillForm()
	a.refreshToolbar()
	a.evaluate()
}

// evaluate rebuilds the strip from the applied parameters and refreshes the
// results and the mesh.
func (a *App) evaluate() {
	strip, err := engine.New(a.shape,
		engine.WithQuadrature(a.rule),
		engine.WithLogger(a.logger.Named("engine")),
	)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.strip = strip
	a.convergence = nil
	a.refreshResults()
}

func (a *App) refreshResults() {
	if a.strip == nil {
		return
	}
	est := a.strip.Area()
	a.areaLabel.SetText(fmt.Sprintf("%.4f", est.Area))
	a.lengthLabel.SetText(fmt.Sprintf("%.4f", a.strip.EdgeLength()))
	a.ruleLabel.SetText(string(est.Rule))
	if est.Degenerate {
		a.warningLabel.SetText("Grid too small for Simpson's rule; trapezoidal rule applied.")
		a.warningLabel.Show()
	} else {
		a.warningLabel.Hide()
	}
	if a.mesh != nil {
		a.mesh.SetPoints(a.strip.Points())
	}
}

// runConvergence evaluates the current shape at the default resolutions in
// the background and shows the results in a dialog.
func (a *App) runConvergence() {
	shape, rule := a.shape, a.rule
	progress := dialog.NewCustomWithoutButtons("Convergence Study",
		widget.NewProgressBarInfinite(), a.window)
	progress.Show()

	go func() {
		results, err := engine.Converge(context.Background(), shape, engine.DefaultResolutions,
			engine.WithQuadrature(rule), engine.WithLogger(a.logger.Named("engine")))
		fyne.Do(func() {
			progress.Hide()
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.convergence = results
			a.showConvergenceDialog(results)
		})
	}()
}

func (a *App) showConvergenceDialog(results []engine.ConvergenceResult) {
	grid := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("n", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Area", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Area Delta", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Length", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Length Delta", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for _, r := range results {
		grid.Add(widget.NewLabel(strconv.Itoa(r.Shape.Resolution)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.6f", r.SurfaceArea)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.2e", r.AreaDelta)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.6f", r.EdgeLength)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.2e", r.LengthDelta)))
	}

	content := container.NewVBox(
		widgets.NewConvergencePlot(results, 520, 220),
		widget.NewSeparator(),
		grid,
		widget.NewLabel("The convergence table is included in PDF and spreadsheet exports."),
	)
	d := dialog.NewCustom("Convergence Study", "Close", content, a.window)
	d.Resize(fyne.NewSize(600, 500))
	d.Show()
}

// showSavePresetDialog stores the applied shape under a new name.
func (a *App) showSavePresetDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")
	descEntry := widget.NewEntry()

	dialog.ShowForm("Save Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if err := a.savePreset(nameEntry.Text, descEntry.Text); err != nil {
				dialog.ShowError(err, a.window)
			}
		},
		a.window,
	)
}

func (a *App) savePreset(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	a.presets.Add(model.NewShapePreset(name, description, a.shape))
	return a.persistPresets()
}

func (a *App) refreshPresetSelect() {
	if a.presetSelect == nil {
		return
	}
	a.presetSelect.Options = a.presets.Names()
	a.presetSelect.ClearSelected()
	a.presetSelect.Refresh()
}
