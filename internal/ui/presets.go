package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
)

// ─── Preset Manager Dialog ─────────────────────────────────

func (a *App) showPresetManager() {
	presetList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		presetList.RemoveAll()

		if len(a.presets.Presets) == 0 {
			presetList.Add(widget.NewLabel("No presets defined."))
			return
		}

		header := container.NewGridWithColumns(7,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Radius", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Resolution", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		presetList.Add(header)
		presetList.Add(widget.NewSeparator())

		for i := range a.presets.Presets {
			p := a.presets.Presets[i]
			row := container.NewGridWithColumns(7,
				widget.NewLabel(p.Name),
				widget.NewLabel(strconv.FormatFloat(p.Shape.Radius, 'g', -1, 64)),
				widget.NewLabel(strconv.FormatFloat(p.Shape.Width, 'g', -1, 64)),
				widget.NewLabel(strconv.Itoa(p.Shape.Resolution)),
				widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
					a.applyParameters(p.Shape, a.rule, "Apply preset "+p.Name)
				}),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showEditPresetDialog(p.ID, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					if err := a.deletePreset(p.ID); err != nil {
						dialog.ShowError(err, a.window)
					}
					refreshList()
				}),
			)
			presetList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Save Current", theme.ContentAddIcon(), func() {
		a.showSavePresetDialog()
	})
	resetBtn := widget.NewButtonWithIcon("Restore Built-ins", theme.ViewRefreshIcon(), func() {
		for _, p := range model.BuiltinPresets().Presets {
			a.presets.Add(p)
		}
		if err := a.persistPresets(); err != nil {
			dialog.ShowError(err, a.window)
		}
		refreshList()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), resetBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(presetList),
	)

	d := dialog.NewCustom("Shape Presets", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 450))
	d.Show()
}

func (a *App) showEditPresetDialog(id string, onDone func()) {
	p := a.presets.Find(id)
	if p == nil {
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(p.Name)
	descEntry := widget.NewEntry()
	descEntry.SetText(p.Description)
	radiusEntry := widget.NewEntry()
	radiusEntry.SetText(strconv.FormatFloat(p.Shape.Radius, 'g', -1, 64))
	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.FormatFloat(p.Shape.Width, 'g', -1, 64))
	resolutionEntry := widget.NewEntry()
	resolutionEntry.SetText(strconv.Itoa(p.Shape.Resolution))

	form := dialog.NewForm("Edit Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
			widget.NewFormItem("Radius R", radiusEntry),
			widget.NewFormItem("Width w", widthEntry),
			widget.NewFormItem("Resolution n", resolutionEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			r, errR := strconv.ParseFloat(radiusEntry.Text, 64)
			w, errW := strconv.ParseFloat(widthEntry.Text, 64)
			n, errN := strconv.Atoi(resolutionEntry.Text)
			if errR != nil || errW != nil || errN != nil {
				dialog.ShowError(fmt.Errorf("radius, width and resolution must be numbers"), a.window)
				return
			}
			shape := model.ShapeConfig{Radius: r, Width: w, Resolution: n}
			if err := shape.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			// Re-find: the store may have changed while the dialog was open.
			if p := a.presets.Find(id); p != nil {
				p.Name = nameEntry.Text
				p.Description = descEntry.Text
				p.Shape = shape
			}
			if err := a.persistPresets(); err != nil {
				dialog.ShowError(err, a.window)
			}
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

func (a *App) deletePreset(key string) error {
	if !a.presets.Remove(key) {
		return fmt.Errorf("preset %q not found", key)
	}
	return a.persistPresets()
}

// persistPresets writes the store and refreshes the preset picker.
func (a *App) persistPresets() error {
	if err := project.SavePresets(a.presetPath(), a.presets); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}
	a.refreshPresetSelect()
	return nil
}
