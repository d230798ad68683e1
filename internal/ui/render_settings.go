package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showRenderSettingsDialog edits the camera, colormap and mesh density used
// by the viewer and the exporters. Changes apply to a copy and are committed
// only when they validate.
func (a *App) showRenderSettingsDialog() {
	s := a.config.Render

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(*val, 'g', -1, 64))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	colormapSelect := widget.NewSelect([]string{"viridis", "gray"}, func(selected string) {
		s.Colormap = selected
	})
	colormapSelect.SetSelected(s.Colormap)

	alphaSlider := widget.NewSlider(0, 1)
	alphaSlider.Step = 0.05
	alphaSlider.SetValue(s.Alpha)
	alphaSlider.OnChanged = func(v float64) { s.Alpha = v }

	cameraSection := widget.NewCard("Camera", "Viewing angles in degrees",
		container.NewGridWithColumns(2,
			widget.NewLabel("Elevation"), floatEntry(&s.Elevation),
			widget.NewLabel("Azimuth"), floatEntry(&s.Azimuth),
		))

	surfaceSection := widget.NewCard("Surface", "",
		container.NewGridWithColumns(2,
			widget.NewLabel("Colormap"), colormapSelect,
			widget.NewLabel("Face Opacity"), alphaSlider,
			widget.NewLabel("Wire Stride (0 = auto)"), intEntry(&s.WireStride),
		))

	imageSection := widget.NewCard("Exported Image", "PNG size in pixels",
		container.NewGridWithColumns(2,
			widget.NewLabel("Width"), intEntry(&s.Width),
			widget.NewLabel("Height"), intEntry(&s.Height),
		))

	content := container.NewVScroll(container.NewVBox(cameraSection, surfaceSection, imageSection))

	d := dialog.NewCustomConfirm("Render Settings", "Apply", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		if err := s.Validate(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config.Render = s
		a.mesh.SetSettings(s)
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
		}
	}, a.window)
	d.Resize(fyne.NewSize(450, 520))
	d.Show()
}
