package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	ruleSelect := widget.NewSelect([]string{string(model.QuadratureSimpson), string(model.QuadratureTrapezoid)}, func(selected string) {
		cfg.Quadrature = model.QuadratureRule(selected)
	})
	ruleSelect.SetSelected(string(cfg.Quadrature))

	logLevelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(selected string) {
		cfg.LogLevel = selected
	})
	logLevelSelect.SetSelected(cfg.LogLevel)

	outputDirEntry := widget.NewEntry()
	outputDirEntry.SetText(cfg.OutputDir)
	outputDirEntry.OnChanged = func(text string) { cfg.OutputDir = text }

	useCurrentCheck := widget.NewCheck("Use current parameters as the default shape", nil)

	recent := "none"
	if len(cfg.RecentExports) > 0 {
		recent = strings.Join(cfg.RecentExports, "\n")
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Default Quadrature", ruleSelect),
		widget.NewFormItem("Log Level", logLevelSelect),
		widget.NewFormItem("Output Directory", outputDirEntry),
		widget.NewFormItem("", useCurrentCheck),
		widget.NewFormItem("Recent Exports", widget.NewLabel(recent)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if useCurrentCheck.Checked {
				cfg.Shape = a.shape
			}
			a.config = cfg
			fyne.CurrentApp().Settings().SetTheme(NewMobiusThemeFromName(cfg.Theme))
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 420))
	d.Show()
}

// showImportExportDialog displays the backup and restore dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.presets); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("mobius-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and presets.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := a.restoreBackup(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and presets to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Backup and Restore", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// restoreBackup replaces config and presets with the contents of a backup
// file and persists both.
func (a *App) restoreBackup(path string) (project.BackupData, error) {
	backup, err := project.ImportAllData(path)
	if err != nil {
		return project.BackupData{}, err
	}
	a.config = backup.Config
	if len(backup.Presets.Presets) > 0 {
		a.presets = backup.Presets
		if err := project.SavePresets(a.presetPath(), a.presets); err != nil {
			return backup, fmt.Errorf("failed to save imported presets: %w", err)
		}
		a.refreshPresetSelect()
	}
	if err := a.saveConfig(); err != nil {
		return backup, fmt.Errorf("failed to save imported settings: %w", err)
	}
	if a.mesh != nil {
		a.mesh.SetSettings(a.config.Render)
	}
	a.logger.Info("backup restored", logging.String("path", path))
	return backup, nil
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(a.configPath, a.config)
}
