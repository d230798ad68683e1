// mobius-viewer - desktop viewer for the Mobius strip engine
//
// Shows the sampled surface next to a parameter form and the measured area
// and edge length, with PDF, spreadsheet, PNG and DXF export.
//
// Build:
//   go build -o mobius-viewer ./cmd/mobius-viewer
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
	"github.com/chandramohan-1/mobius-strip/internal/ui"
)

func main() {
	configPath := project.DefaultConfigPath()
	cfg, cfgErr := project.LoadAppConfig(configPath)
	if cfgErr != nil {
		cfg = model.DefaultAppConfig()
	}

	logger, err := logging.NewLogger(logging.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	if cfgErr != nil {
		logger.Warn("config unreadable, using defaults",
			logging.String("path", configPath), logging.Err(cfgErr))
	}

	application := app.NewWithID("io.github.chandramohan1.mobius")
	application.Settings().SetTheme(ui.NewMobiusThemeFromName(cfg.Theme))

	window := application.NewWindow("Mobius - Surface Geometry Viewer")

	appUI := ui.NewApp(window, ui.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Logger:     logger,
	})
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
}
