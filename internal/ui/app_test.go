package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandramohan-1/mobius-strip/internal/importer"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
)

// newTestApp builds the full viewer on a headless window with its config
// directory under t.TempDir().
func newTestApp(t *testing.T) *App {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	a := NewApp(w, Options{
		Config:     model.DefaultAppConfig(),
		ConfigPath: filepath.Join(t.TempDir(), "config.json"),
	})
	w.SetContent(a.Build())
	return a
}

func setForm(a *App, r, w, n string) {
	a.radiusEntry.SetText(r)
	a.widthEntry.SetText(w)
	a.resolutionEntry.SetText(n)
}

func TestBuildComputesDefaults(t *testing.T) {
	a := newTestApp(t)

	require.NotNil(t, a.strip)
	assert.Equal(t, "1.2563", a.areaLabel.Text)
	assert.Equal(t, "12.5800", a.lengthLabel.Text)
	assert.Equal(t, "simpson", a.ruleLabel.Text)
	assert.False(t, a.warningLabel.Visible())
	assert.NotNil(t, a.mesh.Points())
	assert.False(t, a.history.CanUndo(), "the initial compute is not an edit")
}

func TestComputeAppliesForm(t *testing.T) {
	a := newTestApp(t)

	setForm(a, "2", "0.6", "200")
	a.compute()

	assert.Equal(t, "7.5457", a.areaLabel.Text)
	assert.Equal(t, "25.2031", a.lengthLabel.Text)
	assert.Equal(t, model.ShapeConfig{Radius: 2, Width: 0.6, Resolution: 200}, a.shape)
	assert.True(t, a.history.CanUndo())
	assert.False(t, a.toolbar.undo.Disabled())
}

func TestComputeSameParametersIsNotAnEdit(t *testing.T) {
	a := newTestApp(t)
	a.compute()
	assert.False(t, a.history.CanUndo())
}

func TestComputeDegenerateGrid(t *testing.T) {
	a := newTestApp(t)

	setForm(a, "1", "0.3", "2")
	a.compute()

	assert.Equal(t, "0.0000", a.areaLabel.Text)
	assert.Equal(t, "0.6000", a.lengthLabel.Text)
	assert.Equal(t, "trapezoid", a.ruleLabel.Text)
	assert.True(t, a.warningLabel.Visible())
}

func TestReadFormRejectsBadInput(t *testing.T) {
	a := newTestApp(t)

	setForm(a, "abc", "0.3", "100")
	_, _, err := a.readForm()
	assert.Error(t, err)

	setForm(a, "1", "0.3", "1.5")
	_, _, err = a.readForm()
	assert.Error(t, err)

	setForm(a, "-1", "0.3", "100")
	_, _, err = a.readForm()
	assert.True(t, model.IsInvalidConfig(err))

	setForm(a, "1", "0.3", "1")
	_, _, err = a.readForm()
	assert.True(t, model.IsInvalidConfig(err))
}

func TestComputeInvalidKeepsPreviousStrip(t *testing.T) {
	a := newTestApp(t)
	before := a.strip

	setForm(a, "1", "0", "100")
	a.compute()

	assert.Same(t, before, a.strip)
	assert.Equal(t, "1.2563", a.areaLabel.Text)
	assert.False(t, a.history.CanUndo())
}

func TestUndoRedoRestoresForm(t *testing.T) {
	a := newTestApp(t)

	setForm(a, "2", "0.6", "200")
	a.compute()

	a.undo()
	assert.Equal(t, "1", a.radiusEntry.Text)
	assert.Equal(t, "0.2", a.widthEntry.Text)
	assert.Equal(t, "100", a.resolutionEntry.Text)
	assert.Equal(t, "1.2563", a.areaLabel.Text)
	assert.True(t, a.history.CanRedo())

	a.redo()
	assert.Equal(t, "2", a.radiusEntry.Text)
	assert.Equal(t, "7.5457", a.areaLabel.Text)
	assert.False(t, a.history.CanRedo())
}

func TestTrapezoidSelection(t *testing.T) {
	a := newTestApp(t)

	setForm(a, "1", "0.3", "200")
	a.ruleSelect.SetSelected("trapezoid")
	a.compute()

	assert.Equal(t, model.QuadratureTrapezoid, a.rule)
	assert.Equal(t, "trapezoid", a.ruleLabel.Text)
	assert.Equal(t, "1.8864", a.areaLabel.Text)
}

func TestSavePresetPersists(t *testing.T) {
	a := newTestApp(t)
	setForm(a, "2", "0.6", "200")
	a.compute()

	require.NoError(t, a.savePreset("Wide", "twice the example"))
	assert.Contains(t, a.presetSelect.Options, "Wide")

	store, err := project.LoadPresets(a.presetPath())
	require.NoError(t, err)
	p := store.Find("Wide")
	require.NotNil(t, p)
	assert.Equal(t, a.shape, p.Shape)

	assert.Error(t, a.savePreset("  ", ""))
}

func TestApplyPresetIsUndoable(t *testing.T) {
	a := newTestApp(t)

	a.presetSelect.SetSelected("Example")
	assert.Equal(t, model.ExampleShapeConfig(), a.shape)
	assert.Equal(t, "1.8864", a.areaLabel.Text)

	a.undo()
	assert.Equal(t, model.DefaultShapeConfig(), a.shape)
}

func TestDeletePreset(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.deletePreset("Classic"))
	assert.NotContains(t, a.presetSelect.Options, "Classic")
	assert.Error(t, a.deletePreset("Classic"))
}

func TestExportToRecordsRecentExport(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()

	for _, f := range []exportFormat{formatPDF, formatXLSX, formatPNG, formatDXF} {
		path := filepath.Join(dir, a.defaultFileName(f))
		require.NoError(t, a.exportTo(f, path), f)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
		assert.Equal(t, path, a.config.RecentExports[0])
	}

	saved, err := project.LoadAppConfig(a.configPath)
	require.NoError(t, err)
	assert.Len(t, saved.RecentExports, 4)
}

func TestExportToUnknownFormatRemovesFile(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.Error(t, a.exportTo("svg", path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDefaultFileName(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, "mobius_R1_w0.2_n100.pdf", a.defaultFileName(formatPDF))
}

func TestRestoreBackup(t *testing.T) {
	a := newTestApp(t)

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	presets := model.NewPresetStore()
	presets.Add(model.NewShapePreset("Tiny", "", model.ShapeConfig{Radius: 0.5, Width: 0.1, Resolution: 20}))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, project.ExportAllData(path, cfg, presets))

	backup, err := a.restoreBackup(path)
	require.NoError(t, err)
	assert.NotEmpty(t, backup.CreatedAt)
	assert.Equal(t, "dark", a.config.Theme)
	assert.NotNil(t, a.presets.Find("Tiny"))
	assert.Equal(t, []string{"Tiny"}, a.presetSelect.Options)

	saved, err := project.LoadAppConfig(a.configPath)
	require.NoError(t, err)
	assert.Equal(t, "dark", saved.Theme)
}

func TestComputeBatchKeepsOrder(t *testing.T) {
	rows := []importer.ShapeRow{
		{Label: "a", Shape: model.ShapeConfig{Radius: 2, Width: 0.6, Resolution: 200}, Quadrature: model.QuadratureSimpson},
		{Label: "b", Shape: model.ExampleShapeConfig(), Quadrature: model.QuadratureSimpson},
	}

	entries, err := computeBatch(context.Background(), rows, logging.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Label)
	assert.InDelta(t, 7.5456773665, entries[0].Summary.SurfaceArea, 1e-8)
	assert.Equal(t, "b", entries[1].Label)
	assert.InDelta(t, 12.6015392647, entries[1].Summary.EdgeLength, 1e-8)
}

func TestComputeBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := []importer.ShapeRow{{Label: "a", Shape: model.ExampleShapeConfig()}}
	_, err := computeBatch(ctx, rows, logging.NewNopLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandleImportResultFillsBatch(t *testing.T) {
	a := newTestApp(t)

	a.handleImportResult(importer.ImportResult{
		Shapes: []importer.ShapeRow{
			{Label: "row", Shape: model.ExampleShapeConfig(), Quadrature: model.QuadratureSimpson},
		},
		Warnings: []string{"Row 2: missing resolution, using 100"},
	})

	require.Len(t, a.batch, 1)
	assert.Equal(t, "1.8864", batchCell(a.batch[0], 4))
	assert.Equal(t, "12.6015", batchCell(a.batch[0], 5))
	assert.Equal(t, "simpson", batchCell(a.batch[0], 6))
	assert.Equal(t, 1, a.tabs.SelectedIndex())
}
