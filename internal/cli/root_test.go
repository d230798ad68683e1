package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
)

// runCLI executes the root command against an isolated config directory.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	full := append([]string{"--config", filepath.Join(dir, "config.json"), "--log-level", "error"}, args...)
	cmd.SetArgs(full)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "mobius", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"compute", "converge", "export", "batch", "preset"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
	for _, flag := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestRoot_ExampleRun(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "--render", "none")
	require.NoError(t, err)
	assert.Equal(t, "Surface Area: 1.8864\nEdge Length: 12.6015\n", stdout)
}

func TestRoot_ExampleRunRendersPNG(t *testing.T) {
	dir := t.TempDir()
	plot := filepath.Join(dir, "example.png")

	stdout, _, err := runCLI(t, dir, "--plot", plot)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Surface Area: 1.8864")

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(100))
}

func TestRoot_UnknownRenderMode(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "--render", "opengl")
	assert.Error(t, err)
}

func TestRoot_RejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"shape":{"width":-1}}`), 0644))

	_, _, err := runCLI(t, dir, "--render", "none")
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestCompute_Flags(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "compute", "--radius", "2", "--width", "0.6", "--resolution", "200")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Surface Area: 7.5457\n")
	assert.Contains(t, stdout, "Edge Length: 25.2031\n")
	assert.Contains(t, stdout, "Quadrature: simpson\n")
}

func TestCompute_UsesConfigDefaults(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "compute")
	require.NoError(t, err)
	// Defaults are R=1, w=0.2, n=100.
	assert.Contains(t, stdout, "Surface Area: 1.2563\n")
	assert.Contains(t, stdout, "Edge Length: 12.5800\n")
}

func TestCompute_JSON(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "compute", "-n", "50", "-w", "0.3", "--json")
	require.NoError(t, err)

	var summary model.GeometricSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 50, summary.Shape.Resolution)
	assert.InDelta(t, 1.8815598414, summary.SurfaceArea, 1e-8)
}

func TestCompute_Degenerate(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "compute", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Quadrature: trapezoid")
	assert.Contains(t, stdout, "Warning:")
}

func TestCompute_InvalidInputs(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCLI(t, dir, "compute", "-n", "1")
	assert.ErrorIs(t, err, model.ErrInvalidConfig)

	_, _, err = runCLI(t, dir, "compute", "--radius", "0")
	assert.ErrorIs(t, err, model.ErrInvalidConfig)

	_, _, err = runCLI(t, dir, "compute", "--quadrature", "romberg")
	assert.Error(t, err)

	_, _, err = runCLI(t, dir, "compute", "--preset", "missing")
	assert.Error(t, err)
}

func TestConverge_Table(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "converge", "-w", "0.3", "--resolutions", "50,200")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "N "))
	assert.Contains(t, lines[2], "1.881560")
	assert.Contains(t, lines[3], "1.886419")
}

func TestConverge_ExportsWorkbook(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "study.xlsx")

	_, _, err := runCLI(t, dir, "converge", "--resolutions", "5,9,17", "--xlsx", out)
	require.NoError(t, err)
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestConverge_InvalidResolution(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "converge", "--resolutions", "50,1")
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestExport_AllFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"pdf", "xlsx", "dxf", "png"} {
		out := filepath.Join(dir, "strip."+format)
		stdout, _, err := runCLI(t, dir, "export", "--format", format, "--out", out, "-n", "30")
		require.NoError(t, err, format)
		assert.Contains(t, stdout, out)

		info, err := os.Stat(out)
		require.NoError(t, err, format)
		assert.Greater(t, info.Size(), int64(0), format)
	}

	cfg, err := project.LoadAppConfig(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	require.Len(t, cfg.RecentExports, 4)
	assert.Equal(t, filepath.Join(dir, "strip.png"), cfg.RecentExports[0])
}

func TestExport_WithConvergence(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.pdf")

	_, _, err := runCLI(t, dir, "export", "-f", "pdf", "-o", out, "-n", "20", "--convergence")
	require.NoError(t, err)
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "export", "--format", "stl")
	assert.Error(t, err)
}

func TestGetCLIContext_Missing(t *testing.T) {
	_, err := GetCLIContext(&cobra.Command{})
	assert.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	out := FormatTable([]string{"A", "LONG"}, [][]string{{"xyz", "1"}, {"q"}})
	assert.Equal(t, "A    LONG\n---  ----\nxyz  1   \nq        \n", out)
	assert.Empty(t, FormatTable(nil, nil))
}
