package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestAxisRange(t *testing.T) {
	lo, hi, err := AxisRange(testReport(false))
	require.NoError(t, err)
	assert.InDelta(t, 1240.0/600, lo, 1e-12)
	assert.InDelta(t, 3.1, hi, 1e-12)

	report := testReport(false)
	report.Unit = models.UnitNM
	lo, hi, err = AxisRange(report)
	require.NoError(t, err)
	assert.Equal(t, 400.0, lo)
	assert.Equal(t, 600.0, hi)
}

func TestAxisRangeEmpty(t *testing.T) {
	_, _, err := AxisRange(emptyReport())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestPlotAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, IndividualDir), 0755))

	paths, err := PlotAll(testReport(true), dir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, IndividualDir, "Film1.png"),
		filepath.Join(dir, IndividualDir, "Film2.png"),
		filepath.Join(dir, IndividualDir, "all_transmittance.png"),
		filepath.Join(dir, IndividualDir, "all_reflectance.png"),
		filepath.Join(dir, "absorptance.png"),
		filepath.Join(dir, "absorbance.png"),
		filepath.Join(dir, "alpha.png"),
	}
	assert.Equal(t, expected, paths)

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a png", p)
	}
}

func TestPlotAllWithoutThickness(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, IndividualDir), 0755))

	paths, err := PlotAll(testReport(false), dir)
	require.NoError(t, err)
	assert.Len(t, paths, 6)
	assert.NoFileExists(t, filepath.Join(dir, "alpha.png"))
}

func TestPlotAllEmpty(t *testing.T) {
	paths, err := PlotAll(emptyReport(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPlotCombinedLogSkipsNonPositive(t *testing.T) {
	report := testReport(true)
	report.Results["Film2"].Alpha = []float64{-1, 0}

	path := filepath.Join(t.TempDir(), "alpha.png")
	_, err := PlotCombined(report, Alpha.Label, path, Alpha.Values, true, nil, nil)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSampleFileName(t *testing.T) {
	tests := []struct {
		sample string
		want   string
	}{
		{"Film1", "Film1"},
		{"ZnO/glass", "ZnO_glass"},
		{`run\2`, "run_2"},
		{"..", "_.."},
		{"", "_"},
		{"all_transmittance", "all_transmittance_sample"},
		{"all_reflectance", "all_reflectance_sample"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SampleFileName(tt.sample), "sample %q", tt.sample)
	}
}

func TestPlotAllUnsafeSampleNames(t *testing.T) {
	report := testReport(false)
	report.Results["ZnO/glass"] = report.Results["Film1"]
	report.Results["ZnO/glass"].Sample = "ZnO/glass"
	report.Results["all_transmittance"] = report.Results["Film2"]
	report.Results["all_transmittance"].Sample = "all_transmittance"
	delete(report.Results, "Film1")
	delete(report.Results, "Film2")
	report.Samples = []string{"ZnO/glass", "all_transmittance"}
	report.Analyzed = report.Samples

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, IndividualDir), 0755))

	paths, err := PlotAll(report, dir)
	require.NoError(t, err)

	assert.Contains(t, paths, filepath.Join(dir, IndividualDir, "ZnO_glass.png"))
	assert.Contains(t, paths, filepath.Join(dir, IndividualDir, "all_transmittance_sample.png"))
	assert.Contains(t, paths, filepath.Join(dir, IndividualDir, "all_transmittance.png"))
	for _, p := range paths {
		assert.FileExists(t, p)
	}
	assert.Len(t, paths, 6)
}
