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

func TestToCSV(t *testing.T) {
	data, err := ToCSV(BuildTable(testReport(false), Absorptance))
	require.NoError(t, err)

	expected := "Energy (eV),Sample Film1,Energy (eV),Sample Film2\n" +
		"3.100,0.400,3.100,0.600\n" +
		"2.480,0.300,2.480,0.500\n" +
		"2.067,0.200,,\n"
	assert.Equal(t, expected, string(data))
}

func TestToCSVNanometres(t *testing.T) {
	report := testReport(false)
	report.Unit = models.UnitNM

	data, err := ToCSV(BuildTable(report, Absorbance))
	require.NoError(t, err)

	lines := bytes.Split(data, []byte("\n"))
	assert.Equal(t, "Energy (nm),Sample Film1,Energy (nm),Sample Film2", string(lines[0]))
	assert.Equal(t, "400.000,0.511,400.000,0.916", string(lines[1]))
}

func TestToCSVEmpty(t *testing.T) {
	data, err := ToCSV(BuildTable(emptyReport(), Absorptance))
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))
}

func TestWriteCSVIdempotent(t *testing.T) {
	dir := t.TempDir()
	report := testReport(true)

	path, err := WriteCSV(BuildTable(report, Alpha), dir, "alpha")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alpha.csv"), path)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = WriteCSV(BuildTable(report, Alpha), dir, "alpha")
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteCSVMissingDir(t *testing.T) {
	_, err := WriteCSV(BuildTable(testReport(false), Absorptance), filepath.Join(t.TempDir(), "nope"), "absorptance")
	assert.Error(t, err)
}
