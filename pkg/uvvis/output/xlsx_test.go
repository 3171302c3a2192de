package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteXLSX(testReport(true), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, WorkbookName), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"absorptance", "absorbance", "alpha"}, f.GetSheetList())

	rows, err := f.GetRows("absorptance")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Energy (eV)", "Sample Film1", "Energy (eV)", "Sample Film2"}, rows[0])
	assert.Equal(t, "0.4", rows[1][1])
	// Short series leaves its cells empty
	assert.Len(t, rows[3], 2)
}

func TestWriteXLSXWithoutAlpha(t *testing.T) {
	path, err := WriteXLSX(testReport(false), t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"absorptance", "absorbance"}, f.GetSheetList())
}
