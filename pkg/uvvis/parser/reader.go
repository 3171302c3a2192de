package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for inputs that are neither csv nor xlsx.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ReadOptions controls how spreadsheet inputs are read.
type ReadOptions struct {
	// Sheet selects the worksheet of an xlsx input. Empty means the first sheet.
	Sheet string
	// Range restricts an xlsx input to a cell range such as "A1:H200".
	// A "Sheet!A1:H200" reference also selects the sheet.
	Range string
}

// ReadTable reads a csv or xlsx file into a RawTable.
func ReadTable(path string, opts ReadOptions) (*models.RawTable, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rows, err = ReadCSV(f)
	case ".xlsx", ".xlsm":
		rows, err = readXLSXFile(path, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return &models.RawTable{
		Source: filepath.Base(path),
		Rows:   trimTable(rows),
	}, nil
}

// ReadCSV reads comma separated rows. Rows may have different lengths.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readXLSXFile(path string, opts ReadOptions) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadXLSX(f, opts)
}

// ReadXLSX reads the selected sheet of an open workbook.
func ReadXLSX(f *excelize.File, opts ReadOptions) ([][]string, error) {
	sheet := opts.Sheet
	var area *models.CellRange
	if opts.Range != "" {
		rangeSheet, r, err := ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
		if rangeSheet != "" {
			sheet = rangeSheet
		}
		area = &r
	}

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	// Stored values, not the number-format rendering.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if area != nil {
		rows = sliceRows(rows, *area)
	}
	return rows, nil
}

// sliceRows keeps only the cells inside area.
func sliceRows(rows [][]string, area models.CellRange) [][]string {
	var out [][]string
	for rowIdx, row := range rows {
		if !area.Contains(rowIdx+1, area.C1) {
			continue
		}
		var cells []string
		for colIdx, cell := range row {
			if area.Contains(rowIdx+1, colIdx+1) {
				cells = append(cells, cell)
			}
		}
		out = append(out, cells)
	}
	return out
}
