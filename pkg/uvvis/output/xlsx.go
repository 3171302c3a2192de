package output

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/xuri/excelize/v2"
)

// WorkbookName is the file name of the xlsx export.
const WorkbookName = "analysis.xlsx"

// WriteXLSX writes one sheet per quantity to dir/analysis.xlsx and returns
// the path. Sheets use the csv layout with numeric cells.
func WriteXLSX(report *models.Report, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, q := range Quantities(report) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), q.Name); err != nil {
				return "", err
			}
		} else if _, err := f.NewSheet(q.Name); err != nil {
			return "", err
		}
		if err := writeSheet(f, q.Name, BuildTable(report, q)); err != nil {
			return "", fmt.Errorf("sheet %s: %w", q.Name, err)
		}
	}

	path := filepath.Join(dir, WorkbookName)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeSheet(f *excelize.File, sheet string, t *Table) error {
	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < t.NumRows(); i++ {
		row := make([]interface{}, 0, 2*len(t.Columns))
		for _, c := range t.Columns {
			if i < len(c.X) {
				row = append(row, c.X[i], c.Y[i])
			} else {
				row = append(row, nil, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
