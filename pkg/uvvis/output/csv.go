package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// ToCSV renders t as csv. Values carry three decimals; cells past the end of
// a shorter series are left empty.
func ToCSV(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Header); err != nil {
		return nil, err
	}

	for i := 0; i < t.NumRows(); i++ {
		row := make([]string, 0, 2*len(t.Columns))
		for _, c := range t.Columns {
			if i < len(c.X) {
				row = append(row, formatValue(c.X[i]), formatValue(c.Y[i]))
			} else {
				row = append(row, "", "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes t to dir/<name>.csv and returns the path.
func WriteCSV(t *Table, dir, name string) (string, error) {
	data, err := ToCSV(t)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".csv")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
