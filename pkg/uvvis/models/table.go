// Package models defines data structures for transmittance/reflectance analysis.
package models

// RawTable is the unparsed contents of an input file, one string per cell.
// Rows may be ragged. A RawTable is never modified after it has been read.
type RawTable struct {
	// Source is the file name the table was read from (no path).
	Source string `json:"source"`
	// Rows holds the cells in file order.
	Rows [][]string `json:"-"`
}

// Cell returns the cell at (row, col), both 0-based.
// ok is false when the row is missing or too short.
func (t *RawTable) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return "", false
	}
	r := t.Rows[row]
	if col >= len(r) {
		return "", false
	}
	return r[col], true
}

// Row returns the row at index i, or nil when out of range.
func (t *RawTable) Row(i int) []string {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// NumRows returns the number of rows in the table.
func (t *RawTable) NumRows() int {
	return len(t.Rows)
}
