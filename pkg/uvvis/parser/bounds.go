package parser

import "strings"

// trimTable drops trailing rows and columns that hold no data.
// Leading blanks are kept because header positions are significant.
func trimTable(rows [][]string) [][]string {
	maxRow, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return nil
	}

	out := make([][]string, 0, maxRow+1)
	for _, row := range rows[:maxRow+1] {
		if len(row) > maxCol+1 {
			row = row[:maxCol+1]
		}
		out = append(out, row)
	}
	return out
}

// findDataBounds finds the last row and column holding a non-blank cell.
// Both are -1 for an empty table.
func findDataBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if rowIdx > maxRow {
					maxRow = rowIdx
				}
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
