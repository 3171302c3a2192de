package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference.
// Format: 'SheetName'!$A$1:$D$10, SheetName!A1:D10 or A1:D10
func ParseRange(ref string) (string, models.CellRange, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := parseRangeToArea(rangeStr)
	if err != nil {
		return "", models.CellRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) (models.CellRange, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("expected two corners")
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, err
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, err
	}

	// Normalise reversed corners
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
