package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

// HeaderMode selects how measurement kinds are read from the header.
type HeaderMode string

const (
	// HeaderAuto uses marker mode when the second row carries T/R markers
	// and positional mode otherwise.
	HeaderAuto HeaderMode = "auto"
	// HeaderMarker reads a trailing 'T' or 'R' from the second header row.
	HeaderMarker HeaderMode = "marker"
	// HeaderPositional infers the reflectance block from repeated Baseline columns.
	HeaderPositional HeaderMode = "positional"
)

// Valid reports whether m is a known header mode.
func (m HeaderMode) Valid() bool {
	switch m {
	case HeaderAuto, HeaderMarker, HeaderPositional:
		return true
	}
	return false
}

// baselineGap is the column distance above which two consecutive Baseline
// columns are taken to belong to different blocks. Adjacent measurements sit
// two table columns apart.
const baselineGap = 2

// namedColumn is a measurement name found in the first header row.
type namedColumn struct {
	name  string
	index int
}

// headerNames returns the non-empty names at even indices of the first row.
func headerNames(table *models.RawTable) []namedColumn {
	var names []namedColumn
	for i, cell := range table.Row(0) {
		if i%2 != 0 {
			continue
		}
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		names = append(names, namedColumn{name: name, index: i})
	}
	return names
}

// markerKind reads the trailing type marker of a cell.
func markerKind(cell string) (models.Kind, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return "", false
	}
	switch cell[len(cell)-1] {
	case 'T':
		return models.Transmittance, true
	case 'R':
		return models.Reflectance, true
	}
	return "", false
}

// hasMarkerRow reports whether the second row carries at least one T/R marker
// on an odd index.
func hasMarkerRow(table *models.RawTable) bool {
	for i, cell := range table.Row(1) {
		if i%2 == 1 {
			if _, ok := markerKind(cell); ok {
				return true
			}
		}
	}
	return false
}

// ResolveMode turns HeaderAuto into the concrete mode for table.
func ResolveMode(table *models.RawTable, mode HeaderMode) HeaderMode {
	if mode != HeaderAuto && mode != "" {
		return mode
	}
	if hasMarkerRow(table) {
		return HeaderMarker
	}
	return HeaderPositional
}

// DetectColumns interprets the header rows of table.
// It returns the recognised columns in table order.
func DetectColumns(table *models.RawTable, mode HeaderMode) ([]models.MeasurementColumn, []models.Diagnostic) {
	switch mode {
	case HeaderPositional:
		return detectPositional(table)
	default:
		return detectMarked(table)
	}
}

// detectMarked reads the kind of each measurement from the marker under its
// value column.
func detectMarked(table *models.RawTable) ([]models.MeasurementColumn, []models.Diagnostic) {
	var (
		columns []models.MeasurementColumn
		diags   []models.Diagnostic
	)

	for _, nc := range headerNames(table) {
		marker, _ := table.Cell(1, nc.index+1)
		kind, ok := markerKind(marker)
		if !ok {
			diags = append(diags, models.Diagnostic{
				Severity: models.SeverityWarning,
				Reason:   models.ReasonUnknownMarker,
				Message:  fmt.Sprintf("column %q has no T/R type marker (found %q), ignored", nc.name, strings.TrimSpace(marker)),
			})
			continue
		}
		columns = append(columns, models.MeasurementColumn{Name: nc.name, Kind: kind, Index: nc.index})
	}

	return columns, diags
}

// detectPositional splits the measurements into a transmittance block and a
// reflectance block. The reflectance block starts at the first Baseline
// column that follows a run of non-baseline measurements.
func detectPositional(table *models.RawTable) ([]models.MeasurementColumn, []models.Diagnostic) {
	names := headerNames(table)
	boundary, diags := reflectanceBoundary(names)

	columns := make([]models.MeasurementColumn, 0, len(names))
	for _, nc := range names {
		kind := models.Transmittance
		if boundary >= 0 && nc.index >= boundary {
			kind = models.Reflectance
		}
		columns = append(columns, models.MeasurementColumn{Name: nc.name, Kind: kind, Index: nc.index})
	}
	return columns, diags
}

// reflectanceBoundary returns the table column where reflectance data starts,
// or -1 when it cannot be found.
func reflectanceBoundary(names []namedColumn) (int, []models.Diagnostic) {
	var baselines []int
	for _, nc := range names {
		if strings.Contains(nc.name, models.BaselineMarker) {
			baselines = append(baselines, nc.index)
		}
	}

	var candidates []int
	for i := 1; i < len(baselines); i++ {
		if baselines[i]-baselines[i-1] > baselineGap {
			candidates = append(candidates, baselines[i])
		}
	}

	switch len(candidates) {
	case 0:
		return -1, []models.Diagnostic{{
			Severity: models.SeverityWarning,
			Reason:   models.ReasonMissingBoundary,
			Message:  "could not locate the reflectance block from Baseline columns, all columns read as transmittance",
		}}
	case 1:
		return candidates[0], nil
	default:
		return candidates[0], []models.Diagnostic{{
			Severity: models.SeverityWarning,
			Reason:   models.ReasonAmbiguousBoundary,
			Message:  fmt.Sprintf("found %d possible starts of the reflectance block, using column %d; check the header", len(candidates), candidates[0]+1),
		}}
	}
}
