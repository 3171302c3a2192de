package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

// Parsed is the interpreted content of a RawTable.
type Parsed struct {
	// Mode is the header mode actually used.
	Mode HeaderMode
	// Columns lists every recognised column in table order.
	Columns []models.MeasurementColumn
	// Samples lists analysable sample names in table order.
	Samples []string
	// Series maps "<name>_T"/"<name>_R" to the parsed series.
	Series models.SeriesMap
	// Diagnostics holds header warnings.
	Diagnostics []models.Diagnostic
}

// Parse interprets a raw table. It never fails: problems are reported as
// diagnostics and an unrecognisable table yields no samples.
func Parse(table *models.RawTable, mode HeaderMode) *Parsed {
	mode = ResolveMode(table, mode)
	columns, diags := DetectColumns(table, mode)
	columns, dupDiags := dedupeColumns(columns)
	diags = append(diags, dupDiags...)

	firstDataRow := 2
	if mode == HeaderPositional {
		firstDataRow = 1
	}

	return &Parsed{
		Mode:        mode,
		Columns:     columns,
		Samples:     SampleNames(columns),
		Series:      ParseSeries(table, columns, firstDataRow),
		Diagnostics: diags,
	}
}

// dedupeColumns keeps the first column of every label.
func dedupeColumns(columns []models.MeasurementColumn) ([]models.MeasurementColumn, []models.Diagnostic) {
	seen := make(map[string]bool, len(columns))
	out := make([]models.MeasurementColumn, 0, len(columns))
	var diags []models.Diagnostic
	for _, c := range columns {
		label := c.Label()
		if seen[label] {
			diags = append(diags, models.Diagnostic{
				Severity: models.SeverityWarning,
				Reason:   models.ReasonDuplicateColumn,
				Message:  fmt.Sprintf("duplicate measurement %s in column %d ignored", label, c.Index+1),
			})
			continue
		}
		seen[label] = true
		out = append(out, c)
	}
	return out, diags
}

// SampleNames returns the names of transmittance columns that are not baselines.
func SampleNames(columns []models.MeasurementColumn) []string {
	var samples []string
	for _, c := range columns {
		if c.Kind == models.Transmittance && !c.IsBaseline() {
			samples = append(samples, c.Name)
		}
	}
	return samples
}

// ParseSeries reads the (wavelength, value) pairs of every column from
// firstDataRow on. Cells that are missing or not numeric are skipped.
func ParseSeries(table *models.RawTable, columns []models.MeasurementColumn, firstDataRow int) models.SeriesMap {
	series := make(models.SeriesMap, len(columns))
	for _, c := range columns {
		series[c.Label()] = models.SpectralSeries{}
	}

	for rowIdx := firstDataRow; rowIdx < table.NumRows(); rowIdx++ {
		for _, c := range columns {
			x, okX := table.Cell(rowIdx, c.Index)
			y, okY := table.Cell(rowIdx, c.Index+1)
			if !okX || !okY {
				continue
			}
			p, ok := parsePoint(x, y)
			if !ok {
				continue
			}
			series[c.Label()] = append(series[c.Label()], p)
		}
	}

	return series
}

// parsePoint parses a cell pair as two floats.
func parsePoint(x, y string) (models.Point, bool) {
	wl, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return models.Point{}, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return models.Point{}, false
	}
	return models.Point{Wavelength: wl, Value: v}, true
}
