// Package output writes analysis results to csv, xlsx, parquet, json and png files.
package output

import (
	"fmt"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

// Quantity is a derived value exported per sample.
type Quantity struct {
	// Name is the file stem, e.g. "absorptance".
	Name string
	// Label is the plot axis label.
	Label  string
	values func(*models.AnalysisResult) []float64
}

// Values returns the quantity's values for r.
func (q Quantity) Values(r *models.AnalysisResult) []float64 {
	return q.values(r)
}

var (
	Absorptance = Quantity{
		Name:   "absorptance",
		Label:  "Absorptance",
		values: func(r *models.AnalysisResult) []float64 { return r.Absorptance },
	}
	Absorbance = Quantity{
		Name:   "absorbance",
		Label:  "Absorbance",
		values: func(r *models.AnalysisResult) []float64 { return r.Absorbance },
	}
	Alpha = Quantity{
		Name:   "alpha",
		Label:  "Absorption coefficient (cm^-1)",
		values: func(r *models.AnalysisResult) []float64 { return r.Alpha },
	}
)

// Quantities returns the quantities exported for report, in file order.
// Alpha is only included when a thickness was supplied.
func Quantities(report *models.Report) []Quantity {
	qs := []Quantity{Absorptance, Absorbance}
	if report.HasAlpha() {
		qs = append(qs, Alpha)
	}
	return qs
}

// Column is one (x, value) column pair of a quantity table.
type Column struct {
	Sample string
	X      []float64
	Y      []float64
}

// Table is the sample-by-sample layout shared by the csv and xlsx exports.
type Table struct {
	Header  []string
	Columns []Column
}

// NumRows returns the length of the longest column.
func (t *Table) NumRows() int {
	n := 0
	for _, c := range t.Columns {
		if len(c.X) > n {
			n = len(c.X)
		}
	}
	return n
}

// BuildTable lays out q for every analysed sample of report.
// The header alternates "Energy (<unit>)" and "Sample <name>".
func BuildTable(report *models.Report, q Quantity) *Table {
	t := &Table{}
	for _, r := range report.AnalyzedResults() {
		t.Header = append(t.Header, fmt.Sprintf("Energy (%s)", report.Unit), "Sample "+r.Sample)
		t.Columns = append(t.Columns, Column{
			Sample: r.Sample,
			X:      report.Unit.XValues(r),
			Y:      q.Values(r),
		})
	}
	return t
}
