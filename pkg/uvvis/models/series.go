package models

import "strings"

// Kind identifies the measurement type of a column.
type Kind string

const (
	// Transmittance columns carry the percentage of light passing the sample.
	Transmittance Kind = "T"
	// Reflectance columns carry the percentage of light reflected by the sample.
	Reflectance Kind = "R"
)

// BaselineMarker is the literal that marks reference columns.
const BaselineMarker = "Baseline"

// MeasurementColumn is a named measurement occupying two adjacent columns
// (wavelength, value) of the input table.
type MeasurementColumn struct {
	// Name is the measurement name from the header row.
	Name string `json:"name"`
	// Kind is Transmittance or Reflectance.
	Kind Kind `json:"kind"`
	// Index is the 0-based table column holding the wavelength.
	// The value column is Index+1.
	Index int `json:"index"`
}

// Label returns the series key, e.g. "Film1_T".
func (c MeasurementColumn) Label() string {
	return SeriesLabel(c.Name, c.Kind)
}

// IsBaseline reports whether the column is a reference measurement.
func (c MeasurementColumn) IsBaseline() bool {
	return strings.Contains(c.Name, BaselineMarker)
}

// SeriesLabel builds the "<name>_<kind>" key used in SeriesMap.
func SeriesLabel(name string, kind Kind) string {
	return name + "_" + string(kind)
}

// Point is a single (wavelength, percent) reading.
type Point struct {
	Wavelength float64 `json:"wavelength_nm"`
	Value      float64 `json:"value"`
}

// SpectralSeries is the ordered list of readings for one column, in row order.
type SpectralSeries []Point

// Wavelengths returns the wavelength sub-sequence.
func (s SpectralSeries) Wavelengths() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Wavelength
	}
	return out
}

// Values returns the value sub-sequence.
func (s SpectralSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// SeriesMap maps "<name>_T"/"<name>_R" labels to their series.
type SeriesMap map[string]SpectralSeries

// Transmittance returns the T series of a sample.
func (m SeriesMap) Transmittance(sample string) SpectralSeries {
	return m[SeriesLabel(sample, Transmittance)]
}

// Reflectance returns the R series of a sample.
func (m SeriesMap) Reflectance(sample string) SpectralSeries {
	return m[SeriesLabel(sample, Reflectance)]
}
