package output

import (
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

// ParquetName is the file name of the parquet export.
const ParquetName = "analysis.parquet"

// PointRow is one analysed point in long format.
type PointRow struct {
	Sample        string   `parquet:"sample,dict"`
	Wavelength    float64  `parquet:"wavelength_nm"`
	Energy        float64  `parquet:"energy_ev"`
	Transmittance float64  `parquet:"transmittance"`
	Reflectance   float64  `parquet:"reflectance"`
	Absorptance   float64  `parquet:"absorptance"`
	Absorbance    float64  `parquet:"absorbance"`
	Alpha         *float64 `parquet:"alpha"`
}

// PointRows flattens the analysed samples of report, sample by sample.
func PointRows(report *models.Report) []PointRow {
	var rows []PointRow
	for _, r := range report.AnalyzedResults() {
		for i := 0; i < r.Len(); i++ {
			row := PointRow{
				Sample:        r.Sample,
				Wavelength:    r.Wavelength[i],
				Energy:        r.Energy[i],
				Transmittance: r.Transmittance[i],
				Reflectance:   r.Reflectance[i],
				Absorptance:   r.Absorptance[i],
				Absorbance:    r.Absorbance[i],
			}
			if r.HasAlpha() {
				a := r.Alpha[i]
				row.Alpha = &a
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteParquet writes dir/analysis.parquet and returns the path.
func WriteParquet(report *models.Report, dir string) (string, error) {
	path := filepath.Join(dir, ParquetName)
	if err := parquet.WriteFile(path, PointRows(report)); err != nil {
		return "", err
	}
	return path, nil
}
