package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

// SummaryName is the file name of the json summary.
const SummaryName = "summary.json"

// SampleSummary describes one analysed sample.
type SampleSummary struct {
	Sample          string  `json:"sample"`
	Points          int     `json:"points"`
	EnergyMin       float64 `json:"energy_min_ev"`
	EnergyMax       float64 `json:"energy_max_ev"`
	MeanAbsorptance float64 `json:"mean_absorptance"`
	MaxAbsorptance  float64 `json:"max_absorptance"`
	MeanAbsorbance  float64 `json:"mean_absorbance"`
	// PeakAbsorbanceEnergy is the energy of the largest absorbance.
	PeakAbsorbanceEnergy float64 `json:"peak_absorbance_energy_ev"`
}

// Summary is the json document written next to the exports.
type Summary struct {
	*models.Report
	SampleStats []SampleSummary `json:"sample_stats"`
}

// Summarize computes per-sample statistics for the analysed samples.
func Summarize(report *models.Report) (*Summary, error) {
	s := &Summary{Report: report, SampleStats: []SampleSummary{}}
	for _, r := range report.AnalyzedResults() {
		ss, err := summarizeResult(r)
		if err != nil {
			return nil, err
		}
		s.SampleStats = append(s.SampleStats, ss)
	}
	return s, nil
}

func summarizeResult(r *models.AnalysisResult) (SampleSummary, error) {
	ss := SampleSummary{Sample: r.Sample, Points: r.Len()}

	var err error
	if ss.EnergyMin, err = stats.Min(r.Energy); err != nil {
		return ss, err
	}
	if ss.EnergyMax, err = stats.Max(r.Energy); err != nil {
		return ss, err
	}
	if ss.MeanAbsorptance, err = stats.Mean(r.Absorptance); err != nil {
		return ss, err
	}
	if ss.MaxAbsorptance, err = stats.Max(r.Absorptance); err != nil {
		return ss, err
	}
	if ss.MeanAbsorbance, err = stats.Mean(r.Absorbance); err != nil {
		return ss, err
	}

	peak := 0
	for i, v := range r.Absorbance {
		if v > r.Absorbance[peak] {
			peak = i
		}
	}
	ss.PeakAbsorbanceEnergy = r.Energy[peak]
	return ss, nil
}

// ToJSON serializes the summary.
func ToJSON(s *Summary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// WriteSummary writes dir/summary.json and returns the path.
func WriteSummary(report *models.Report, dir string) (string, error) {
	s, err := Summarize(report)
	if err != nil {
		return "", err
	}
	data, err := ToJSON(s, true)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, SummaryName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
