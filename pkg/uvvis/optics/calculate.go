package optics

import (
	"fmt"
	"math"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/parser"
	"gonum.org/v1/gonum/floats"
)

// NmPerCm converts a thickness in nm to cm.
const NmPerCm = 1e-7

const (
	msgMismatch     = "T and R measurements are missing or don't match up - check your data."
	msgInvalidValue = "Invalid value encountered in calculations - check your data."
)

// Failure explains why a sample was not analysed.
type Failure struct {
	Sample  string
	Reason  models.Reason
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("Sample %s: %s", f.Sample, f.Message)
}

// Diagnostic converts the failure into a report diagnostic.
func (f *Failure) Diagnostic() models.Diagnostic {
	return models.Diagnostic{
		Severity: models.SeverityError,
		Sample:   f.Sample,
		Reason:   f.Reason,
		Message:  f.Message,
	}
}

// Outcome is the result of analysing one sample. Exactly one of Result and
// Failure is set.
type Outcome struct {
	Sample  string
	Result  *models.AnalysisResult
	Failure *Failure
}

// OK reports whether the sample was analysed.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

// Batch holds the outcomes of a run.
type Batch struct {
	// Outcomes has one entry per input sample, in input order.
	Outcomes []Outcome
	// Analyzed lists successful samples in input order.
	Analyzed []string
	// Results maps successful samples to their results.
	Results map[string]*models.AnalysisResult
}

// Failures returns the failed outcomes in input order.
func (b *Batch) Failures() []*Failure {
	var out []*Failure
	for _, o := range b.Outcomes {
		if o.Failure != nil {
			out = append(out, o.Failure)
		}
	}
	return out
}

// Calculator derives optical quantities for samples.
type Calculator struct {
	thickness *float64
}

// NewCalculator creates a calculator. A nil thickness skips the absorption
// coefficient.
func NewCalculator(thickness *float64) *Calculator {
	return &Calculator{thickness: thickness}
}

// Run analyses every sample in order. It never fails as a whole: samples that
// cannot be analysed are reported in their Outcome.
func (c *Calculator) Run(samples []string, series models.SeriesMap) *Batch {
	batch := &Batch{
		Outcomes: make([]Outcome, 0, len(samples)),
		Analyzed: []string{},
		Results:  make(map[string]*models.AnalysisResult, len(samples)),
	}

	for _, s := range samples {
		o := c.Analyze(s, series.Transmittance(s), series.Reflectance(s))
		batch.Outcomes = append(batch.Outcomes, o)
		if o.OK() {
			batch.Analyzed = append(batch.Analyzed, s)
			batch.Results[s] = o.Result
		}
	}

	return batch
}

// Analyze computes the result for one sample from its T and R series.
func (c *Calculator) Analyze(sample string, t, r models.SpectralSeries) Outcome {
	wavelength := t.Wavelengths()
	if len(t) == 0 || !floats.Equal(wavelength, r.Wavelengths()) {
		return fail(sample, models.ReasonMismatch, msgMismatch)
	}

	n := len(wavelength)
	energy := make([]float64, n)
	for i, wl := range wavelength {
		energy[i] = parser.WavelengthToEnergy(wl)
	}

	trans := t.Values()
	floats.Scale(1/parser.PercentScale, trans)
	refl := r.Values()
	floats.Scale(1/parser.PercentScale, refl)

	// T + R
	sum := floats.AddTo(make([]float64, n), trans, refl)

	absorptance := make([]float64, n)
	absorbance := make([]float64, n)
	for i := range sum {
		absorptance[i] = 1 - sum[i]
		absorbance[i] = -math.Log(sum[i])
	}

	var alpha []float64
	if c.thickness != nil {
		alpha = make([]float64, n)
		floats.ScaleTo(alpha, 1/(*c.thickness*NmPerCm), absorbance)
	}

	if !allFinite(energy, absorptance, absorbance, alpha) {
		return fail(sample, models.ReasonInvalidValue, msgInvalidValue)
	}

	return Outcome{
		Sample: sample,
		Result: &models.AnalysisResult{
			Sample:        sample,
			Wavelength:    wavelength,
			Energy:        energy,
			Transmittance: trans,
			Reflectance:   refl,
			Absorptance:   absorptance,
			Absorbance:    absorbance,
			Alpha:         alpha,
		},
	}
}

func fail(sample string, reason models.Reason, msg string) Outcome {
	return Outcome{
		Sample:  sample,
		Failure: &Failure{Sample: sample, Reason: reason, Message: msg},
	}
}

// allFinite reports whether no slice holds NaN or ±Inf.
func allFinite(vs ...[]float64) bool {
	for _, v := range vs {
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
	}
	return true
}
