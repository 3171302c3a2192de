package models

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Reason is a machine readable diagnostic code.
type Reason string

const (
	ReasonAmbiguousBoundary Reason = "ambiguous_boundary"
	ReasonMissingBoundary   Reason = "missing_boundary"
	ReasonUnknownMarker     Reason = "unknown_marker"
	ReasonDuplicateColumn   Reason = "duplicate_column"
	ReasonMismatch          Reason = "mismatch"
	ReasonInvalidValue      Reason = "invalid_value"
	ReasonNoSamples         Reason = "no_samples"
)

// Diagnostic is a human readable, non-fatal problem found during a run.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	// Sample is empty for table-level diagnostics.
	Sample  string `json:"sample,omitempty"`
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

// String renders the diagnostic the way it is shown to users.
func (d Diagnostic) String() string {
	if d.Sample == "" {
		return d.Message
	}
	return "Sample " + d.Sample + ": " + d.Message
}

// Report is the outcome of analysing one input file.
type Report struct {
	// Source is the input file name (no path).
	Source string `json:"source"`
	// HeaderMode is the header interpretation actually used.
	HeaderMode string `json:"header_mode"`
	// Unit is the energy display unit.
	Unit Unit `json:"unit"`
	// Thickness is the film thickness in nm, nil when not supplied.
	Thickness *float64 `json:"thickness_nm,omitempty"`
	// Samples lists every discovered sample in input order.
	Samples []string `json:"samples"`
	// Analyzed lists the samples that passed every check, in input order.
	Analyzed []string `json:"analyzed"`
	// Results maps analysed sample names to their results.
	Results map[string]*AnalysisResult `json:"-"`
	// Series is the parsed series map, kept for T/R plots.
	Series SeriesMap `json:"-"`
	// Diagnostics collects warnings from parsing and analysis.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// AnalyzedResults returns the results of analysed samples in input order.
func (r *Report) AnalyzedResults() []*AnalysisResult {
	out := make([]*AnalysisResult, 0, len(r.Analyzed))
	for _, s := range r.Analyzed {
		if res, ok := r.Results[s]; ok {
			out = append(out, res)
		}
	}
	return out
}

// HasAlpha reports whether absorption coefficients were computed.
func (r *Report) HasAlpha() bool {
	return r.Thickness != nil
}
