package models

// AnalysisResult holds the derived optical quantities of one sample.
// All slices are positionally aligned with Wavelength.
type AnalysisResult struct {
	Sample string `json:"sample"`
	// Wavelength is the measured wavelength in nm.
	Wavelength []float64 `json:"wavelength_nm"`
	// Energy is the photon energy in eV (1240 / wavelength).
	Energy []float64 `json:"energy_ev"`
	// Transmittance and Reflectance are fractions (percent / 100).
	Transmittance []float64 `json:"transmittance"`
	Reflectance   []float64 `json:"reflectance"`
	// Absorptance is 1 - T - R.
	Absorptance []float64 `json:"absorptance"`
	// Absorbance is -ln(T + R).
	Absorbance []float64 `json:"absorbance"`
	// Alpha is the absorption coefficient in cm^-1, nil without a thickness.
	Alpha []float64 `json:"alpha,omitempty"`
}

// Len returns the number of points.
func (r *AnalysisResult) Len() int {
	return len(r.Energy)
}

// HasAlpha reports whether the absorption coefficient was computed.
func (r *AnalysisResult) HasAlpha() bool {
	return r.Alpha != nil
}
