package models

// Unit is the display unit of the x axis in exports and plots.
type Unit string

const (
	// UnitEV shows photon energy in eV.
	UnitEV Unit = "eV"
	// UnitNM shows wavelength in nm.
	UnitNM Unit = "nm"
)

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == UnitEV || u == UnitNM
}

// XValues returns the x axis values of r in unit u. For nm the measured
// wavelength is returned as stored rather than re-derived from energy.
func (u Unit) XValues(r *AnalysisResult) []float64 {
	if u == UnitNM {
		return r.Wavelength
	}
	return r.Energy
}

// AxisLabel returns the plot axis label for u.
func (u Unit) AxisLabel() string {
	if u == UnitNM {
		return "Wavelength (nm)"
	}
	return "Energy (eV)"
}
