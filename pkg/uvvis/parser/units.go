// Package parser turns raw transmittance/reflectance tables into spectral series.
package parser

// HC is Planck's constant times the speed of light in eV·nm.
// E[eV] = HC / λ[nm].
const HC = 1240.0

// PercentScale converts stored percentages to fractions.
const PercentScale = 100.0

// WavelengthToEnergy converts a wavelength in nm to photon energy in eV.
func WavelengthToEnergy(nm float64) float64 {
	return HC / nm
}

// EnergyToWavelength converts a photon energy in eV back to nm.
// It is the exact inverse of WavelengthToEnergy up to rounding.
func EnergyToWavelength(ev float64) float64 {
	return HC / ev
}
