// Package optics derives optical quantities from aligned transmittance and
// reflectance series.
//
// For every sample with identical T and R wavelength grids it computes:
//
//   - Energy: 1240 / λ (eV)
//   - Absorptance: 1 - T - R
//   - Absorbance: -ln(T + R)
//   - Absorption coefficient: absorbance / (thickness[nm] * 1e-7) in cm^-1
//
// T and R are stored as percentages and normalised to fractions first.
// Values outside [0, 1] are passed through unchanged.
//
// # Usage
//
//	calc := optics.NewCalculator(&thickness)
//	batch := calc.Run(parsed.Samples, parsed.Series)
//	for _, o := range batch.Outcomes {
//		if o.Failure != nil {
//			fmt.Println(o.Failure)
//		}
//	}
package optics
