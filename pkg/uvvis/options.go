// Package uvvis analyses paired transmittance and reflectance spectra.
package uvvis

import (
	"fmt"
	"math"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/parser"
	"go.uber.org/zap"
)

// Options configures an analysis run.
type Options struct {
	// Thickness is the film thickness in nm.
	// If nil, the absorption coefficient is not computed.
	Thickness *float64
	// Unit selects the x axis of exports and plots (eV or nm).
	Unit models.Unit
	// HeaderMode selects how T/R columns are identified.
	HeaderMode parser.HeaderMode
	// Sheet selects the worksheet of an xlsx input.
	Sheet string
	// Range restricts an xlsx input to a cell range.
	Range string
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Unit:       models.UnitEV,
		HeaderMode: parser.HeaderAuto,
	}
}

// Validate checks the options and fills in defaults for empty fields.
func (o *Options) Validate() error {
	if o.Unit == "" {
		o.Unit = models.UnitEV
	}
	if o.HeaderMode == "" {
		o.HeaderMode = parser.HeaderAuto
	}
	if !o.Unit.Valid() {
		return fmt.Errorf("%w: unit %q (must be eV or nm)", ErrInvalidOptions, o.Unit)
	}
	if !o.HeaderMode.Valid() {
		return fmt.Errorf("%w: header mode %q (must be auto, marker or positional)", ErrInvalidOptions, o.HeaderMode)
	}
	if o.Thickness != nil {
		t := *o.Thickness
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return fmt.Errorf("%w: thickness must be a positive number of nm, got %v", ErrInvalidOptions, t)
		}
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
