package uvvis

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/uvvis-go/internal/logging"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/optics"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/parser"
	"go.uber.org/zap"
)

// Analyze reads the T/R table at path and derives optical quantities for
// every valid sample. Only unreadable input or bad options are errors;
// problems with single cells or samples end up in Report.Diagnostics.
func Analyze(path string, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger().With(zap.String(logging.FieldComponent, "analyze"))

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}

	table, err := parser.ReadTable(path, parser.ReadOptions{Sheet: opts.Sheet, Range: opts.Range})
	if err != nil {
		var pathErr *fs.PathError
		switch {
		case errors.As(err, &pathErr):
			return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
		case errors.Is(err, parser.ErrUnsupportedFormat):
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	log.Debug("table read",
		zap.String(logging.FieldFile, table.Source),
		zap.Int("rows", table.NumRows()))

	return AnalyzeTable(table, opts), nil
}

// AnalyzeTable runs parsing and calculation on an already loaded table.
// opts must have been validated.
func AnalyzeTable(table *models.RawTable, opts Options) *models.Report {
	log := opts.logger().With(zap.String(logging.FieldComponent, "analyze"))

	parsed := parser.Parse(table, opts.HeaderMode)
	log.Debug("header interpreted",
		zap.String("mode", string(parsed.Mode)),
		zap.Int("columns", len(parsed.Columns)),
		zap.Strings("samples", parsed.Samples))

	batch := optics.NewCalculator(opts.Thickness).Run(parsed.Samples, parsed.Series)

	report := &models.Report{
		Source:      table.Source,
		HeaderMode:  string(parsed.Mode),
		Unit:        opts.Unit,
		Thickness:   opts.Thickness,
		Samples:     parsed.Samples,
		Analyzed:    batch.Analyzed,
		Results:     batch.Results,
		Series:      parsed.Series,
		Diagnostics: parsed.Diagnostics,
	}
	if report.Samples == nil {
		report.Samples = []string{}
	}
	for _, f := range batch.Failures() {
		report.Diagnostics = append(report.Diagnostics, f.Diagnostic())
	}

	if len(report.Analyzed) == 0 {
		report.Diagnostics = append(report.Diagnostics, models.Diagnostic{
			Severity: models.SeverityWarning,
			Reason:   models.ReasonNoSamples,
			Message:  "no samples analyzed",
		})
	}

	for _, d := range report.Diagnostics {
		logDiagnostic(log, d)
	}
	if len(report.Analyzed) > 0 {
		log.Info("Analysed samples: " + strings.Join(report.Analyzed, ", "))
	}

	return report
}

func logDiagnostic(log *zap.Logger, d models.Diagnostic) {
	fields := []zap.Field{zap.String(logging.FieldReason, string(d.Reason))}
	if d.Sample != "" {
		fields = append(fields, zap.String(logging.FieldSample, d.Sample))
	}
	log.Warn(d.String(), fields...)
}
