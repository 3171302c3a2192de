package uvvis

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/uvvis-go/internal/logging"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/output"
	"go.uber.org/zap"
)

// ExportOptions selects which outputs Export writes.
// The per-quantity csv files are always written.
type ExportOptions struct {
	Plots   bool
	XLSX    bool
	Parquet bool
	Summary bool
	Logger  *zap.Logger
}

// DefaultExportOptions writes csv files and plots.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{Plots: true}
}

func (o ExportOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// OutputDir returns the default output directory for an input file:
// <input dir>/<input stem>_processed.
func OutputDir(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(inputPath), stem+"_processed")
}

// Export writes the results of report to dir, creating it when needed.
// It returns the written paths. When no sample was analysed nothing is
// written. The first failing write aborts the export.
func Export(report *models.Report, dir string, opts ExportOptions) ([]string, error) {
	log := opts.logger().With(zap.String(logging.FieldComponent, "export"))

	if len(report.Analyzed) == 0 {
		log.Warn("no samples analyzed, nothing to export")
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, NewExportError(dir, "dir", err)
	}

	var paths []string
	for _, q := range output.Quantities(report) {
		path, err := output.WriteCSV(output.BuildTable(report, q), dir, q.Name)
		if err != nil {
			return paths, NewExportError(filepath.Join(dir, q.Name+".csv"), "csv", err)
		}
		paths = append(paths, path)
	}

	if opts.XLSX {
		path, err := output.WriteXLSX(report, dir)
		if err != nil {
			return paths, NewExportError(filepath.Join(dir, output.WorkbookName), "xlsx", err)
		}
		paths = append(paths, path)
	}

	if opts.Parquet {
		path, err := output.WriteParquet(report, dir)
		if err != nil {
			return paths, NewExportError(filepath.Join(dir, output.ParquetName), "parquet", err)
		}
		paths = append(paths, path)
	}

	if opts.Summary {
		path, err := output.WriteSummary(report, dir)
		if err != nil {
			return paths, NewExportError(filepath.Join(dir, output.SummaryName), "json", err)
		}
		paths = append(paths, path)
	}

	if opts.Plots {
		indvDir := filepath.Join(dir, output.IndividualDir)
		if err := os.MkdirAll(indvDir, 0755); err != nil {
			return paths, NewExportError(indvDir, "dir", err)
		}
		plots, err := output.PlotAll(report, dir)
		paths = append(paths, plots...)
		if err != nil {
			return paths, NewExportError(dir, "png", err)
		}
	}

	for _, p := range paths {
		log.Debug("written", zap.String(logging.FieldPath, p))
	}
	log.Info("export complete", zap.Int("files", len(paths)), zap.String(logging.FieldPath, dir))
	return paths, nil
}
