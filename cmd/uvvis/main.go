// Package main provides the CLI entry point for uvvis-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/uvvis-go/internal/config"
	"github.com/ukaji3/uvvis-go/internal/logging"
	"github.com/ukaji3/uvvis-go/pkg/uvvis"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/parser"
	"go.uber.org/zap"
)

var (
	thickness  float64
	unit       string
	headerMode string
	sheet      string
	cellRange  string
	outputDir  string
	noPlots    bool
	writeXLSX  bool
	writePq    bool
	summary    bool
	logLevel   string
	dev        bool
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := newRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uvvis [input.csv|input.xlsx]",
		Short: "Derive absorptance, absorbance and absorption coefficient from T/R spectra",
		Long: `uvvis reads paired transmittance and reflectance measurements,
computes absorptance, absorbance and (with a film thickness) the absorption
coefficient for every sample, and writes csv exports and plots.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, cfg)
		},
	}

	defaultThickness := 0.0
	if cfg.Thickness != nil {
		defaultThickness = *cfg.Thickness
	}

	rootCmd.Flags().Float64VarP(&thickness, "thickness", "t", defaultThickness, "Film thickness in nm; if unset the absorption coefficient is skipped")
	rootCmd.Flags().StringVar(&unit, "unit", cfg.Unit, "Energy display unit: eV or nm")
	rootCmd.Flags().StringVar(&headerMode, "header", cfg.HeaderMode, "Header interpretation: auto, marker, positional")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from an xlsx input (default: first sheet)")
	rootCmd.Flags().StringVar(&cellRange, "range", "", "Cell range to read from an xlsx input, e.g. A1:H200")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", cfg.OutputDir, "Output directory (default: <input dir>/<input name>_processed)")
	rootCmd.Flags().BoolVar(&noPlots, "no-plots", false, "Skip png plots")
	rootCmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "Also write analysis.xlsx")
	rootCmd.Flags().BoolVar(&writePq, "parquet", false, "Also write analysis.parquet")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Also write summary.json")
	rootCmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&dev, "dev", true, "Human readable log output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, cfg config.Config) error {
	inputPath := args[0]

	log, err := logging.New(
		logging.WithLevel(logLevel),
		logging.WithDevelopment(dev),
		logging.WithFields(map[string]interface{}{logging.FieldSource: inputPath}),
	)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer log.Sync()

	// Parse unit
	var displayUnit models.Unit
	switch strings.ToLower(unit) {
	case "ev":
		displayUnit = models.UnitEV
	case "nm":
		displayUnit = models.UnitNM
	default:
		return fmt.Errorf("invalid unit: %s (must be eV or nm)", unit)
	}

	opts := uvvis.Options{
		Unit:       displayUnit,
		HeaderMode: parser.HeaderMode(strings.ToLower(headerMode)),
		Sheet:      sheet,
		Range:      cellRange,
		Logger:     log,
	}

	// Thickness from flag, else from the environment
	if cmd.Flags().Changed("thickness") {
		t := thickness
		opts.Thickness = &t
	} else if cfg.Thickness != nil {
		t := *cfg.Thickness
		opts.Thickness = &t
	}

	report, err := uvvis.Analyze(inputPath, opts)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return fmt.Errorf("analysis failed: %w", err)
	}

	dir := outputDir
	if dir == "" {
		dir = uvvis.OutputDir(inputPath)
	}

	exportOpts := uvvis.DefaultExportOptions()
	exportOpts.Plots = !noPlots
	exportOpts.XLSX = writeXLSX
	exportOpts.Parquet = writePq
	exportOpts.Summary = summary
	exportOpts.Logger = log

	paths, err := uvvis.Export(report, dir, exportOpts)
	if err != nil {
		log.Error("export failed", zap.Error(err))
		return fmt.Errorf("export failed: %w", err)
	}

	if len(report.Analyzed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no samples analyzed")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Analysed samples: %s\n", strings.Join(report.Analyzed, ", "))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(paths), dir)
	return nil
}
