package output

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// PlotDPI is the resolution of every png.
	PlotDPI = 300
	// IndividualDir is the subdirectory holding per-sample T/R plots.
	IndividualDir = "T_R_indv_plots"

	plotWidth  = 6.4 * vg.Inch
	plotHeight = 4.8 * vg.Inch
)

// ErrNoData is returned when a combined plot has nothing to draw.
var ErrNoData = errors.New("no samples analyzed")

// figure is the drawing context of a single image. A figure is created,
// filled, saved and dropped; nothing is shared between images.
type figure struct {
	p     *plot.Plot
	lines int
}

func newFigure(xLabel, yLabel string) *figure {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return &figure{p: p}
}

// addLine adds a labelled line. Points that are not finite or, on a log
// axis, not positive are dropped.
func (f *figure) addLine(label string, xs, ys []float64) error {
	pts := make(plotter.XYs, 0, len(xs))
	_, logY := f.p.Y.Scale.(plot.LogScale)
	for i := range xs {
		if i >= len(ys) || !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		if logY && ys[i] <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(pts) == 0 {
		return nil
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line %s: %w", label, err)
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Color = plotutil.Color(f.lines)
	f.p.Add(l)
	f.p.Legend.Add(label, l)
	f.lines++
	return nil
}

// save renders the figure to a png at PlotDPI.
func (f *figure) save(path string) error {
	c := vgimg.NewWith(vgimg.UseWH(plotWidth, plotHeight), vgimg.UseDPI(PlotDPI))
	f.p.Draw(draw.New(c))

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// AxisRange returns the smallest and largest x value over all analysed
// samples. It returns ErrNoData when there is nothing to plot.
func AxisRange(report *models.Report) (float64, float64, error) {
	var xs []float64
	for _, r := range report.AnalyzedResults() {
		xs = append(xs, report.Unit.XValues(r)...)
	}
	lo, err := stats.Min(xs)
	if err != nil {
		return 0, 0, ErrNoData
	}
	hi, err := stats.Max(xs)
	if err != nil {
		return 0, 0, ErrNoData
	}
	return lo, hi, nil
}

// PlotSample writes the T/R overlay of one sample and returns the path.
func PlotSample(report *models.Report, r *models.AnalysisResult, dir string) (string, error) {
	f := newFigure(report.Unit.AxisLabel(), "Transmittance / Reflectance")
	xs := report.Unit.XValues(r)
	if err := f.addLine("transmittance", xs, r.Transmittance); err != nil {
		return "", err
	}
	if err := f.addLine("reflectance", xs, r.Reflectance); err != nil {
		return "", err
	}
	setRange(&f.p.X, xs)
	f.p.Y.Min, f.p.Y.Max = 0, 1

	path := filepath.Join(dir, SampleFileName(r.Sample)+".png")
	return path, f.save(path)
}

// Names of the combined T/R plots that share IndividualDir with the
// per-sample plots.
const (
	allTransmittanceName = "all_transmittance"
	allReflectanceName   = "all_reflectance"
)

// SampleFileName turns a sample name into a file stem inside
// IndividualDir. Path separators become '_' and names that would clash
// with the combined plots get a "_sample" suffix.
func SampleFileName(sample string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, sample)
	switch name {
	case "", ".", "..":
		return "_" + name
	case allTransmittanceName, allReflectanceName:
		return name + "_sample"
	}
	return name
}

// PlotCombined overlays one series per analysed sample and returns the path.
// yMin and yMax are applied when not nil.
func PlotCombined(report *models.Report, yLabel, path string, values func(*models.AnalysisResult) []float64, logY bool, yMin, yMax *float64) (string, error) {
	lo, hi, err := AxisRange(report)
	if err != nil {
		return "", err
	}

	f := newFigure(report.Unit.AxisLabel(), yLabel)
	if logY {
		f.p.Y.Scale = plot.LogScale{}
		f.p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	for _, r := range report.AnalyzedResults() {
		if err := f.addLine(r.Sample, report.Unit.XValues(r), values(r)); err != nil {
			return "", err
		}
	}
	if f.lines == 0 {
		return "", ErrNoData
	}

	f.p.X.Min, f.p.X.Max = lo, hi
	if yMin != nil {
		f.p.Y.Min = *yMin
	}
	if yMax != nil {
		f.p.Y.Max = *yMax
	}
	if f.p.Y.Max <= f.p.Y.Min {
		f.p.Y.Max = f.p.Y.Min + 1
	}

	return path, f.save(path)
}

type combinedPlot struct {
	label  string
	path   string
	values func(*models.AnalysisResult) []float64
	logY   bool
	yMin   *float64
	yMax   *float64
}

func transmittance(r *models.AnalysisResult) []float64 { return r.Transmittance }

func reflectance(r *models.AnalysisResult) []float64 { return r.Reflectance }

// PlotAll writes every plot for report and returns the written paths.
// Per-sample plots go to dir/T_R_indv_plots, which must exist.
func PlotAll(report *models.Report, dir string) ([]string, error) {
	var paths []string
	indvDir := filepath.Join(dir, IndividualDir)

	for _, r := range report.AnalyzedResults() {
		path, err := PlotSample(report, r, indvDir)
		if err != nil {
			return paths, fmt.Errorf("plot %s: %w", r.Sample, err)
		}
		paths = append(paths, path)
	}

	zero, one := 0.0, 1.0
	combined := []combinedPlot{
		{"Transmittance", filepath.Join(indvDir, allTransmittanceName+".png"), transmittance, false, &zero, &one},
		{"Reflectance", filepath.Join(indvDir, allReflectanceName+".png"), reflectance, false, &zero, &one},
		{Absorptance.Label, filepath.Join(dir, Absorptance.Name+".png"), Absorptance.Values, false, &zero, &one},
		{Absorbance.Label, filepath.Join(dir, Absorbance.Name+".png"), Absorbance.Values, false, &zero, nil},
	}
	if report.HasAlpha() {
		combined = append(combined, combinedPlot{Alpha.Label, filepath.Join(dir, Alpha.Name+".png"), Alpha.Values, true, nil, nil})
	}

	for _, c := range combined {
		path, err := PlotCombined(report, c.label, c.path, c.values, c.logY, c.yMin, c.yMax)
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			return paths, fmt.Errorf("plot %s: %w", filepath.Base(c.path), err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func setRange(a *plot.Axis, xs []float64) {
	lo, err := stats.Min(xs)
	if err != nil {
		return
	}
	hi, _ := stats.Max(xs)
	a.Min, a.Max = lo, hi
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
