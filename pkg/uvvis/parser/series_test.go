package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

func TestParseMarked(t *testing.T) {
	tbl := table(
		[]string{"Baseline", "", "Film1", "", "Film2", "", "Film1", "", "Film2", ""},
		[]string{"", "%T", "", "%T", "", "%T", "", "%R", "", "%R"},
		[]string{"400", "100", "400", "50", "400", "40", "400", "10", "400", "12"},
		[]string{"500", "100", "500", "60", "500", "x", "500", "10", "500", "12"},
		[]string{"600", "100", "600", "70", "", "", "600", "10"},
	)

	parsed := Parse(tbl, HeaderAuto)

	if parsed.Mode != HeaderMarker {
		t.Errorf("Expected marker mode, got %s", parsed.Mode)
	}
	if !reflect.DeepEqual(parsed.Samples, []string{"Film1", "Film2"}) {
		t.Errorf("Expected samples [Film1 Film2], got %v", parsed.Samples)
	}

	film1T := parsed.Series["Film1_T"]
	expected := models.SpectralSeries{{Wavelength: 400, Value: 50}, {Wavelength: 500, Value: 60}, {Wavelength: 600, Value: 70}}
	if !reflect.DeepEqual(film1T, expected) {
		t.Errorf("Film1_T = %v, expected %v", film1T, expected)
	}

	// Non-numeric and missing cells are skipped
	if got := len(parsed.Series["Film2_T"]); got != 1 {
		t.Errorf("Expected 1 point for Film2_T, got %d", got)
	}
	if got := len(parsed.Series["Film2_R"]); got != 2 {
		t.Errorf("Expected 2 points for Film2_R, got %d", got)
	}
	if got := len(parsed.Series["Baseline_T"]); got != 3 {
		t.Errorf("Expected baseline series to be kept, got %d points", got)
	}
}

func TestParsePositional(t *testing.T) {
	tbl := table(
		[]string{"Baseline", "", "Film1", "", "Baseline", "", "Film1", ""},
		[]string{"400", "100", "400", "50", "400", "0", "400", "10"},
		[]string{"500", "100", "500", "60", "500", "0", "500", "10"},
	)

	parsed := Parse(tbl, HeaderAuto)

	if parsed.Mode != HeaderPositional {
		t.Errorf("Expected positional mode, got %s", parsed.Mode)
	}
	if !reflect.DeepEqual(parsed.Samples, []string{"Film1"}) {
		t.Errorf("Expected samples [Film1], got %v", parsed.Samples)
	}
	if got := parsed.Series.Reflectance("Film1").Wavelengths(); !reflect.DeepEqual(got, []float64{400, 500}) {
		t.Errorf("Unexpected Film1_R wavelengths %v", got)
	}
}

func TestParseDuplicateColumns(t *testing.T) {
	tbl := table(
		[]string{"Film1", "", "Film1", ""},
		[]string{"", "%T", "", "%T"},
		[]string{"400", "50", "400", "99"},
	)

	parsed := Parse(tbl, HeaderMarker)

	if len(parsed.Diagnostics) != 1 || parsed.Diagnostics[0].Reason != models.ReasonDuplicateColumn {
		t.Fatalf("Expected duplicate_column diagnostic, got %+v", parsed.Diagnostics)
	}
	if v := parsed.Series["Film1_T"][0].Value; v != 50 {
		t.Errorf("Expected first column to win, got value %v", v)
	}
}

func TestParseEmpty(t *testing.T) {
	parsed := Parse(table(), HeaderAuto)
	if len(parsed.Samples) != 0 {
		t.Errorf("Expected no samples, got %v", parsed.Samples)
	}

	parsed = Parse(table([]string{"", "", ""}, []string{"1", "2"}), HeaderMarker)
	if len(parsed.Samples) != 0 || len(parsed.Series) != 0 {
		t.Errorf("Expected nothing recognised, got %+v", parsed)
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		x, y     string
		expected models.Point
		ok       bool
	}{
		{"400", "50", models.Point{Wavelength: 400, Value: 50}, true},
		{" 400.5 ", "1e1", models.Point{Wavelength: 400.5, Value: 10}, true},
		{"400", "", models.Point{}, false},
		{"nm", "50", models.Point{}, false},
	}

	for _, tt := range tests {
		p, ok := parsePoint(tt.x, tt.y)
		if p != tt.expected || ok != tt.ok {
			t.Errorf("parsePoint(%q, %q) = %v, %v, expected %v, %v", tt.x, tt.y, p, ok, tt.expected, tt.ok)
		}
	}
}
