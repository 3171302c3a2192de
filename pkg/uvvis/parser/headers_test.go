package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/uvvis-go/pkg/uvvis/models"
)

func table(rows ...[]string) *models.RawTable {
	return &models.RawTable{Source: "test.csv", Rows: rows}
}

func TestMarkerKind(t *testing.T) {
	tests := []struct {
		cell     string
		expected models.Kind
		ok       bool
	}{
		{"%T", models.Transmittance, true},
		{"%R", models.Reflectance, true},
		{"T", models.Transmittance, true},
		{" %R ", models.Reflectance, true},
		{"Abs", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		kind, ok := markerKind(tt.cell)
		if kind != tt.expected || ok != tt.ok {
			t.Errorf("markerKind(%q) = %q, %v, expected %q, %v", tt.cell, kind, ok, tt.expected, tt.ok)
		}
	}
}

func TestResolveMode(t *testing.T) {
	marked := table([]string{"A", "", "A", ""}, []string{"", "%T", "", "%R"})
	bare := table([]string{"A", "", "A", ""}, []string{"400", "50", "400", "10"})

	tests := []struct {
		table    *models.RawTable
		mode     HeaderMode
		expected HeaderMode
	}{
		{marked, HeaderAuto, HeaderMarker},
		{marked, "", HeaderMarker},
		{bare, HeaderAuto, HeaderPositional},
		{bare, HeaderMarker, HeaderMarker},
		{marked, HeaderPositional, HeaderPositional},
	}

	for i, tt := range tests {
		if got := ResolveMode(tt.table, tt.mode); got != tt.expected {
			t.Errorf("case %d: ResolveMode(%q) = %q, expected %q", i, tt.mode, got, tt.expected)
		}
	}
}

func TestDetectMarked(t *testing.T) {
	tbl := table(
		[]string{"Baseline", "", "Film1", "", "Film1", "", "Odd", ""},
		[]string{"", "%T", "", "%T", "", "%R", "", "Abs"},
	)

	columns, diags := DetectColumns(tbl, HeaderMarker)

	expected := []models.MeasurementColumn{
		{Name: "Baseline", Kind: models.Transmittance, Index: 0},
		{Name: "Film1", Kind: models.Transmittance, Index: 2},
		{Name: "Film1", Kind: models.Reflectance, Index: 4},
	}
	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Expected %+v, got %+v", expected, columns)
	}
	if len(diags) != 1 || diags[0].Reason != models.ReasonUnknownMarker {
		t.Errorf("Expected one unknown_marker diagnostic, got %+v", diags)
	}
}

func TestDetectPositional(t *testing.T) {
	tbl := table([]string{
		"Baseline 100%", "", "Baseline 0%", "", "Film1", "", "Film2", "",
		"Baseline 100%", "", "Baseline 0%", "", "Film1", "", "Film2", "",
	})

	columns, diags := DetectColumns(tbl, HeaderPositional)
	if len(diags) != 0 {
		t.Errorf("Expected no diagnostics, got %+v", diags)
	}
	if len(columns) != 8 {
		t.Fatalf("Expected 8 columns, got %d", len(columns))
	}
	for i, c := range columns {
		expected := models.Transmittance
		if i >= 4 {
			expected = models.Reflectance
		}
		if c.Kind != expected {
			t.Errorf("column %d (%s) kind = %s, expected %s", i, c.Name, c.Kind, expected)
		}
	}
}

func TestDetectPositionalSingleSample(t *testing.T) {
	tbl := table([]string{"Baseline", "", "Film1", "", "Baseline", "", "Film1", ""})

	columns, diags := DetectColumns(tbl, HeaderPositional)
	if len(diags) != 0 {
		t.Errorf("Expected no diagnostics, got %+v", diags)
	}
	if columns[1].Kind != models.Transmittance || columns[3].Kind != models.Reflectance {
		t.Errorf("Unexpected kinds %+v", columns)
	}
}

func TestDetectPositionalAmbiguous(t *testing.T) {
	tbl := table([]string{
		"Baseline", "", "A", "", "Baseline", "", "A", "", "Baseline", "", "A", "",
	})

	columns, diags := DetectColumns(tbl, HeaderPositional)
	if len(diags) != 1 || diags[0].Reason != models.ReasonAmbiguousBoundary {
		t.Fatalf("Expected ambiguous_boundary diagnostic, got %+v", diags)
	}
	// First candidate wins
	if columns[2].Kind != models.Reflectance || columns[1].Kind != models.Transmittance {
		t.Errorf("Expected boundary at the first candidate, got %+v", columns)
	}
}

func TestDetectPositionalMissing(t *testing.T) {
	tbl := table([]string{"Film1", "", "Film2", ""})

	columns, diags := DetectColumns(tbl, HeaderPositional)
	if len(diags) != 1 || diags[0].Reason != models.ReasonMissingBoundary {
		t.Fatalf("Expected missing_boundary diagnostic, got %+v", diags)
	}
	for _, c := range columns {
		if c.Kind != models.Transmittance {
			t.Errorf("Expected all transmittance, got %+v", c)
		}
	}
}
