package stlprobe

import (
	"reflect"
	"testing"
)

func TestRenderCrossSection(t *testing.T) {
	points := []Point2{{0, 0}, {5, 5}}
	lines := RenderCrossSection(points, 2)
	// Grid is 4x4 cells; only the two occupied rows survive.
	expected := []string{
		"  y=   4.0 |  # |",
		"  y=   0.0 |#   |",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("expected %q but got %q", expected, lines)
	}
}

func TestRenderCrossSectionCollapsesCells(t *testing.T) {
	// Many points in one cell produce a single mark.
	points := []Point2{{0, 0}, {0.5, 0.5}, {1, 1}, {1.9, 0.1}}
	lines := RenderCrossSection(points, 2)
	expected := []string{"  y=   0.0 |# |"}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("expected %q but got %q", expected, lines)
	}
}

func TestRenderCrossSectionEmpty(t *testing.T) {
	if lines := RenderCrossSection(nil, 2); lines != nil {
		t.Fatalf("expected no lines but got %q", lines)
	}
}

func TestAsciiTolerance(t *testing.T) {
	if tol := AsciiTolerance(0, 1); tol != 0.25 {
		t.Errorf("expected the 0.25 floor but got %f", tol)
	}
	if tol := AsciiTolerance(0, 100); tol != 3 {
		t.Errorf("expected 3%% of the range but got %f", tol)
	}
}

func TestAsciiLevels(t *testing.T) {
	levels := AsciiLevels(0, 10)
	expected := []float64{0.2, 2.5, 5, 7.5, 9.8}
	if !reflect.DeepEqual(levels, expected) {
		t.Fatalf("expected %v but got %v", expected, levels)
	}
}
