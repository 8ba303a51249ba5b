package stlprobe

import (
	"math"
	"testing"
)

func TestAnalyzeSlicePointThreshold(t *testing.T) {
	var verts []Point3
	for i := 0; i < 9; i++ {
		verts = append(verts, Point3{float64(i), float64(i % 3), 0})
	}
	if res := AnalyzeSlice(verts, 0, DefaultSliceTolerance); res != nil {
		t.Fatalf("expected no result for 9 points but got %+v", res)
	}
	verts = append(verts, Point3{4, 4, 0.2})
	res := AnalyzeSlice(verts, 0, DefaultSliceTolerance)
	if res == nil {
		t.Fatal("expected a result for 10 points")
	}
	if res.Points != 10 {
		t.Fatalf("expected 10 points but got %d", res.Points)
	}
}

func TestAnalyzeSliceCircle(t *testing.T) {
	var verts []Point3
	for i := 0; i < 36; i++ {
		theta := 2 * math.Pi * float64(i) / 36
		verts = append(verts, Point3{
			X: 3 + 10*math.Cos(theta),
			Y: 4 + 10*math.Sin(theta),
			Z: 0,
		})
	}
	res := AnalyzeSlice(verts, 0, DefaultSliceTolerance)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Shape != ShapeCircular {
		t.Errorf("expected %q but got %q (variation=%f)", ShapeCircular, res.Shape, res.Variation)
	}
	if math.Abs(res.MeanRadius-10) > 1e-6 {
		t.Errorf("expected mean radius 10 but got %f", res.MeanRadius)
	}
	if math.Abs(res.CenterX-3) > 1e-6 || math.Abs(res.CenterY-4) > 1e-6 {
		t.Errorf("expected center (3, 4) but got (%f, %f)", res.CenterX, res.CenterY)
	}
}

func TestAnalyzeSliceOval(t *testing.T) {
	var verts []Point3
	for i := 0; i < 36; i++ {
		theta := 2 * math.Pi * float64(i) / 36
		verts = append(verts, Point3{
			X: 10 * math.Cos(theta),
			Y: 6 * math.Sin(theta),
			Z: 0,
		})
	}
	res := AnalyzeSlice(verts, 0, DefaultSliceTolerance)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Shape != ShapeOval {
		t.Errorf("expected %q but got %q (variation=%f)", ShapeOval, res.Shape, res.Variation)
	}
}

func TestAnalyzeSliceIrregular(t *testing.T) {
	// A straight line of points: radial distances from the midpoint range
	// from 0 to half the length, so the variation coefficient is large.
	var verts []Point3
	for i := 0; i <= 10; i++ {
		verts = append(verts, Point3{float64(i * 2), 0, 0})
	}
	res := AnalyzeSlice(verts, 0, DefaultSliceTolerance)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Shape != ShapeIrregular {
		t.Errorf("expected %q but got %q (variation=%f)", ShapeIrregular, res.Shape, res.Variation)
	}
	if res.Variation < 0.25 {
		t.Errorf("expected variation >= 0.25 but got %f", res.Variation)
	}
}

func TestSliceLevels(t *testing.T) {
	levels := SliceLevels(0, 10)
	expected := []float64{0, 1, 2.5, 5, 7.5, 9, 10}
	if len(levels) != len(expected) {
		t.Fatalf("expected %v but got %v", expected, levels)
	}
	for i, z := range expected {
		if math.Abs(levels[i]-z) > 1e-9 {
			t.Fatalf("expected %v but got %v", expected, levels)
		}
	}
}

func TestSliceLevelsDedup(t *testing.T) {
	levels := SliceLevels(5, 5)
	if len(levels) != 1 || levels[0] != 5 {
		t.Fatalf("expected [5] but got %v", levels)
	}
}
