package stlprobe

import (
	"math"
	"math/rand"
	"testing"
)

func TestComputeBoundsContainsVertices(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	tris := make([]Triangle, 100)
	for i := range tris {
		randPoint := func() Point3 {
			return Point3{r.NormFloat64() * 10, r.NormFloat64() * 10, r.NormFloat64() * 10}
		}
		tris[i] = Triangle{Normal: randPoint(), V1: randPoint(), V2: randPoint(), V3: randPoint()}
	}
	b := ComputeBounds(tris)
	for i := range tris {
		for _, v := range tris[i].Vertices() {
			if v.X < b.MinX || v.X > b.MaxX || v.Y < b.MinY || v.Y > b.MaxY ||
				v.Z < b.MinZ || v.Z > b.MaxZ {
				t.Fatalf("vertex %v outside bounds %v", v, b)
			}
		}
	}
}

func TestClassifyNormalsPartition(t *testing.T) {
	cases := []struct {
		nz     float64
		bucket string
	}{
		{0.95, "top"},
		{1.0, "top"},
		{-0.95, "bottom"},
		{0.05, "vertical"},
		{-0.05, "vertical"},
		{0.0, "vertical"},
		{0.5, "angled"},
		{-0.5, "angled"},
		// Boundary values fall through to angled.
		{0.9, "angled"},
		{-0.9, "angled"},
		{0.1, "angled"},
		{-0.1, "angled"},
	}
	var tris []Triangle
	expected := NormalCounts{}
	for _, c := range cases {
		tris = append(tris, Triangle{Normal: Point3{Z: c.nz}})
		switch c.bucket {
		case "top":
			expected.Top++
		case "bottom":
			expected.Bottom++
		case "vertical":
			expected.Vertical++
		case "angled":
			expected.Angled++
		}
	}
	counts := ClassifyNormals(tris)
	if counts != expected {
		t.Fatalf("expected %+v but got %+v", expected, counts)
	}
	if counts.Total() != len(tris) {
		t.Fatalf("counts sum to %d, not %d", counts.Total(), len(tris))
	}
}

func TestNormalCountsPercentages(t *testing.T) {
	c := NormalCounts{Top: 2, Bottom: 1, Vertical: 3, Angled: 4}
	if p := c.FlatVerticalPercent(); math.Abs(p-60) > 1e-9 {
		t.Errorf("expected 60%% flat/vertical but got %f", p)
	}
	if p := c.CurvedPercent(); math.Abs(p-40) > 1e-9 {
		t.Errorf("expected 40%% curved but got %f", p)
	}
}

func TestZHistogram(t *testing.T) {
	verts := []Point3{
		{Z: 0.04},
		{Z: 0.04},
		{Z: 0.06},
		{Z: 0.1},
		{Z: 1.0},
	}
	hist := ZHistogram(verts)
	if hist[0.0] != 2 {
		t.Errorf("expected 2 at z=0.0 but got %d", hist[0.0])
	}
	if hist[0.1] != 2 {
		t.Errorf("expected 2 at z=0.1 but got %d", hist[0.1])
	}
	if hist[1.0] != 1 {
		t.Errorf("expected 1 at z=1.0 but got %d", hist[1.0])
	}
	total := 0
	for _, c := range hist {
		total += c
	}
	if total != len(verts) {
		t.Fatalf("histogram counts %d vertices, not %d", total, len(verts))
	}
}
