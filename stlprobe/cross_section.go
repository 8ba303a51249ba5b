package stlprobe

import (
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Cross-section shape labels, tightest roundness first.
const (
	ShapeCircular  = "circular"
	ShapeOval      = "roughly circular/oval"
	ShapeIrregular = "irregular"
)

// minSlicePoints is the smallest slab population any slice analysis
// accepts; below it there is no result.
const minSlicePoints = 10

// DefaultSliceTolerance is the half-width of the cross-section height slab.
const DefaultSliceTolerance = 0.25

// A CrossSection describes the 2D outline of the vertices in one height
// slab.
type CrossSection struct {
	Points     int
	MinX, MaxX float64
	MinY, MaxY float64

	// Center is the midpoint of the slab's 2D bounding box, not the point
	// centroid. The variation bands were tuned against this center;
	// switching to the centroid reclassifies off-center slabs.
	CenterX, CenterY float64

	MeanRadius float64
	Variation  float64
	Shape      string
}

func (c *CrossSection) Width() float64  { return c.MaxX - c.MinX }
func (c *CrossSection) Height() float64 { return c.MaxY - c.MinY }

// AnalyzeSlice classifies the outline shape of the vertices within
// tolerance of targetZ. The variation coefficient is the population
// standard deviation of point-to-center distances over their mean. Returns
// nil when fewer than 10 vertices qualify.
func AnalyzeSlice(verts []Point3, targetZ, tolerance float64) *CrossSection {
	var xs, ys []float64
	for _, v := range verts {
		if math.Abs(v.Z-targetZ) < tolerance {
			xs = append(xs, v.X)
			ys = append(ys, v.Y)
		}
	}
	if len(xs) < minSlicePoints {
		return nil
	}

	res := &CrossSection{
		Points: len(xs),
		MinX:   math.Inf(1), MaxX: math.Inf(-1),
		MinY:   math.Inf(1), MaxY: math.Inf(-1),
	}
	for i := range xs {
		res.MinX = math.Min(res.MinX, xs[i])
		res.MaxX = math.Max(res.MaxX, xs[i])
		res.MinY = math.Min(res.MinY, ys[i])
		res.MaxY = math.Max(res.MaxY, ys[i])
	}
	res.CenterX = (res.MinX + res.MaxX) / 2
	res.CenterY = (res.MinY + res.MaxY) / 2

	dists := make([]float64, len(xs))
	for i := range xs {
		dists[i] = math.Hypot(xs[i]-res.CenterX, ys[i]-res.CenterY)
	}
	res.MeanRadius = stat.Mean(dists, nil)
	if res.MeanRadius > 0 {
		popVar := stat.MomentAbout(2, dists, res.MeanRadius, nil)
		res.Variation = math.Sqrt(popVar) / res.MeanRadius
	}

	switch {
	case res.Variation < 0.1:
		res.Shape = ShapeCircular
	case res.Variation < 0.25:
		res.Shape = ShapeOval
	default:
		res.Shape = ShapeIrregular
	}
	return res
}

// SliceLevels returns the heights at which cross-sections are evaluated:
// fixed fractions of the height range, deduplicated and ascending.
func SliceLevels(minZ, maxZ float64) []float64 {
	rangeZ := maxZ - minZ
	var levels []float64
	for _, f := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		z := minZ + rangeZ*f
		if !slices.Contains(levels, z) {
			levels = append(levels, z)
		}
	}
	slices.Sort(levels)
	return levels
}
