package stlprobe

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Normal classification thresholds over the stored normal's Z component.
// These are fixed constants, independent of mesh scale.
const (
	topNormalZ      = 0.9
	bottomNormalZ   = -0.9
	verticalNormalZ = 0.1
)

// A BoundingBox is the axis-aligned extent of a vertex set.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

func (b BoundingBox) Width() float64  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }
func (b BoundingBox) Depth() float64  { return b.MaxZ - b.MinZ }

// Center returns the box midpoint.
func (b BoundingBox) Center() Point3 {
	return Point3{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
		Z: (b.MinZ + b.MaxZ) / 2,
	}
}

// ComputeBounds folds min/max over every vertex of every triangle, without
// deduplication. The mesh must be non-empty.
func ComputeBounds(tris []Triangle) BoundingBox {
	b := BoundingBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
	for i := range tris {
		for _, v := range tris[i].Vertices() {
			b.MinX = math.Min(b.MinX, v.X)
			b.MaxX = math.Max(b.MaxX, v.X)
			b.MinY = math.Min(b.MinY, v.Y)
			b.MaxY = math.Max(b.MaxY, v.Y)
			b.MinZ = math.Min(b.MinZ, v.Z)
			b.MaxZ = math.Max(b.MaxZ, v.Z)
		}
	}
	return b
}

// NormalCounts partitions triangles by the Z component of their stored
// normal: top (> 0.9), bottom (< -0.9), vertical (|z| < 0.1), else angled.
// Every triangle lands in exactly one bucket.
type NormalCounts struct {
	Top      int
	Bottom   int
	Vertical int
	Angled   int
}

// ClassifyNormals buckets every triangle by its stored normal. The normal
// is taken at face value; no geometric recomputation from the vertices.
func ClassifyNormals(tris []Triangle) NormalCounts {
	var c NormalCounts
	for i := range tris {
		nz := tris[i].Normal.Z
		switch {
		case nz > topNormalZ:
			c.Top++
		case nz < bottomNormalZ:
			c.Bottom++
		case math.Abs(nz) < verticalNormalZ:
			c.Vertical++
		default:
			c.Angled++
		}
	}
	return c
}

func (c NormalCounts) Total() int {
	return c.Top + c.Bottom + c.Vertical + c.Angled
}

// FlatVerticalPercent is the share of faces that are flat or vertical.
func (c NormalCounts) FlatVerticalPercent() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return 100 * float64(c.Top+c.Bottom+c.Vertical) / float64(total)
}

// CurvedPercent is the share of angled faces.
func (c NormalCounts) CurvedPercent() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return 100 * float64(c.Angled) / float64(total)
}

// ZHistogram counts vertices per height rounded to one decimal. Duplicate
// vertices across triangles all count.
func ZHistogram(verts []Point3) map[float64]int {
	hist := make(map[float64]int)
	for _, v := range verts {
		hist[roundTenth(v.Z)]++
	}
	return hist
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}

func sortedKeys(m map[float64]int) []float64 {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
