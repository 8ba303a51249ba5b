package stlprobe

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/unixpickle/essentials"
)

// A Strategy is a way to re-encode a mesh as parametric solid-modeling
// source.
type Strategy int

const (
	StrategyManualParametric Strategy = iota
	StrategyPolyhedron
	StrategySliced
)

// A Recommendation is the suggested reconstruction strategy. DecimateRatio
// is zero unless the mesh is large enough that decimating before a
// polyhedron conversion is worth suggesting.
type Recommendation struct {
	Strategy      Strategy
	DecimateRatio float64
}

// Recommend picks a reconstruction strategy from the triangle count and the
// flat/vertical and curved face percentages, in precedence order: small and
// mostly flat meshes are hand-writable, large or curvy meshes convert
// face-for-face, everything else slices.
func Recommend(triangles int, flatVerticalPct, curvedPct float64) Recommendation {
	if triangles < 500 && flatVerticalPct > 80 {
		return Recommendation{Strategy: StrategyManualParametric}
	}
	if triangles > 1000 || curvedPct > 30 {
		rec := Recommendation{Strategy: StrategyPolyhedron}
		if triangles > 50000 {
			rec.DecimateRatio = math.Max(0.1, 20000/float64(triangles))
		}
		return rec
	}
	return Recommendation{Strategy: StrategySliced}
}

// FileInfo is the source-file metadata echoed at the top of the report.
type FileInfo struct {
	Path   string
	Format Format
	Size   int64
}

// WriteReport writes the full geometry report for a parsed mesh. The
// section order is a contract: file metadata, bounding box, face normals,
// Z-level histogram, cross-section table, ASCII cross-sections, floor
// surfaces, ceiling surfaces, pocket detection, recommendation. Per-height
// sub-analyses run concurrently into index-addressed slices, so completion
// order never reaches the output.
func WriteReport(w io.Writer, info FileInfo, tris []Triangle) error {
	if len(tris) == 0 {
		return ErrEmptyMesh
	}
	verts := MeshVertices(tris)
	bounds := ComputeBounds(tris)

	fmt.Fprintf(w, "File: %s\n", filepath.Base(info.Path))
	fmt.Fprintf(w, "Format: %s\n", info.Format)
	fmt.Fprintf(w, "Size: %s bytes\n", humanize.Comma(info.Size))
	fmt.Fprintf(w, "Triangles: %s\n", humanize.Comma(int64(len(tris))))
	fmt.Fprintln(w)

	center := bounds.Center()
	fmt.Fprintf(w, "Bounding box:\n")
	fmt.Fprintf(w, "  X: %.2f to %.2f  (width:  %.2f mm)\n", bounds.MinX, bounds.MaxX, bounds.Width())
	fmt.Fprintf(w, "  Y: %.2f to %.2f  (height: %.2f mm)\n", bounds.MinY, bounds.MaxY, bounds.Height())
	fmt.Fprintf(w, "  Z: %.2f to %.2f  (depth:  %.2f mm)\n", bounds.MinZ, bounds.MaxZ, bounds.Depth())
	fmt.Fprintf(w, "  Center: (%.2f, %.2f, %.2f)\n", center.X, center.Y, center.Z)
	fmt.Fprintln(w)

	counts := ClassifyNormals(tris)
	fmt.Fprintf(w, "Face normals:\n")
	fmt.Fprintf(w, "  Top-facing (flat):    %6d  (%.0f%%)\n", counts.Top, facePct(counts.Top, len(tris)))
	fmt.Fprintf(w, "  Bottom-facing (flat): %6d  (%.0f%%)\n", counts.Bottom, facePct(counts.Bottom, len(tris)))
	fmt.Fprintf(w, "  Vertical (walls):     %6d  (%.0f%%)\n", counts.Vertical, facePct(counts.Vertical, len(tris)))
	fmt.Fprintf(w, "  Angled (curves/bevel):%6d  (%.0f%%)\n", counts.Angled, facePct(counts.Angled, len(tris)))
	fmt.Fprintln(w)

	writeHistogram(w, verts)
	writeCrossSections(w, verts, bounds)
	writeAsciiSections(w, verts, bounds)
	writeSurfaces(w, tris)
	writePockets(w, verts, bounds)
	writeRecommendation(w, len(tris), counts)
	return nil
}

func facePct(count, total int) float64 {
	return 100 * float64(count) / float64(total)
}

func writeHistogram(w io.Writer, verts []Point3) {
	hist := ZHistogram(verts)
	maxCount := 0
	for _, c := range hist {
		maxCount = max(maxCount, c)
	}
	// Scale so the tallest bucket renders as 40 characters.
	barScale := 40 / float64(maxCount)

	fmt.Fprintf(w, "Z-level distribution (%d distinct levels):\n", len(hist))
	for _, z := range sortedKeys(hist) {
		count := hist[z]
		bar := strings.Repeat("#", int(float64(count)*barScale))
		fmt.Fprintf(w, "  z=%6.1f: %6d %s\n", z, count, bar)
	}
	fmt.Fprintln(w)
}

func writeCrossSections(w io.Writer, verts []Point3, bounds BoundingBox) {
	levels := SliceLevels(bounds.MinZ, bounds.MaxZ)
	sections := make([]*CrossSection, len(levels))
	essentials.ConcurrentMap(0, len(levels), func(i int) {
		sections[i] = AnalyzeSlice(verts, levels[i], DefaultSliceTolerance)
	})

	fmt.Fprintf(w, "Cross-section analysis:\n")
	for i, z := range levels {
		sec := sections[i]
		if sec == nil {
			fmt.Fprintf(w, "  z=%.1f: insufficient data\n", z)
			continue
		}
		fmt.Fprintf(w, "  z=%.1f: %s (%.1f x %.1f mm, r~%.1f mm, variation=%.3f, pts=%d)\n",
			z, sec.Shape, sec.Width(), sec.Height(), sec.MeanRadius, sec.Variation, sec.Points)
	}
	fmt.Fprintln(w)
}

func writeAsciiSections(w io.Writer, verts []Point3, bounds BoundingBox) {
	fmt.Fprintf(w, "ASCII cross-sections (# = geometry present):\n")
	tol := AsciiTolerance(bounds.MinZ, bounds.MaxZ)
	for _, z := range AsciiLevels(bounds.MinZ, bounds.MaxZ) {
		var points []Point2
		for _, v := range verts {
			if math.Abs(v.Z-z) < tol {
				points = append(points, Point2{v.X, v.Y})
			}
		}
		if len(points) < minSlicePoints {
			continue
		}
		fmt.Fprintf(w, "  \n  --- z=%.1fmm ---\n", z)
		for _, line := range RenderCrossSection(points, DefaultCellSize) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

func writeSurfaces(w io.Writer, tris []Triangle) {
	top, bottom := DetectSurfaces(tris)

	fmt.Fprintf(w, "Floor surfaces (top-facing flat faces by Z level):\n")
	for _, z := range SurfaceLevels(top) {
		fmt.Fprintf(w, "  z=%5.1f: %4d faces\n", z, top[z])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Ceiling surfaces (bottom-facing flat faces by Z level):\n")
	for _, z := range SurfaceLevels(bottom) {
		fmt.Fprintf(w, "  z=%5.1f: %4d faces\n", z, bottom[z])
	}
	fmt.Fprintln(w)
}

func writePockets(w io.Writer, verts []Point3, bounds BoundingBox) {
	levels := PocketLevels(bounds.MinZ, bounds.MaxZ)
	pockets := make([]*Pocket, len(levels))
	essentials.ConcurrentMap(0, len(levels), func(i int) {
		pockets[i] = DetectPockets(verts, bounds.MinX, bounds.MinY, levels[i],
			DefaultPocketTolerance, DefaultPocketCellSize)
	})

	fmt.Fprintf(w, "Pocket/void detection:\n")
	found := false
	for i, z := range levels {
		p := pockets[i]
		if p == nil {
			continue
		}
		found = true
		fmt.Fprintf(w, "  z=%.1f: %d void cells, region: %.0f x %.0f mm at X=[%.0f,%.0f] Y=[%.0f,%.0f]\n",
			z, p.Cells, p.Width(), p.Height(), p.MinX, p.MaxX, p.MinY, p.MaxY)
	}
	if !found {
		fmt.Fprintf(w, "  No internal voids detected (solid object)\n")
	}
	fmt.Fprintln(w)
}

func writeRecommendation(w io.Writer, triangles int, counts NormalCounts) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Recommended reconstruction:")

	flatPct := counts.FlatVerticalPercent()
	curvedPct := counts.CurvedPercent()
	rec := Recommend(triangles, flatPct, curvedPct)
	switch rec.Strategy {
	case StrategyManualParametric:
		fmt.Fprintf(w, "  >>Manual parametric (simple geometry: %d faces, %.0f%% flat/vertical)\n",
			triangles, flatPct)
		fmt.Fprintf(w, "    Write OpenSCAD by hand using dimensions above.\n")
		fmt.Fprintf(w, "    Best for: boxes, plates, simple brackets, geometric shapes\n")
	case StrategyPolyhedron:
		fmt.Fprintf(w, "  >>Polyhedron (complex: %s faces, %.0f%% curved)\n",
			humanize.Comma(int64(triangles)), curvedPct)
		fmt.Fprintf(w, "    Convert face-for-face to an OpenSCAD polyhedron\n")
		fmt.Fprintf(w, "    Perfect fidelity, ~1s render, valid manifold\n")
		if rec.DecimateRatio > 0 {
			fmt.Fprintf(w, "    Consider: decimate at ratio %.1f to reduce from %s to ~%s faces\n",
				rec.DecimateRatio,
				humanize.Comma(int64(triangles)),
				humanize.Comma(int64(float64(triangles)*rec.DecimateRatio)))
		}
	case StrategySliced:
		fmt.Fprintf(w, "  >>Sliced cross-section (medium: %s faces, %.0f%% curved)\n",
			humanize.Comma(int64(triangles)), curvedPct)
		fmt.Fprintf(w, "    Extrude stacked cross-section outlines\n")
		fmt.Fprintf(w, "    Approximate but editable in OpenSCAD\n")
	}
	fmt.Fprintln(w, rule)
}
