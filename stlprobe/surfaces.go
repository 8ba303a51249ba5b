package stlprobe

// minSurfaceFaces is the face count a level must exceed to be reported as
// a flat surface.
const minSurfaceFaces = 5

// DetectSurfaces groups triangles by centroid height rounded to one decimal
// and counts top-facing and bottom-facing faces per level, using the same
// normal thresholds as ClassifyNormals. A top-facing group is a candidate
// floor; a bottom-facing group is a candidate ceiling or overhang.
func DetectSurfaces(tris []Triangle) (top, bottom map[float64]int) {
	top = make(map[float64]int)
	bottom = make(map[float64]int)
	for i := range tris {
		z := roundTenth(tris[i].CentroidZ())
		if nz := tris[i].Normal.Z; nz > topNormalZ {
			top[z]++
		} else if nz < bottomNormalZ {
			bottom[z]++
		}
	}
	return
}

// SurfaceLevels filters a surface group to the heights with more than
// minSurfaceFaces faces, ascending.
func SurfaceLevels(group map[float64]int) []float64 {
	var levels []float64
	for _, z := range sortedKeys(group) {
		if group[z] > minSurfaceFaces {
			levels = append(levels, z)
		}
	}
	return levels
}
