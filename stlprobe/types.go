package stlprobe

// A Point3 is a point or direction in mesh space. Coordinates are in the
// mesh's native length units (millimeters for typical STL exports).
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// A Point2 is a point in a horizontal cross-section plane.
type Point2 struct {
	X float64
	Y float64
}

// A Triangle is one STL facet: three vertices plus the normal stored in the
// file. The normal is kept exactly as read, never renormalized or recomputed
// from the vertices, and degenerate vertex triples are allowed.
type Triangle struct {
	Normal Point3
	V1     Point3
	V2     Point3
	V3     Point3
}

// Vertices returns the triangle's corners in file order.
func (t *Triangle) Vertices() [3]Point3 {
	return [3]Point3{t.V1, t.V2, t.V3}
}

// CentroidZ is the mean height of the triangle's corners.
func (t *Triangle) CentroidZ() float64 {
	return (t.V1.Z + t.V2.Z + t.V3.Z) / 3
}

// MeshVertices flattens a triangle list into its vertices, three per
// triangle. Vertices shared between triangles appear once per use; every
// per-vertex analysis is defined over this multiset.
func MeshVertices(tris []Triangle) []Point3 {
	res := make([]Point3, 0, len(tris)*3)
	for i := range tris {
		res = append(res, tris[i].V1, tris[i].V2, tris[i].V3)
	}
	return res
}
