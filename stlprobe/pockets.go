package stlprobe

import "math"

const (
	// DefaultPocketTolerance is the pocket-detection slab half-width.
	DefaultPocketTolerance = 0.3

	// DefaultPocketCellSize is the occupancy-grid cell size in length units.
	DefaultPocketCellSize = 2.0

	// denseCellHits is the occupancy at which a grid cell counts as
	// material; enclosedNeighbors is how many of a cell's 8 neighbors must
	// be material to flag the cell as enclosed.
	denseCellHits     = 3
	enclosedNeighbors = 4
)

// A Pocket is a candidate internal void at one height slab. Extents are
// min/max of flagged cell centers, in coordinates relative to the mesh
// minimum.
type Pocket struct {
	Cells      int
	MinX, MaxX float64
	MinY, MaxY float64
}

func (p *Pocket) Width() float64  { return p.MaxX - p.MinX }
func (p *Pocket) Height() float64 { return p.MaxY - p.MinY }

type cellKey struct {
	X int
	Y int
}

// DetectPockets flags enclosed low-occupancy grid cells in the height slab
// around targetZ. Coordinates are translated by the mesh minimum (minX,
// minY) before quantization, so cell indices are never negative and
// truncation equals floor. The enclosure test is local: a cell with fewer
// than denseCellHits hits qualifies when at least enclosedNeighbors of its
// 8 neighbors are dense. There is no flood fill, so one physical void can
// surface as several fragments. Returns nil when the slab has fewer than
// 10 vertices or no cell qualifies.
func DetectPockets(verts []Point3, minX, minY, targetZ, tolerance, cellSize float64) *Pocket {
	var points []Point2
	for _, v := range verts {
		if math.Abs(v.Z-targetZ) < tolerance {
			points = append(points, Point2{v.X - minX, v.Y - minY})
		}
	}
	if len(points) < minSlicePoints {
		return nil
	}

	grid := make(map[cellKey]int)
	for _, p := range points {
		grid[cellKey{int(p.X / cellSize), int(p.Y / cellSize)}]++
	}

	minGX, maxGX := math.MaxInt, math.MinInt
	minGY, maxGY := math.MaxInt, math.MinInt
	for c := range grid {
		minGX = min(minGX, c.X)
		maxGX = max(maxGX, c.X)
		minGY = min(minGY, c.Y)
		maxGY = max(maxGY, c.Y)
	}

	var res *Pocket
	for gx := minGX; gx <= maxGX; gx++ {
		for gy := minGY; gy <= maxGY; gy++ {
			if grid[cellKey{gx, gy}] >= denseCellHits {
				continue
			}
			neighbors := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if grid[cellKey{gx + dx, gy + dy}] >= denseCellHits {
						neighbors++
					}
				}
			}
			if neighbors < enclosedNeighbors {
				continue
			}
			cx := float64(gx)*cellSize + cellSize/2
			cy := float64(gy)*cellSize + cellSize/2
			if res == nil {
				res = &Pocket{MinX: cx, MaxX: cx, MinY: cy, MaxY: cy}
			}
			res.Cells++
			res.MinX = math.Min(res.MinX, cx)
			res.MaxX = math.Max(res.MaxX, cx)
			res.MinY = math.Min(res.MinY, cy)
			res.MaxY = math.Max(res.MaxY, cy)
		}
	}
	return res
}

// PocketLevels returns the heights probed for internal voids: 10% through
// 90% of the height range in 10% steps. Levels are probed independently; a
// pocket at one level never suppresses another.
func PocketLevels(minZ, maxZ float64) []float64 {
	rangeZ := maxZ - minZ
	levels := make([]float64, 0, 9)
	for i := 1; i <= 9; i++ {
		levels = append(levels, minZ+rangeZ*float64(i)/10)
	}
	return levels
}
