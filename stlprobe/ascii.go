package stlprobe

import (
	"fmt"
	"math"
	"strings"
)

// DefaultCellSize is the rasterization cell size in length units.
const DefaultCellSize = 2.0

// RenderCrossSection rasterizes a point set into a character grid sized to
// the point set's extent plus a 2-cell margin, one '#' per occupied cell.
// Multiple points in a cell collapse to one mark. Rows run from highest Y
// to lowest, each prefixed with its Y coordinate; rows with no occupied
// cell are omitted.
func RenderCrossSection(points []Point2, cellSize float64) []string {
	if len(points) == 0 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	cols := int((maxX-minX)/cellSize) + 2
	rows := int((maxY-minY)/cellSize) + 2

	grid := make([][]byte, rows)
	for r := range grid {
		row := make([]byte, cols)
		for c := range row {
			row[c] = ' '
		}
		grid[r] = row
	}
	for _, p := range points {
		c := int((p.X - minX) / cellSize)
		r := int((p.Y - minY) / cellSize)
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = '#'
		}
	}

	var lines []string
	for r := rows - 1; r >= 0; r-- {
		row := string(grid[r])
		if !strings.Contains(row, "#") {
			continue
		}
		y := minY + float64(r)*cellSize
		lines = append(lines, fmt.Sprintf("  y=%6.1f |%s|", y, row))
	}
	return lines
}

// AsciiLevels returns the heights rendered as ASCII sections: just above
// the floor, three interior fractions, and just below the top.
func AsciiLevels(minZ, maxZ float64) []float64 {
	rangeZ := maxZ - minZ
	return []float64{
		minZ + 0.2,
		minZ + rangeZ*0.25,
		minZ + rangeZ*0.5,
		minZ + rangeZ*0.75,
		maxZ - 0.2,
	}
}

// AsciiTolerance is the slab half-width for ASCII sections: at least 0.25,
// widening to 3% of the height range for tall meshes.
func AsciiTolerance(minZ, maxZ float64) float64 {
	return math.Max(0.25, (maxZ-minZ)*0.03)
}
