package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var shape string
	var size float64
	var delta float64
	flag.StringVar(&shape, "shape", "box", "shape to generate: box, cylinder, or tube")
	flag.Float64Var(&size, "size", 20.0, "characteristic size in mm")
	flag.Float64Var(&delta, "delta", 0.5, "marching cubes grid spacing for curved shapes")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: make_test_stl [flags] <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputPath := args[0]

	var mesh *model3d.Mesh
	switch shape {
	case "box":
		mesh = model3d.NewMeshRect(model3d.Origin, model3d.XYZ(size, size, size/2))
	case "cylinder":
		solid := &model3d.Cylinder{P2: model3d.Z(size), Radius: size / 2}
		log.Println("Meshing cylinder...")
		mesh = model3d.MarchingCubesSearch(solid, delta, 8)
	case "tube":
		// The bore overshoots both ends so the subtraction leaves open rims.
		solid := &model3d.SubtractedSolid{
			Positive: &model3d.Cylinder{P2: model3d.Z(size), Radius: size / 2},
			Negative: &model3d.Cylinder{
				P1:     model3d.Z(-1),
				P2:     model3d.Z(size + 1),
				Radius: size / 4,
			},
		}
		log.Println("Meshing tube...")
		mesh = model3d.MarchingCubesSearch(solid, delta, 8)
	default:
		essentials.Die("unknown shape: " + shape)
	}

	log.Printf("Saving %d triangles...", mesh.NumTriangles())
	essentials.Must(mesh.SaveGroupedSTL(outputPath))
}
