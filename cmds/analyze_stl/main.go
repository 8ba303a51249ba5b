package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andreaskolltveit/stl-probe/stlprobe"
	"github.com/unixpickle/essentials"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: analyze_stl <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	stat, err := os.Stat(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: File not found:", inputPath)
		os.Exit(1)
	}

	tris, format, err := stlprobe.Load(inputPath)
	essentials.Must(err)
	if len(tris) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No triangles found in file.")
		os.Exit(1)
	}

	info := stlprobe.FileInfo{
		Path:   inputPath,
		Format: format,
		Size:   stat.Size(),
	}
	essentials.Must(stlprobe.WriteReport(os.Stdout, info, tris))
}
