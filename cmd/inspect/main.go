package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/jaeseopark/lens-barrel-preview/internal/silhouette"
)

func main() {
	diameter := flag.Float64("diameter", 0, "Lens diameter in mm")
	length := flag.Float64("length", 0, "Lens length in mm")
	stepDistance := flag.Float64("step-distance", 10, "Mount step distance in mm")
	stepLength := flag.Float64("step-length", 15, "Mount step length in mm")
	mountDiameter := flag.Float64("mount-diameter", 62, "Mount outer diameter in mm")
	scale := flag.Float64("scale", 1.0, "Millimeter to pixel scale")
	width := flag.Float64("width", 300, "Canvas width in pixels")
	height := flag.Float64("height", 300, "Canvas height in pixels")

	flag.Parse()

	if *diameter <= 0 || *length <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: inspect -diameter 88 -length 136 [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	mount := silhouette.Mount{
		StepDistance:  *stepDistance,
		StepLength:    *stepLength,
		OuterDiameter: *mountDiameter,
	}
	poly := silhouette.ComputePolygon(*diameter, *length, mount, *scale, *width, *height)

	stepped := "no"
	if len(poly) > 4 {
		stepped = "yes"
	}
	fmt.Printf("Lens: %.1fmm diameter x %.1fmm length, mount %.1fmm\n", *diameter, *length, mount.OuterDiameter)
	fmt.Printf("Points: %d, stepped: %s\n", len(poly), stepped)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	fmt.Printf("BBox: X[%.1f, %.1f] Y[%.1f, %.1f]\n", minX, maxX, minY, maxY)
	fmt.Printf("Size: %.1f x %.1f px\n", maxX-minX, maxY-minY)

	for i, p := range poly {
		fmt.Printf("  [%2d] (%8.2f, %8.2f)\n", i, p.X, p.Y)
	}
}
