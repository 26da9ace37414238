package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/ZehnMilliarden/python-pptx/export"
	"github.com/ZehnMilliarden/python-pptx/render"
)

// Writes the demo pictures (shape gallery, column chart, memory bitmap) as
// standalone PNG files so layout changes can be checked without opening the
// generated documents.
// Run with: go run ./cmd/render_debug <output-dir>

func argbRGBA(argb string) color.RGBA {
	c := ppt.NewColor(argb)
	return color.RGBA{R: c.GetRed(), G: c.GetGreen(), B: c.GetBlue(), A: c.GetAlpha()}
}

func writePNG(dir, name string, data []byte) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("  %s (%d bytes)\n", path, len(data))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: render_debug <output-dir>")
		os.Exit(1)
	}
	outDir := os.Args[1]
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Printf("Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	content := export.DefaultSampleContent()
	fmt.Println("Rendering demo pictures...")

	// Shape gallery, same 810x450 placement grid the slide uses
	placements := [][4]int{
		{45, 45, 180, 90},
		{315, 45, 180, 90},
		{180, 225, 180, 180},
		{450, 225, 180, 180},
	}
	shapes := make([]render.PlacedShape, 0, len(content.Shapes))
	for i, sh := range content.Shapes {
		if i >= len(placements) {
			break
		}
		pl := placements[i]
		shapes = append(shapes, render.PlacedShape{
			Kind:  sh.Kind,
			Color: argbRGBA(sh.Color),
			X:     pl[0],
			Y:     pl[1],
			W:     pl[2],
			H:     pl[3],
		})
	}
	galleryPNG, err := render.ShapeGallery(810, 450, shapes)
	if err != nil {
		fmt.Printf("Error rendering shape gallery: %v\n", err)
		os.Exit(1)
	}
	writePNG(outDir, "shape_gallery.png", galleryPNG)

	series := make([]render.ChartSeries, 0, len(content.Chart.Series))
	for _, sr := range content.Chart.Series {
		series = append(series, render.ChartSeries{
			Name:   sr.Name,
			Values: sr.Values,
			Color:  argbRGBA(sr.Color),
		})
	}
	chartPNG, err := render.ColumnChart{
		Width:      900,
		Height:     500,
		Categories: content.Chart.Categories,
		Series:     series,
	}.Render()
	if err != nil {
		fmt.Printf("Error rendering column chart: %v\n", err)
		os.Exit(1)
	}
	writePNG(outDir, "column_chart.png", chartPNG)

	memoryPNG, err := render.MemoryPicture(content.MemoryLabel)
	if err != nil {
		fmt.Printf("Error rendering memory picture: %v\n", err)
		os.Exit(1)
	}
	writePNG(outDir, "memory_picture.png", memoryPNG)

	fmt.Println("Done.")
}
