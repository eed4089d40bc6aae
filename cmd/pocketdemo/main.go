// Command pocketdemo generates a pocket-clearing spiral from a YAML job
// file and prints the toolpath points, optionally rendering a PNG preview.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/camforge/pocket"
)

// job mirrors the YAML job file: the boundary polygon plus the tool and
// strategy parameters.
type job struct {
	Boundary           [][2]float64 `yaml:"boundary"`
	ToolDiameter       float64      `yaml:"tool_diameter"`
	Stepover           float64      `yaml:"stepover"`
	WallMargin         float64      `yaml:"wall_margin"`
	ClimbMilling       bool         `yaml:"climb_milling"`
	MinCornerRadius    float64      `yaml:"min_corner_radius"`
	CornerArcTolerance float64      `yaml:"corner_arc_tolerance"`
	MaxRings           int          `yaml:"max_rings"`
}

// params merges the job file over the kernel defaults. Zero-valued
// numeric fields keep their defaults so a minimal job file works.
func (j job) params() pocket.Params {
	p := pocket.DefaultParams()
	if j.ToolDiameter > 0 {
		p.ToolDiameter = j.ToolDiameter
	}
	if j.Stepover > 0 {
		p.Stepover = j.Stepover
	}
	p.WallMargin = j.WallMargin
	p.ClimbMilling = j.ClimbMilling
	p.MinCornerRadius = j.MinCornerRadius
	if j.CornerArcTolerance > 0 {
		p.CornerArcTolerance = j.CornerArcTolerance
	}
	if j.MaxRings > 0 {
		p.MaxRings = j.MaxRings
	}
	return p
}

func (j job) boundary() []pocket.Point {
	pts := make([]pocket.Point, len(j.Boundary))
	for i, xy := range j.Boundary {
		pts[i] = pocket.Point{X: xy[0], Y: xy[1]}
	}
	return pts
}

func main() {
	var (
		jobPath = flag.String("job", "", "YAML job file (required)")
		pngPath = flag.String("png", "", "write a PNG preview to this file")
		width   = flag.Int("width", 800, "preview image width")
		height  = flag.Int("height", 600, "preview image height")
		verbose = flag.Bool("v", false, "enable kernel logging to stderr")
	)
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		pocket.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("Failed to read job file: %v", err)
	}
	var j job
	if err := yaml.Unmarshal(data, &j); err != nil {
		log.Fatalf("Failed to parse job file: %v", err)
	}

	preview, err := pocket.GeneratePreview(j.boundary(), j.params())
	if err != nil {
		log.Fatalf("Toolpath generation failed: %v", err)
	}

	for _, p := range preview.Spiral {
		fmt.Printf("%.4f %.4f\n", p.X, p.Y)
	}

	if *pngPath != "" {
		if err := preview.SavePNG(*pngPath, *width, *height); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
		log.Printf("Preview saved to %s (%dx%d), %d rings, %d points\n",
			*pngPath, *width, *height, len(preview.Rings), len(preview.Spiral))
	}
}
