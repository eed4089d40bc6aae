// Package pocket generates CNC pocket-clearing toolpaths.
//
// # Overview
//
// pocket is a pure Go 2D toolpath kernel: given a closed boundary polygon
// in millimeters and a set of tool parameters, it computes a single
// continuous inward-spiraling cutting path that clears the pocket from the
// boundary toward the center, with optional arc-fillet corner smoothing
// for machine-friendly motion.
//
// Polygon offsetting is delegated to a Clipper-family integer clipping
// library (github.com/ctessum/go.clipper); orientation normalization,
// ring-to-spiral stitching and corner smoothing are implemented here.
//
// # Quick Start
//
//	import "github.com/camforge/pocket"
//
//	boundary := []pocket.Point{
//		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 60}, {X: 0, Y: 60},
//	}
//
//	params := pocket.DefaultParams()
//	params.ToolDiameter = 6.0
//	params.Stepover = 0.4
//
//	spiral, err := pocket.Generate(boundary, params)
//	if err != nil {
//		// handle error
//	}
//	// spiral is an open polyline from the outer contour to the center,
//	// ready for a downstream G-code emitter.
//
// # Pipeline
//
// The kernel is a strictly linear transform:
//
//	boundary -> margin pre-shrink -> concentric rings -> spiral -> smoothed spiral
//
// Every stage is a pure function over local buffers, so concurrent calls
// from multiple goroutines are safe without locking.
//
// # Coordinate System
//
// All coordinates are floating-point millimeters. The kernel does not care
// which way Y points; winding order is normalized internally from the
// signed shoelace area. Before offsetting, coordinates are quantized to
// integers at 1/Scale mm resolution and converted back afterwards.
//
// # Scope
//
// The kernel is a pure 2D geometry transform. It does not parse vector
// art, emit G-code, schedule feeds or depths, or model tool deflection;
// those belong to its callers.
package pocket

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 1
)
