package pocket

import "fmt"

// Params holds the tool and strategy parameters for one toolpath
// computation. The zero value is not usable; start from DefaultParams.
type Params struct {
	// ToolDiameter is the cutter diameter in mm. Must be positive.
	ToolDiameter float64

	// Stepover is the radial distance between adjacent passes as a
	// fraction of the tool diameter, in [0.05, 0.95].
	Stepover float64

	// WallMargin is an extra inset, in mm, applied to the boundary
	// before ring generation (stock to leave on the pocket wall).
	WallMargin float64

	// ClimbMilling selects the cutting direction: true normalizes every
	// ring to counter-clockwise winding, false to clockwise.
	ClimbMilling bool

	// MinCornerRadius is the requested fillet radius for corner
	// smoothing, in mm. Zero disables smoothing.
	MinCornerRadius float64

	// CornerArcTolerance is the angular tolerance, in radians, within
	// which a corner counts as straight and is left untouched.
	CornerArcTolerance float64

	// MaxRings caps the number of offset iterations, bounding worst-case
	// latency on malformed input.
	MaxRings int
}

// DefaultParams returns conservative defaults for a small end mill.
func DefaultParams() Params {
	return Params{
		ToolDiameter:       6.0,
		Stepover:           0.4,
		WallMargin:         0,
		ClimbMilling:       true,
		MinCornerRadius:    0,
		CornerArcTolerance: 0.05,
		MaxRings:           500,
	}
}

// validate checks the parameter ranges shared by Generate and
// GeneratePreview.
func (p Params) validate() error {
	if p.Stepover < 0.05 || p.Stepover > 0.95 {
		return fmt.Errorf("%w: got %g", ErrInvalidStepover, p.Stepover)
	}
	if p.ToolDiameter <= 0 {
		return fmt.Errorf("pocket: tool diameter must be positive, got %g", p.ToolDiameter)
	}
	if p.MaxRings <= 0 {
		return fmt.Errorf("pocket: max rings must be positive, got %d", p.MaxRings)
	}
	return nil
}

// Preview is the structured payload for rendering a toolpath in a UI
// without generating machine code: the individual rings, the stitched
// spiral, and the bounding box of the boundary.
type Preview struct {
	Rings  []Path
	Spiral Path
	Bounds Rect
}

// Generate computes the pocket-clearing spiral for the given boundary.
// The boundary may be open or closed; it is normalized internally. The
// result is a single open polyline walking from the outer contour to the
// innermost surviving offset, corner-smoothed when MinCornerRadius is set.
func Generate(boundary []Point, params Params) (Path, error) {
	pv, err := compute(boundary, params)
	if err != nil {
		return nil, err
	}
	return pv.Spiral, nil
}

// GeneratePreview computes the same toolpath as Generate but returns the
// per-ring geometry and bounding box alongside the spiral.
func GeneratePreview(boundary []Point, params Params) (*Preview, error) {
	return compute(boundary, params)
}

// compute is the orchestration pipeline shared by Generate and
// GeneratePreview: normalize, pre-shrink, ring generation, stitching,
// smoothing.
func compute(boundary []Point, params Params) (*Preview, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	normalized, err := Path(boundary).Normalize(params.ClimbMilling)
	if err != nil {
		return nil, err
	}

	outline, err := shrinkByMargin(normalized, params.WallMargin)
	if err != nil {
		return nil, err
	}

	step := params.ToolDiameter * params.Stepover
	rings, err := generateRings(outline, step, params.MaxRings)
	if err != nil {
		return nil, err
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("%w: tool diameter %g mm, stepover %g",
			ErrEmptyToolpath, params.ToolDiameter, params.Stepover)
	}

	spiral := stitchRings(rings, params.ClimbMilling)
	if params.MinCornerRadius > 0 {
		spiral = smoothCorners(spiral, params.MinCornerRadius, params.CornerArcTolerance)
	}

	return &Preview{
		Rings:  rings,
		Spiral: spiral,
		Bounds: normalized.Bounds(),
	}, nil
}
