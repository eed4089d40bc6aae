package pocket

import "errors"

// Errors returned by the toolpath kernel. Callers are expected to
// distinguish input errors (ErrInvalidPolygon, ErrInvalidStepover) from
// internal offsetting failures (ErrOffsetFailed) when mapping to a
// transport status.
var (
	// ErrInvalidPolygon is returned when a boundary has fewer than 3
	// distinct vertices after closure handling.
	ErrInvalidPolygon = errors.New("pocket: polygon must have at least 3 distinct vertices")

	// ErrInvalidStepover is returned when the stepover fraction is outside
	// the [0.05, 0.95] range.
	ErrInvalidStepover = errors.New("pocket: stepover must be in [0.05, 0.95]")

	// ErrOffsetFailed wraps failures raised by the underlying polygon
	// offsetting library.
	ErrOffsetFailed = errors.New("pocket: polygon offset failed")

	// ErrEmptyToolpath is returned when no ring survives offsetting,
	// typically because the tool is too large for the boundary.
	ErrEmptyToolpath = errors.New("pocket: no clearable area for the given tool")
)
