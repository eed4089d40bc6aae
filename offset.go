package pocket

import (
	"fmt"
	"log/slog"
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// Process-wide offsetting configuration. Both values are compile-time
// constants on purpose: the scale factor must be identical for every ring
// of one spiral computation or the rings will not align.
const (
	// Scale is the integer quantization factor applied to every
	// coordinate handed to the clipping library: 1000 means 1/1000 mm
	// resolution.
	Scale = 1000

	// MinRingArea is the minimum unsigned area, in mm², for an offset
	// result to count as real geometry rather than a numerical sliver.
	MinRingArea = 1e-3
)

// toClipperPath quantizes a closed path to integer clipper coordinates,
// dropping the closing duplicate (clipper treats polygons as implicitly
// closed).
func toClipperPath(p Path) clipper.Path {
	v := p.vertices()
	cp := make(clipper.Path, 0, len(v))
	for _, pt := range v {
		cp = append(cp, &clipper.IntPoint{
			X: clipper.CInt(math.Round(pt.X * Scale)),
			Y: clipper.CInt(math.Round(pt.Y * Scale)),
		})
	}
	return cp
}

// fromClipperPath converts an integer clipper polygon back to millimeters
// and closes it explicitly.
func fromClipperPath(cp clipper.Path) Path {
	if len(cp) == 0 {
		return nil
	}
	p := make(Path, 0, len(cp)+1)
	for _, ip := range cp {
		p = append(p, Point{
			X: float64(ip.X) / Scale,
			Y: float64(ip.Y) / Scale,
		})
	}
	p = append(p, p[0])
	return p
}

// offsetPath computes a single polygon offset of the closed path by delta
// millimeters (negative is inward) and returns the resulting closed
// polygons. Clipper failures surface as errors wrapping ErrOffsetFailed;
// an empty result is not an error.
func offsetPath(p Path, delta float64) (out []Path, err error) {
	// The clipping library reports degenerate input by panicking.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrOffsetFailed, r)
		}
	}()

	co := clipper.NewClipperOffset()
	co.AddPath(toClipperPath(p), clipper.JtRound, clipper.EtClosedPolygon)
	solution := co.Execute(delta * Scale)

	out = make([]Path, 0, len(solution))
	for _, cp := range solution {
		if r := fromClipperPath(cp); r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// largestPath returns the path with the greatest unsigned area, or nil for
// an empty slice.
func largestPath(paths []Path) Path {
	var best Path
	bestArea := -1.0
	for _, p := range paths {
		if a := p.Area(); a > bestArea {
			bestArea = a
			best = p
		}
	}
	return best
}

// shrinkByMargin insets the boundary by the wall margin before ring
// generation. If offsetting splits the polygon into disjoint islands the
// largest one is kept; the smaller islands are numerical noise, not
// intended geometry. If the margin consumes the polygon entirely, the
// original boundary is returned unmodified (fail open) and a warning is
// logged.
func shrinkByMargin(boundary Path, margin float64) (Path, error) {
	if margin <= 0 {
		return boundary, nil
	}
	islands, err := offsetPath(boundary, -margin)
	if err != nil {
		return nil, err
	}
	shrunk := largestPath(islands)
	if shrunk == nil || shrunk.Area() < MinRingArea {
		Logger().Warn("pocket: wall margin consumed the whole polygon, using unshrunk boundary",
			slog.Float64("margin", margin),
			slog.Float64("boundaryArea", boundary.Area()))
		return boundary, nil
	}
	return shrunk, nil
}

// generateRings computes the ordered list of concentric inward rings,
// outermost first. Each iteration continues from the dominant (largest
// area) island of the previous offset rather than fanning out into
// multiple simultaneous spirals. Iteration stops when an offset yields no
// polygons above MinRingArea or when maxRings is reached; the cap guards
// against malformed self-intersecting input causing runaway iteration.
func generateRings(boundary Path, step float64, maxRings int) ([]Path, error) {
	rings := make([]Path, 0, 8)
	working := []Path{boundary}

	for iter := 0; iter < maxRings; iter++ {
		subject := largestPath(working)
		if subject == nil {
			break
		}

		islands, err := offsetPath(subject, -step)
		if err != nil {
			return nil, err
		}

		survivors := islands[:0]
		for _, r := range islands {
			if r.Area() >= MinRingArea {
				survivors = append(survivors, r)
			}
		}
		if len(survivors) == 0 {
			break
		}

		Logger().Debug("pocket: offset ring",
			slog.Int("iteration", iter),
			slog.Int("islands", len(survivors)),
			slog.Float64("largestArea", largestPath(survivors).Area()))

		rings = append(rings, survivors...)
		working = survivors
	}
	return rings, nil
}
