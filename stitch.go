package pocket

// Ring-to-spiral stitching. The ordered ring list (outermost first) is
// joined into one continuous open polyline: every ring is rotated so it
// starts at the vertex nearest the current spiral tail, traversed in
// whichever direction makes the smallest angular turn against the
// spiral's current heading, and connected with a straight seam segment.
//
// The nearest-vertex-plus-heading rule is a heuristic approximation of
// continuous non-reversing motion, not a provable optimum: for deeply
// concave rings with thin isthmuses a seam segment can cross earlier
// geometry. Known limitation, kept as documented behavior.

// orientRing normalizes a closed ring to the winding sense required by
// the milling direction: counter-clockwise for climb milling, clockwise
// for conventional.
func orientRing(ring Path, climb bool) Path {
	if ring.IsCCW() == climb {
		return ring
	}
	return ring.Reversed()
}

// nearestVertex returns the index of the ring vertex (closing duplicate
// excluded) nearest to p, by linear scan.
func nearestVertex(ring Path, p Point) int {
	v := ring.vertices()
	best := 0
	bestDist := v[0].Sub(p).LengthSquared()
	for i := 1; i < len(v); i++ {
		if d := v[i].Sub(p).LengthSquared(); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// rotateRing returns the distinct vertices of a closed ring rotated so
// that index start becomes index 0.
func rotateRing(ring Path, start int) Path {
	v := ring.vertices()
	out := make(Path, 0, len(v))
	out = append(out, v[start:]...)
	out = append(out, v[:start]...)
	return out
}

// reverseFrom returns the ring body traversed backwards while keeping the
// same starting vertex: b[0], b[n-1], b[n-2], ..., b[1].
func reverseFrom(body Path) Path {
	out := make(Path, 0, len(body))
	out = append(out, body[0])
	for i := len(body) - 1; i >= 1; i-- {
		out = append(out, body[i])
	}
	return out
}

// stitchRings converts the ordered list of closed rings into one open
// spiral polyline. Rings must be non-degenerate (>= 3 distinct vertices);
// the returned spiral walks outer to inner.
func stitchRings(rings []Path, climb bool) Path {
	if len(rings) == 0 {
		return nil
	}

	first := orientRing(rings[0], climb)
	spiral := first.vertices().Clone()

	for _, ring := range rings[1:] {
		ring = orientRing(ring, climb)
		tail := spiral[len(spiral)-1]

		body := rotateRing(ring, nearestVertex(ring, tail))

		// Pick the traversal direction whose first segment turns the
		// least against the spiral's current heading.
		if len(spiral) >= 2 && len(body) >= 2 {
			heading := tail.Sub(spiral[len(spiral)-2]).Normalize()
			forward := body[1].Sub(body[0]).Normalize()
			backward := body[len(body)-1].Sub(body[0]).Normalize()
			if heading.Dot(backward) > heading.Dot(forward) {
				body = reverseFrom(body)
			}
		}

		// The straight seam from tail to body[0] is implied by
		// concatenation; when the two already coincide the duplicate
		// vertex is dropped instead.
		if tail.Distance(body[0]) < coincidentTolerance {
			body = body[1:]
		}
		spiral = append(spiral, body...)
	}
	return spiral
}
