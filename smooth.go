package pocket

import "math"

// Corner smoothing. Sharp interior corners of the spiral are replaced by
// short circular-arc fillets approximated with straight sub-segments, so
// the machine controller never has to come to a full stop at a vertex.
// The first and last points of the spiral are never altered.

// arcSegments is the number of linear sub-segments used to approximate
// one fillet arc.
const arcSegments = 5

// filletRadiusFraction caps the fillet radius at this fraction of the
// shorter adjacent segment, so a fillet never overlaps neighboring
// geometry.
const filletRadiusFraction = 0.3

// filletArc synthesizes the arc replacing the corner at apex. prev and
// next are the neighboring vertices, angle the interior angle at the
// apex. Returns nil when the corner cannot be filleted at this radius.
func filletArc(prev, apex, next Point, angle, radius float64) Path {
	toPrev := prev.Sub(apex)
	toNext := next.Sub(apex)
	lenPrev := toPrev.Length()
	lenNext := toNext.Length()
	if lenPrev == 0 || lenNext == 0 {
		return nil
	}
	dirPrev := toPrev.Mul(1 / lenPrev)
	dirNext := toNext.Mul(1 / lenNext)

	// Distance from the apex to each tangent point.
	half := angle / 2
	tanHalf := math.Tan(half)
	if tanHalf <= 0 {
		return nil
	}
	tangentDist := radius / tanHalf
	// A fillet whose tangent points would pass the segment midpoints
	// eats into the neighboring corners; leave such a vertex sharp.
	if tangentDist > 0.5*math.Min(lenPrev, lenNext) {
		return nil
	}

	t1 := apex.Add(dirPrev.Mul(tangentDist))
	t2 := apex.Add(dirNext.Mul(tangentDist))

	// Arc center sits on the angle bisector.
	bisector := dirPrev.Add(dirNext).Normalize()
	if bisector.LengthSquared() == 0 {
		return nil
	}
	center := apex.Add(bisector.Mul(radius / math.Sin(half)))

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	sweep := a2 - a1
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}

	arc := make(Path, 0, arcSegments+1)
	for k := 0; k <= arcSegments; k++ {
		a := a1 + sweep*float64(k)/arcSegments
		arc = append(arc, Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return arc
}

// smoothCorners replaces sharp interior vertices of an open spiral with
// circular-arc fillets. minRadius is the requested corner radius in mm;
// angleTol is the angular tolerance, in radians, within which a corner
// counts as straight and is passed through unchanged. The endpoints of
// the spiral are preserved, and the vertex count never decreases.
func smoothCorners(spiral Path, minRadius, angleTol float64) Path {
	if len(spiral) < 3 || minRadius <= 0 {
		return spiral
	}

	out := make(Path, 0, len(spiral))
	out = append(out, spiral[0])

	for i := 1; i < len(spiral)-1; i++ {
		prev := spiral[i-1]
		apex := spiral[i]
		next := spiral[i+1]

		a := prev.Sub(apex)
		b := next.Sub(apex)
		la := a.Length()
		lb := b.Length()
		if la == 0 || lb == 0 {
			out = append(out, apex)
			continue
		}

		cos := a.Dot(b) / (la * lb)
		cos = math.Max(-1, math.Min(1, cos))
		angle := math.Acos(cos)

		// Nearly straight: nothing to smooth.
		if math.Abs(angle-math.Pi) <= angleTol {
			out = append(out, apex)
			continue
		}

		radius := math.Min(minRadius, filletRadiusFraction*math.Min(la, lb))
		// A fillet below half the requested radius is not worth the
		// extra segments.
		if radius < minRadius/2 {
			out = append(out, apex)
			continue
		}

		arc := filletArc(prev, apex, next, angle, radius)
		if arc == nil {
			out = append(out, apex)
			continue
		}
		out = append(out, arc...)
	}

	out = append(out, spiral[len(spiral)-1])
	return out
}
