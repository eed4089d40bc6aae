package pocket

import "math"

// coincidentTolerance is the distance below which two points are treated
// as the same vertex, both for closure detection and for seam links.
const coincidentTolerance = 1e-9

// Path is an ordered polyline of points in millimeters.
// A path is closed iff its first and last points coincide.
type Path []Point

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	cp := make(Path, len(p))
	copy(cp, p)
	return cp
}

// IsClosed reports whether the first and last points coincide.
func (p Path) IsClosed() bool {
	if len(p) < 2 {
		return false
	}
	return p[0].Distance(p[len(p)-1]) < coincidentTolerance
}

// vertices returns the distinct vertices of the path, excluding the
// closing duplicate if present.
func (p Path) vertices() Path {
	if p.IsClosed() {
		return p[:len(p)-1]
	}
	return p
}

// SignedArea returns the shoelace area of the path treated as a closed
// polygon. Positive for counter-clockwise winding in a Y-up coordinate
// system, negative for clockwise.
func (p Path) SignedArea() float64 {
	v := p.vertices()
	n := len(v)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += v[i].X*v[j].Y - v[j].X*v[i].Y
	}
	return area / 2
}

// Area returns the unsigned polygon area.
func (p Path) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCCW reports whether the polygon winds counter-clockwise.
func (p Path) IsCCW() bool {
	return p.SignedArea() > 0
}

// Reversed returns a copy of the path with the point order reversed.
func (p Path) Reversed() Path {
	cp := make(Path, len(p))
	for i, pt := range p {
		cp[len(p)-1-i] = pt
	}
	return cp
}

// Bounds returns the axis-aligned bounding box of the path.
// The zero Rect is returned for an empty path.
func (p Path) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := NewRect(p[0], p[0])
	for _, pt := range p[1:] {
		r = r.Union(NewRect(pt, pt))
	}
	return r
}

// Normalize canonicalizes a raw point sequence into a closed polygon with
// the requested winding sense: the closing duplicate is appended if absent,
// and the point order is reversed when the shoelace sign disagrees with ccw.
// Returns ErrInvalidPolygon when fewer than 3 distinct vertices remain.
func (p Path) Normalize(ccw bool) (Path, error) {
	v := p.vertices()
	if len(v) < 3 {
		return nil, ErrInvalidPolygon
	}
	out := v.Clone()
	if out.IsCCW() != ccw {
		out = out.Reversed()
	}
	out = append(out, out[0])
	return out, nil
}
