package pocket

import (
	"math"
	"testing"
)

// quantTol is the tolerance used when comparing geometry that went
// through integer quantization: one unit of 1/Scale on each side, plus
// slack for the round joins.
const quantTol = 4.0 / Scale

func closedCCWSquare(side float64) Path {
	p := Path{Pt(0, 0), Pt(side, 0), Pt(side, side), Pt(0, side)}
	return append(p, p[0])
}

func TestOffsetPath_InwardSquare(t *testing.T) {
	out, err := offsetPath(closedCCWSquare(10), -1)
	if err != nil {
		t.Fatalf("offsetPath() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("offsetPath() returned %d polygons, want 1", len(out))
	}

	ring := out[0]
	if !ring.IsClosed() {
		t.Error("offset ring is not closed")
	}
	if got := ring.Area(); math.Abs(got-64) > 0.05 {
		t.Errorf("ring area = %v, want 64", got)
	}

	b := ring.Bounds()
	if math.Abs(b.Width()-8) > quantTol || math.Abs(b.Height()-8) > quantTol {
		t.Errorf("ring bounds = %vx%v, want 8x8", b.Width(), b.Height())
	}
}

func TestOffsetPath_ConsumedPolygonIsEmpty(t *testing.T) {
	out, err := offsetPath(closedCCWSquare(10), -6)
	if err != nil {
		t.Fatalf("offsetPath() error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("offsetPath() returned %d polygons, want 0", len(out))
	}
}

func TestLargestPath(t *testing.T) {
	small := closedCCWSquare(2)
	big := closedCCWSquare(10)

	tests := []struct {
		name   string
		paths  []Path
		expect float64 // area of expected winner, -1 for nil
	}{
		{"empty", nil, -1},
		{"single", []Path{small}, 4},
		{"largest wins", []Path{small, big}, 100},
		{"order independent", []Path{big, small}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := largestPath(tt.paths)
			if tt.expect < 0 {
				if got != nil {
					t.Errorf("largestPath() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("largestPath() = nil")
			}
			if a := got.Area(); math.Abs(a-tt.expect) > epsilon {
				t.Errorf("largestPath() area = %v, want %v", a, tt.expect)
			}
		})
	}
}

func TestShrinkByMargin(t *testing.T) {
	t.Run("insets by the margin", func(t *testing.T) {
		out, err := shrinkByMargin(closedCCWSquare(10), 1)
		if err != nil {
			t.Fatalf("shrinkByMargin() error = %v", err)
		}
		b := out.Bounds()
		if math.Abs(b.Width()-8) > quantTol || math.Abs(b.Height()-8) > quantTol {
			t.Errorf("shrunk bounds = %vx%v, want 8x8", b.Width(), b.Height())
		}
	})

	t.Run("zero margin is a no-op", func(t *testing.T) {
		boundary := closedCCWSquare(10)
		out, err := shrinkByMargin(boundary, 0)
		if err != nil {
			t.Fatalf("shrinkByMargin() error = %v", err)
		}
		if len(out) != len(boundary) {
			t.Fatalf("len = %d, want %d", len(out), len(boundary))
		}
		for i := range boundary {
			if !pointsEqual(out[i], boundary[i], epsilon) {
				t.Fatalf("point %d = %v, want %v", i, out[i], boundary[i])
			}
		}
	})

	t.Run("fails open when margin consumes the polygon", func(t *testing.T) {
		boundary := closedCCWSquare(10)
		out, err := shrinkByMargin(boundary, 50)
		if err != nil {
			t.Fatalf("shrinkByMargin() error = %v", err)
		}
		if len(out) != len(boundary) {
			t.Fatalf("fail-open result has %d points, want the original %d", len(out), len(boundary))
		}
		for i := range boundary {
			if !pointsEqual(out[i], boundary[i], epsilon) {
				t.Fatalf("point %d = %v, want original %v", i, out[i], boundary[i])
			}
		}
	})
}

func TestGenerateRings_Square(t *testing.T) {
	// 10x10 boundary at step 1: inward rings of 8x8, 6x6, 4x4, 2x2.
	rings, err := generateRings(closedCCWSquare(10), 1, 500)
	if err != nil {
		t.Fatalf("generateRings() error = %v", err)
	}
	if len(rings) != 4 {
		t.Fatalf("generateRings() produced %d rings, want 4", len(rings))
	}

	wantAreas := []float64{64, 36, 16, 4}
	for i, want := range wantAreas {
		if got := rings[i].Area(); math.Abs(got-want) > 0.05 {
			t.Errorf("ring %d area = %v, want %v", i, got, want)
		}
	}
}

func TestGenerateRings_StrictlyDecreasingBounds(t *testing.T) {
	boundaries := []Path{
		closedCCWSquare(20),
		// A convex hexagon-ish outline.
		{Pt(0, 5), Pt(5, 0), Pt(15, 0), Pt(20, 5), Pt(15, 12), Pt(5, 12), Pt(0, 5)},
	}

	for _, boundary := range boundaries {
		rings, err := generateRings(boundary, 1.5, 500)
		if err != nil {
			t.Fatalf("generateRings() error = %v", err)
		}
		if len(rings) < 2 {
			t.Fatalf("want at least 2 rings, got %d", len(rings))
		}
		for i := 1; i < len(rings); i++ {
			prev := rings[i-1].Bounds().Area()
			cur := rings[i].Bounds().Area()
			if cur >= prev {
				t.Errorf("ring %d bbox area %v not smaller than previous %v", i, cur, prev)
			}
		}
	}
}

func TestGenerateRings_MaxRingsCap(t *testing.T) {
	rings, err := generateRings(closedCCWSquare(100), 0.5, 3)
	if err != nil {
		t.Fatalf("generateRings() error = %v", err)
	}
	if len(rings) != 3 {
		t.Errorf("generateRings() produced %d rings, want cap of 3", len(rings))
	}
}

func TestGenerateRings_AllRingsValid(t *testing.T) {
	rings, err := generateRings(closedCCWSquare(10), 1, 500)
	if err != nil {
		t.Fatalf("generateRings() error = %v", err)
	}
	for i, r := range rings {
		if !r.IsClosed() {
			t.Errorf("ring %d is not closed", i)
		}
		if len(r.vertices()) < 3 {
			t.Errorf("ring %d has %d distinct vertices, want >= 3", i, len(r.vertices()))
		}
		if r.Area() < MinRingArea {
			t.Errorf("ring %d area %v below MinRingArea", i, r.Area())
		}
	}
}

func TestClipperRoundTrip(t *testing.T) {
	in := closedCCWSquare(10)
	out := fromClipperPath(toClipperPath(in))
	if !out.IsClosed() {
		t.Fatal("round-tripped path is not closed")
	}
	if len(out) != len(in) {
		t.Fatalf("round-trip len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if !pointsEqual(out[i], in[i], 1.0/Scale+epsilon) {
			t.Errorf("point %d = %v, want %v within quantization", i, out[i], in[i])
		}
	}
}
