package kopt

import "testing"

// TestInterleaveCoordinates_OriginIsZero is the first half of scenario S4:
// the Morton key of normalized (0, 0) is 0, at any maxTreeDepth.
func TestInterleaveCoordinates_OriginIsZero(t *testing.T) {
	for _, depth := range []int{4, 8, 16, 32} {
		if got := interleaveCoordinates(0, 0, depth); got != 0 {
			t.Fatalf("interleaveCoordinates(0,0,%d) = %d, want 0", depth, got)
		}
	}
}

// TestInterleaveCoordinates_NearOneIsAllBitsSet is the second half of
// scenario S4: for (1-eps, 1-eps) with eps small enough, the quadrant at
// every level up to max_tree_depth-1 is 3 (both axes' bit set). The key must
// be recomputed per depth: interleaveCoordinates scales its integer
// coordinate to maxTreeDepth bits, so a key encoded for one depth is not
// meaningful at another.
func TestInterleaveCoordinates_NearOneIsAllBitsSet(t *testing.T) {
	const eps = 1e-10
	for _, depth := range []int{4, 8, 16} {
		key := interleaveCoordinates(1-eps, 1-eps, depth)
		path := quadrantPath(key, depth)
		for level, q := range path {
			if q != 3 {
				t.Fatalf("depth=%d level=%d quadrant=%d, want 3 (all bits set)", depth, level, q)
			}
		}
	}
}

// TestQuadrantPath_RoundTrip is property P6: descending childBox along the
// path quadrantPath derives from a point's Morton key must arrive at a box
// that still contains that point's normalized coordinate, for every prefix
// of the path (i.e. the path really does describe the point's insertion
// route through the tree).
func TestQuadrantPath_RoundTrip(t *testing.T) {
	domain := Domain{xmin: 0, xmax: 1, ymin: 0, ymax: 1}
	const maxTreeDepth = 10

	points := [][2]float64{
		{0.1, 0.1},
		{0.9, 0.05},
		{0.33, 0.81},
		{0.5, 0.5},
	}
	for _, p := range points {
		key, err := pointMortonKey(p[0], p[1], domain, maxTreeDepth)
		if err != nil {
			t.Fatalf("pointMortonKey(%v) failed: %v", p, err)
		}
		path := quadrantPath(key, maxTreeDepth)

		box := domainBox(domain)
		for level, q := range path {
			box = childBox(box, q)
			if !box.Contains(p[0], p[1]) {
				t.Fatalf("point %v escaped its own path at level %d (quadrant %d)", p, level, q)
			}
		}
	}
}

func TestPointMortonKey_OutOfDomain(t *testing.T) {
	domain := Domain{xmin: 0, xmax: 1, ymin: 0, ymax: 1}
	if _, err := pointMortonKey(-0.5, 0.5, domain, DefaultMaxTreeDepth); err != ErrOutOfDomain {
		t.Fatalf("expected ErrOutOfDomain for x<domain, got %v", err)
	}
	if _, err := pointMortonKey(0.5, 1.5, domain, DefaultMaxTreeDepth); err != ErrOutOfDomain {
		t.Fatalf("expected ErrOutOfDomain for y>domain, got %v", err)
	}
}

func TestQuadrantPath_Length(t *testing.T) {
	path := quadrantPath(0, 16)
	if len(path) != 15 {
		t.Fatalf("quadrantPath length = %d, want maxTreeDepth-1 = 15", len(path))
	}
}
