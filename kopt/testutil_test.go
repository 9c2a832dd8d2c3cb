// Package kopt internal test helpers shared across *_test.go files in this
// package (white-box tests exercising unexported search internals).
package kopt

import "testing"

// unitSquare returns the four corners of a unit square in counter-clockwise
// order: (0,0), (1,0), (1,1), (0,1).
func unitSquare() (x, y []float64) {
	return []float64{0, 1, 1, 0}, []float64{0, 0, 1, 1}
}

// scaledSquare returns the four corners of a square of side 10 in
// counter-clockwise order: (0,0), (10,0), (10,10), (0,10). Under EUC_2D
// rounding the unit square's diagonal is 1, the same as a side, so a crossed
// unit-square tour is no longer than the perimeter; at side 10 the diagonal
// is 14, the crossed tour is 48 and the perimeter is 40.
func scaledSquare() (x, y []float64) {
	return []float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}
}

// crossedSquareTour is the classic S1 scenario: a square visited in an
// order that crosses itself, [0,2,1,3], which a single 2-opt move repairs.
func crossedSquareTour() []int {
	return []int{0, 2, 1, 3}
}

// newTestPointSet builds a *PointSet over x/y at the default tree depth,
// failing the test on error.
func newTestPointSet(t *testing.T, x, y []float64) *PointSet {
	t.Helper()
	ps, err := NewPointSet(x, y, DefaultMaxTreeDepth)
	if err != nil {
		t.Fatalf("NewPointSet failed: %v", err)
	}
	return ps
}

// bruteForceNearby returns every point within radius of center by a plain
// O(n) scan, an oracle against which the quadtree's GetPoints can be
// checked; no test in this package calls it.
func bruteForceNearby(ps *PointSet, center PointID, radius int) map[PointID]bool {
	box := ps.SearchBox(center, radius)
	found := make(map[PointID]bool)
	for p := 0; p < ps.Len(); p++ {
		if p == center {
			continue
		}
		if box.Contains(ps.X(p), ps.Y(p)) {
			found[p] = true
		}
	}
	return found
}
