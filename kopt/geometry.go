// Package kopt — pure geometry helpers (component C1: primitives & geometry).
//
// No state; these are pure functions used by PointSet, the quadtree, and the
// Finder's candidate search.
package kopt

import "math"

// euc2D computes the TSPLIB EUC_2D integer Euclidean distance between two
// raw (unnormalized) coordinate pairs: floor(sqrt(dx^2+dy^2) + 0.5).
//
// This is symmetric by construction (dx^2 and dy^2 do not depend on order)
// and deterministic (no platform-dependent rounding modes are involved:
// math.Sqrt is IEEE-754 correctly rounded, and the +0.5/floor pattern is the
// standard "round half away from zero for non-negatives" idiom).
//
// Complexity: O(1).
func euc2D(x1, y1, x2, y2 float64) int {
	dx := x1 - x2
	dy := y1 - y2
	return int(math.Sqrt(dx*dx+dy*dy) + 0.5)
}

// Box is an axis-aligned rectangle [MinX, MaxX] x [MinY, MaxY] used for
// spatial-index range queries.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether (x, y) lies within the box, inclusive of the
// boundary (matches spec §4.2's "points whose coordinates lie inside box").
//
// Complexity: O(1).
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Intersects reports whether two boxes overlap (including touching edges),
// used by the quadtree to prune subtrees whose bounding box cannot
// contribute any point to a query.
//
// Complexity: O(1).
func (b Box) Intersects(o Box) bool {
	if b.MaxX < o.MinX || o.MaxX < b.MinX {
		return false
	}
	if b.MaxY < o.MinY || o.MaxY < b.MinY {
		return false
	}
	return true
}

// boxMaker returns the axis-aligned box of the given radius centered on
// (cx, cy): [cx-r, cx+r] x [cy-r, cy+r].
//
// Complexity: O(1).
func boxMaker(cx, cy float64, radius int) Box {
	r := float64(radius)
	return Box{MinX: cx - r, MaxX: cx + r, MinY: cy - r, MaxY: cy + r}
}
