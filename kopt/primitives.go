// Package kopt — primitives shared by every component: dense point ids and
// the coordinate storage backing them.
//
// This file has no state of its own; PointSet is the only owner of coordinate
// data, and it is immutable after construction (spec §3: "Points are
// immutable after construction").
package kopt

// PointID is a dense integer index in [0, N) identifying a point.
type PointID = int

// invalidPoint marks "no point" in contexts where zero is a valid id
// (e.g. an uninitialized swap_end before a seed is chosen).
const invalidPoint PointID = -1

// PointSet holds the immutable coordinate arrays for N points, plus the
// derived Domain and spatial Index built over them. It is the read-only
// object Tour and Finder both borrow for the duration of a search.
type PointSet struct {
	x, y   []float64
	domain Domain
	index  *Index
}

// NewPointSet builds a PointSet from parallel x/y coordinate slices,
// computing the bounding Domain and a depth-bounded quadtree Index over
// the normalized coordinates.
//
// Contract:
//   - len(x) == len(y) >= 1.
//   - 1 <= maxTreeDepth <= 32 (see DefaultMaxTreeDepth, maxMortonTreeDepth).
//
// Complexity: O(N log N + N * maxTreeDepth) (Morton sort + tree build).
func NewPointSet(x, y []float64, maxTreeDepth int) (*PointSet, error) {
	if len(x) != len(y) {
		return nil, ErrDimensionMismatch
	}
	if len(x) == 0 {
		return nil, ErrEmptyTour
	}
	if maxTreeDepth < 1 || maxTreeDepth > maxMortonTreeDepth {
		return nil, ErrDimensionMismatch
	}

	domain := newDomain(x, y)
	idx, err := buildIndex(x, y, domain, maxTreeDepth)
	if err != nil {
		return nil, err
	}

	return &PointSet{x: x, y: y, domain: domain, index: idx}, nil
}

// Len returns the number of points, N.
//
// Complexity: O(1).
func (ps *PointSet) Len() int { return len(ps.x) }

// X returns the x coordinate of point p.
//
// Complexity: O(1).
func (ps *PointSet) X(p PointID) float64 { return ps.x[p] }

// Y returns the y coordinate of point p.
//
// Complexity: O(1).
func (ps *PointSet) Y(p PointID) float64 { return ps.y[p] }

// Domain returns the bounding domain computed at construction time.
//
// Complexity: O(1).
func (ps *PointSet) Domain() Domain { return ps.domain }

// Index returns the spatial index built over the point set.
//
// Complexity: O(1).
func (ps *PointSet) Index() *Index { return ps.index }

// Length returns the symmetric integer Euclidean distance between two
// points, using the TSPLIB EUC_2D convention.
//
// Complexity: O(1).
func (ps *PointSet) Length(p, q PointID) int {
	return euc2D(ps.x[p], ps.y[p], ps.x[q], ps.y[q])
}

// SearchBox returns the axis-aligned box of the given radius centered on p.
//
// Complexity: O(1).
func (ps *PointSet) SearchBox(p PointID, radius int) Box {
	return boxMaker(ps.x[p], ps.y[p], radius)
}

// NearbyPoints returns every point within radius of p (excluding p itself),
// using the spatial index to prune subtrees outside the search box.
//
// Complexity: O(log N + m), m the result count, under a roughly uniform
// point distribution.
func (ps *PointSet) NearbyPoints(p PointID, radius int) []PointID {
	return ps.index.GetPoints(p, ps.SearchBox(p, radius), ps.x, ps.y)
}
