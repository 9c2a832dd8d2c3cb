package kopt

// Morton keys are interleaved coordinates: integer encodings of the x, y
// coordinates after normalization to [0, 1]. Sorting by Morton key groups
// spatially nearby points together, which is what lets the quadtree recover
// a point's insertion path (its sequence of quadrants from the root) by pure
// bit extraction instead of descending node-by-node.

// mortonKey is wide enough for 2 bits/level up to maxMortonTreeDepth levels.
type mortonKey = uint64

// maxMortonTreeDepth is the largest maxTreeDepth interleaveCoordinates can
// encode into a 64-bit mortonKey (2 bits/level). NewPointSet rejects larger
// values; see ErrDimensionMismatch checks in primitives.go.
const maxMortonTreeDepth = 32

// interleaveCoordinates bit-interleaves two normalized ([0, 1]) coordinates
// into a single Morton key, most-significant bit first: c1's top bit, then
// c2's top bit, then c1's next bit, and so on. With c1=x and c2=y this
// traces an "N"-shaped curve in standard (+x right, +y up) orientation.
//
// The per-axis integer coordinate is scaled to maxTreeDepth bits (coordMax =
// 1 << (maxTreeDepth-1), mirroring the original implementation's
// IntegerCoordinateMax), so the key's meaningful bit range always matches
// what quadrantPath(key, maxTreeDepth) later extracts — the two must agree
// on maxTreeDepth for a point's path to describe its real route through the
// tree. A normalized coordinate of exactly 1 is clamped to coordMax-1, so a
// point on the domain's upper edge takes the upper quadrant at every level
// quadrantPath extracts.
//
// Complexity: O(maxTreeDepth).
func interleaveCoordinates(nx, ny float64, maxTreeDepth int) mortonKey {
	coordMax := uint64(1) << uint(maxTreeDepth-1)
	c1 := uint64(float64(coordMax) * nx)
	c2 := uint64(float64(coordMax) * ny)
	if c1 >= coordMax {
		c1 = coordMax - 1
	}
	if c2 >= coordMax {
		c2 = coordMax - 1
	}

	var key mortonKey
	for i := maxTreeDepth - 1; i >= 0; i-- {
		key |= (c1 >> uint(i)) & 1
		key <<= 1
		key |= (c2 >> uint(i)) & 1
		if i != 0 {
			key <<= 1
		}
	}
	return key
}

// pointMortonKey computes the Morton key of a raw (x, y) coordinate under
// the given Domain and maxTreeDepth, returning ErrOutOfDomain if
// normalization falls outside [0, 1] (which should not happen for points the
// Domain was built from, but can for a query point supplied separately).
//
// Complexity: O(maxTreeDepth).
func pointMortonKey(x, y float64, domain Domain, maxTreeDepth int) (mortonKey, error) {
	nx, ny := domain.normalize(x, y)
	if nx < 0.0 || nx > 1.0 || ny < 0.0 || ny > 1.0 {
		return 0, ErrOutOfDomain
	}
	return interleaveCoordinates(nx, ny, maxTreeDepth), nil
}

// quadrantPath extracts the sequence of quadrants (each in [0, 3]) a Morton
// key passes through from the root to maxTreeDepth-1 levels deep. Level i's
// quadrant is bits [2*(maxTreeDepth-i-1), 2*(maxTreeDepth-i-1)+1] of key,
// counting from the most significant pair down.
//
// Complexity: O(maxTreeDepth).
func quadrantPath(key mortonKey, maxTreeDepth int) []int {
	path := make([]int, maxTreeDepth-1)
	for i := 1; i < maxTreeDepth; i++ {
		shift := uint(2 * (maxTreeDepth - i - 1))
		path[i-1] = int((key >> shift) & 0b11)
	}
	return path
}
