package kopt

// IdentityTour returns the trivial initial tour [0, 1, ..., n-1], visiting
// points in id order. This mirrors the original driver's default_tour,
// used whenever no tour file is supplied.
//
// Complexity: O(n).
func IdentityTour(n int) []int {
	tour := make([]int, n)
	for i := range tour {
		tour[i] = i
	}
	return tour
}

// GreedyNearestNeighborTour builds an initial tour by repeatedly walking to
// the nearest not-yet-visited point, starting from start. It expands the
// spatial index's search radius geometrically whenever the current radius
// turns up no unvisited candidate, which keeps the common case (a nearby
// unvisited point exists) cheap while still terminating once only distant
// points remain.
//
// Complexity: O(n log n) on well-distributed inputs; O(n^2) worst case if
// radius expansion repeatedly needs to cover most of the domain, which can
// happen for point sets with one dense cluster and one distant straggler.
func GreedyNearestNeighborTour(points *PointSet, start int) ([]int, error) {
	n := points.Len()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	if n < 3 {
		return nil, ErrEmptyTour
	}

	visited := make([]bool, n)
	tour := make([]int, 0, n)

	current := start
	visited[current] = true
	tour = append(tour, current)

	for len(tour) < n {
		next, ok := nearestUnvisited(points, current, visited)
		if !ok {
			return nil, ErrDimensionMismatch
		}
		visited[next] = true
		tour = append(tour, next)
		current = next
	}
	return tour, nil
}

// nearestUnvisited finds the closest point to center that visited marks as
// false, by querying the spatial index at a geometrically growing radius
// until a candidate is found or the whole domain has been covered.
func nearestUnvisited(points *PointSet, center int, visited []bool) (int, bool) {
	domain := points.Domain()
	maxRadius := euc2D(domain.xmin, domain.ymin, domain.xmax, domain.ymax)
	if maxRadius == 0 {
		maxRadius = 1
	}

	radius := 1
	for {
		best := -1
		bestLength := 0
		for _, p := range points.NearbyPoints(center, radius) {
			if visited[p] {
				continue
			}
			length := points.Length(center, p)
			if best == -1 || length < bestLength {
				best = p
				bestLength = length
			}
		}
		if best != -1 {
			return best, true
		}
		if radius >= maxRadius {
			return scanNearestUnvisited(points, center, visited)
		}
		radius *= 2
	}
}

// scanNearestUnvisited is the fallback once a radius search covering the
// whole domain still finds nothing (can happen right at the boundary of
// the final expansion); it is a plain O(n) linear scan.
func scanNearestUnvisited(points *PointSet, center int, visited []bool) (int, bool) {
	best := -1
	bestLength := 0
	for p := 0; p < points.Len(); p++ {
		if visited[p] {
			continue
		}
		length := points.Length(center, p)
		if best == -1 || length < bestLength {
			best = p
			bestLength = length
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
