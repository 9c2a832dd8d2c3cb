package kopt

// Tour is a Hamiltonian cycle over a PointSet's points, represented as an
// adjacency structure (each point has exactly two neighbors) plus a
// directional next/prev view and a position index (sequence/order) used to
// compare points' relative order along the cycle without walking it.
//
// Design:
//   - adjacents[i] holds i's two unordered neighbors; next/prev give the
//     cycle a fixed direction derived from adjacents by a single traversal.
//   - sequence[i] is i's position in that traversal; order[s] is its
//     inverse (the point at position s). The two arrays are mutual inverses
//     at all times: order[sequence[i]] == i.
//   - Swap is the only mutator: it atomically removes the edges named by a
//     KMove's removes and adds the edges named by its starts/ends, then
//     rebuilds next/sequence/order by a single O(n) traversal.
//
// No logging, no panics on user input — only sentinel errors from types.go.
type Tour struct {
	points    *PointSet
	adjacents [][2]PointID
	next      []PointID
	sequence  []int
	order     []PointID
}

// NewTour builds a Tour from points and an initial permutation of
// [0, points.Len()) giving the cyclic visiting order.
//
// Complexity: O(n) time, O(n) space.
func NewTour(points *PointSet, initial []int) (*Tour, error) {
	n := points.Len()
	if len(initial) != n {
		return nil, ErrDimensionMismatch
	}
	if n < 3 {
		return nil, ErrEmptyTour
	}
	seen := make([]bool, n)
	for _, p := range initial {
		if p < 0 || p >= n {
			return nil, ErrDimensionMismatch
		}
		if seen[p] {
			return nil, ErrDuplicatePoint
		}
		seen[p] = true
	}

	t := &Tour{
		points:    points,
		adjacents: make([][2]PointID, n),
		next:      make([]PointID, n),
		sequence:  make([]int, n),
		order:     make([]PointID, 0, n),
	}
	for i := range t.adjacents {
		t.adjacents[i] = [2]PointID{invalidPoint, invalidPoint}
	}
	for i := 0; i < n; i++ {
		a := initial[i]
		b := initial[(i+1)%n]
		t.createAdjacency(a, b)
	}
	if err := t.updateNext(initial[0]); err != nil {
		return nil, err
	}
	return t, nil
}

// Size returns the number of points in the tour.
//
// Complexity: O(1).
func (t *Tour) Size() int { return len(t.next) }

// Next returns the point visited immediately after i.
//
// Complexity: O(1).
func (t *Tour) Next(i PointID) PointID { return t.next[i] }

// Prev returns the point visited immediately before i.
//
// Complexity: O(1).
func (t *Tour) Prev(i PointID) PointID { return getOther(t.adjacents[i], t.next[i]) }

// Order returns the traversal order starting at whichever point NewTour (or
// the last Swap) used as the walk's root. Callers must not mutate it.
//
// Complexity: O(1).
func (t *Tour) Order() []PointID { return t.order }

// Sequence returns i's position in the current traversal order.
//
// Complexity: O(1).
func (t *Tour) Sequence(i PointID) int { return t.sequence[i] }

// SequenceFrom returns i's position relative to start, in [0, n): how many
// Next steps from start reach i. Used by the cycle-feasibility oracle to
// reason about point order without an O(n) walk.
//
// Complexity: O(1).
func (t *Tour) SequenceFrom(i, start PointID) int {
	n := len(t.next)
	return ((t.sequence[i] - t.sequence[start])%n + n) % n
}

// Length returns the length of the edge from i to its next point.
//
// Complexity: O(1).
func (t *Tour) Length(i PointID) int { return t.points.Length(i, t.next[i]) }

// PrevLength returns the length of the edge from i's previous point to i.
//
// Complexity: O(1).
func (t *Tour) PrevLength(i PointID) int { return t.points.Length(t.Prev(i), i) }

// LengthBetween returns the length of the edge between two (not necessarily
// adjacent) points, independent of tour structure.
//
// Complexity: O(1).
func (t *Tour) LengthBetween(i, j PointID) int { return t.points.Length(i, j) }

// TotalLength returns the sum of every edge's length around the cycle.
//
// Complexity: O(n).
func (t *Tour) TotalLength() int {
	total := 0
	for i := 0; i < len(t.next); i++ {
		total += t.Length(PointID(i))
	}
	return total
}

// SearchBox returns the axis-aligned box of the given radius centered on i.
//
// Complexity: O(1).
func (t *Tour) SearchBox(i PointID, radius int) Box { return t.points.SearchBox(i, radius) }

// NearbyPoints returns every point within radius of i, excluding i.
//
// Complexity: O(log n + m).
func (t *Tour) NearbyPoints(i PointID, radius int) []PointID { return t.points.NearbyPoints(i, radius) }

// Swap atomically applies a k-opt move: every point named in kmove.removes
// loses its outgoing edge, then every (starts[i], ends[i]) pair gains one,
// and the traversal order is rebuilt. If the resulting adjacency is not a
// single n-cycle, the tour is restored to its pre-swap state and
// ErrMultiCycle is returned — this should not happen for a move the
// feasibility oracle has already accepted, but Swap does not trust callers.
//
// Complexity: O(n) (dominated by the traversal rebuild).
func (t *Tour) Swap(kmove KMove) error {
	if err := kmove.validate(); err != nil {
		return err
	}

	root := t.order[0]
	broken := make([][2]PointID, len(kmove.removes))
	for i, p := range kmove.removes {
		broken[i] = [2]PointID{p, t.next[p]}
		t.breakAdjacency(p, t.next[p])
	}
	for i := range kmove.starts {
		t.createAdjacency(kmove.starts[i], kmove.ends[i])
	}

	if err := t.updateNext(root); err != nil {
		// Unwind: remove the new edges, restore the broken ones.
		for i := range kmove.starts {
			t.breakAdjacency(kmove.starts[i], kmove.ends[i])
		}
		for _, e := range broken {
			t.createAdjacency(e[0], e[1])
		}
		_ = t.updateNext(root)
		return err
	}
	return nil
}

// Validate re-derives the tour's invariants from scratch: every point has
// exactly two distinct neighbors, and the adjacency graph forms a single
// cycle visiting all n points.
//
// Complexity: O(n).
func (t *Tour) Validate() error {
	n := len(t.next)
	for i := 0; i < n; i++ {
		a := t.adjacents[i]
		if a[0] == invalidPoint || a[1] == invalidPoint {
			return ErrMultiCycle
		}
		if a[0] == a[1] || a[0] == PointID(i) || a[1] == PointID(i) {
			return ErrMultiCycle
		}
	}
	visited := make([]bool, n)
	current := PointID(0)
	prevPoint := invalidPoint
	for count := 0; count < n; count++ {
		if visited[current] {
			return ErrMultiCycle
		}
		visited[current] = true
		nxt := getOther(t.adjacents[current], prevPoint)
		prevPoint = current
		current = nxt
	}
	if current != 0 {
		return ErrMultiCycle
	}
	return nil
}

// createAdjacency fills the first free neighbor slot of a and b with each
// other.
func (t *Tour) createAdjacency(a, b PointID) {
	fillAdjacent(t.adjacents, a, b)
	fillAdjacent(t.adjacents, b, a)
}

// breakAdjacency removes the mutual neighbor link between a and b.
func (t *Tour) breakAdjacency(a, b PointID) {
	vacateAdjacent(t.adjacents, a, b)
	vacateAdjacent(t.adjacents, b, a)
}

// updateNext rebuilds next/sequence/order by walking the adjacency graph
// from start, always stepping to "the neighbor that isn't where we came
// from". Returns ErrMultiCycle if the walk revisits a point before
// completing n steps, or does not return to start after exactly n steps.
func (t *Tour) updateNext(start PointID) error {
	n := len(t.next)
	visited := make([]bool, n)
	t.order = t.order[:0]

	current := start
	prevPoint := invalidPoint
	for count := 0; count < n; count++ {
		if visited[current] {
			return ErrMultiCycle
		}
		visited[current] = true
		t.order = append(t.order, current)
		t.sequence[current] = count

		nxt := getOther(t.adjacents[current], prevPoint)
		t.next[current] = nxt
		prevPoint = current
		current = nxt
	}
	if current != start {
		return ErrMultiCycle
	}
	return nil
}

// getOther returns whichever of pair's two slots is not x. If neither slot
// equals x (e.g. x is invalidPoint, as for the traversal's first step),
// the first slot is returned.
func getOther(pair [2]PointID, x PointID) PointID {
	if pair[0] == x {
		return pair[1]
	}
	return pair[0]
}

// fillAdjacent sets the first invalidPoint slot of point's adjacency pair
// to newAdjacent.
func fillAdjacent(adjacents [][2]PointID, point, newAdjacent PointID) {
	if adjacents[point][0] == invalidPoint {
		adjacents[point][0] = newAdjacent
	} else {
		adjacents[point][1] = newAdjacent
	}
}

// vacateAdjacent clears point's adjacency slot holding adjacent, if any.
func vacateAdjacent(adjacents [][2]PointID, point, adjacent PointID) {
	if adjacents[point][0] == adjacent {
		adjacents[point][0] = invalidPoint
	} else if adjacents[point][1] == adjacent {
		adjacents[point][1] = invalidPoint
	}
}
