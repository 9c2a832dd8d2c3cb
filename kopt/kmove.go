package kopt

// KMove accumulates the edges removed and added by an in-progress (or
// completed) k-opt move. starts[i]/ends[i] name the i'th added edge
// (starts[i] -> ends[i]); removes[i] names the point whose outgoing edge
// (removes[i] -> next(removes[i])) is deleted. The three slices grow and
// shrink together, one triple per move depth, except that pushDeletion and
// popDeletion leave ends alone, so starts and removes may run one ahead of
// ends.
type KMove struct {
	starts  []PointID
	ends    []PointID
	removes []PointID
}

// newKMove returns an empty KMove with capacity reserved for up to kmax
// edges.
func newKMove(kmax int) KMove {
	return KMove{
		starts:  make([]PointID, 0, kmax),
		ends:    make([]PointID, 0, kmax),
		removes: make([]PointID, 0, kmax),
	}
}

// currentK returns the number of edges accumulated so far.
//
// Complexity: O(1).
func (m KMove) currentK() int { return len(m.starts) }

// clear empties the move in place, retaining its backing arrays.
//
// Complexity: O(1).
func (m *KMove) clear() {
	m.starts = m.starts[:0]
	m.ends = m.ends[:0]
	m.removes = m.removes[:0]
}

// removable reports whether i's outgoing edge has not already been marked
// for removal by this move.
//
// Complexity: O(k).
func (m KMove) removable(i PointID) bool {
	return !containsPoint(m.removes, i)
}

// hasStart reports whether i has already been used as an edge start.
//
// Complexity: O(k).
func (m KMove) hasStart(i PointID) bool {
	return containsPoint(m.starts, i)
}

// hasEnd reports whether i has already been used as an edge end.
//
// Complexity: O(k).
func (m KMove) hasEnd(i PointID) bool {
	return containsPoint(m.ends, i)
}

// newestPoint returns the most recently pushed edge end, the point the
// search is currently extending from.
//
// Complexity: O(1).
func (m KMove) newestPoint() PointID {
	return m.ends[len(m.ends)-1]
}

// pushDeletion opens a new edge at newEdgeStart and marks removedEdgeStart's
// outgoing edge for removal. starts and removes grow together; ends is
// completed separately by pushAddition once a candidate endpoint is chosen
// (starts may briefly run one ahead of ends during that search).
//
// Complexity: O(1) amortized.
func (m *KMove) pushDeletion(newEdgeStart, removedEdgeStart PointID) {
	m.starts = append(m.starts, newEdgeStart)
	m.removes = append(m.removes, removedEdgeStart)
}

// popDeletion undoes the most recent pushDeletion.
//
// Complexity: O(1).
func (m *KMove) popDeletion() {
	m.starts = m.starts[:len(m.starts)-1]
	m.removes = m.removes[:len(m.removes)-1]
}

// pushAddition records a new edge's endpoint, reusing the most recently
// pushed start.
//
// Complexity: O(1) amortized.
func (m *KMove) pushAddition(newEdgeEnd PointID) {
	m.ends = append(m.ends, newEdgeEnd)
}

// popAddition undoes the most recent pushAddition.
//
// Complexity: O(1).
func (m *KMove) popAddition() {
	m.ends = m.ends[:len(m.ends)-1]
}

// pushAll records a complete new edge (start -> end) together with the
// point whose outgoing edge it removes, as one atomic step.
//
// Complexity: O(1) amortized.
func (m *KMove) pushAll(start, end, removedEdgeStart PointID) {
	m.starts = append(m.starts, start)
	m.ends = append(m.ends, end)
	m.removes = append(m.removes, removedEdgeStart)
}

// popAll undoes the most recent pushAll.
//
// Complexity: O(1).
func (m *KMove) popAll() {
	m.starts = m.starts[:len(m.starts)-1]
	m.ends = m.ends[:len(m.ends)-1]
	m.removes = m.removes[:len(m.removes)-1]
}

// validate checks that starts/ends/removes agree in length. A KMove
// returned by the Finder should always satisfy this; it exists for
// consumers (Tour.Swap) that accept a KMove built independently of Finder.
//
// Complexity: O(1).
func (m KMove) validate() error {
	if len(m.starts) != len(m.ends) || len(m.starts) != len(m.removes) {
		return ErrInvalidKMove
	}
	return nil
}

func containsPoint(points []PointID, p PointID) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

