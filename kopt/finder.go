package kopt

// Finder performs the depth-limited, margin-pruned DFS that is the core of
// this package: given a Tour, it searches for a k-opt move whose removed
// edges total strictly more length than its added edges, while keeping the
// tour a single Hamiltonian cycle.
//
// A Finder is single-use per FindBest call in the sense that its KMove and
// KMargin are cleared at the start of every seed point's search; it is safe
// to reuse across many FindBest calls against the same (possibly mutated)
// Tour, which is what Optimize does to avoid reallocating per pass.
type Finder struct {
	tour    *Tour
	kmax    int
	kmove   KMove
	kmargin *KMargin
	swapEnd PointID
	stop    bool
}

// newFinder returns a Finder bounded to moves of at most kmax edges.
func newFinder(tour *Tour, kmax int) *Finder {
	return &Finder{
		tour:    tour,
		kmax:    kmax,
		kmove:   newKMove(kmax),
		kmargin: newKMargin(kmax),
	}
}

// FindBest scans every point as a candidate seed (in ascending id order)
// and returns the first improving, feasible k-opt move found. order, if
// non-nil, overrides the seed visiting order (see Optimize's seeded
// shuffling); it must be a permutation of [0, tour.Size()).
//
// Complexity: in the worst case, unbounded by problem size alone (DFS depth
// is capped by kmax and each level by the margin/gain rule, but the branching
// factor depends on point density); in practice near-linear per accepted
// move on well-distributed inputs.
func (f *Finder) FindBest(order []PointID) Result {
	n := f.tour.Size()
	for idx := 0; idx < n; idx++ {
		i := PointID(idx)
		if order != nil {
			i = order[idx]
		}
		f.search(i)
		if f.stop {
			return Result{Move: cloneKMove(f.kmove), Found: true}
		}
	}
	return Result{Found: false}
}

// search tries both edges incident to i as the opening deletion.
func (f *Finder) search(i PointID) {
	f.resetSearch()
	f.swapEnd = f.tour.Prev(i)
	f.deletePrevEdge(i)
	f.startSearch(i, f.swapEnd)
	if f.stop {
		return
	}

	f.resetSearch()
	f.swapEnd = f.tour.Next(i)
	f.deleteNextEdge(i)
	f.startSearch(i, i)
}

// deletePrevEdge opens the move by deleting the edge (prev(newEdgeStart), newEdgeStart).
func (f *Finder) deletePrevEdge(newEdgeStart PointID) {
	removedEdgeStart := f.tour.Prev(newEdgeStart)
	f.kmove.pushDeletion(newEdgeStart, removedEdgeStart)
	f.kmargin.increase(f.tour.Length(removedEdgeStart))
}

// deleteNextEdge opens the move by deleting the edge (newEdgeStart, next(newEdgeStart)).
func (f *Finder) deleteNextEdge(newEdgeStart PointID) {
	removedEdgeStart := newEdgeStart
	f.kmove.pushDeletion(newEdgeStart, removedEdgeStart)
	f.kmargin.increase(f.tour.Length(removedEdgeStart))
}

// undoDeletion undoes the most recent deletePrevEdge/deleteNextEdge/deleteEdge push.
func (f *Finder) undoDeletion() {
	f.kmove.popDeletion()
	f.kmargin.popIncrease()
}

// addNewEdge attempts to attach a new edge from the current open start to
// newEdgeEnd, returning false (without mutating state) if doing so would
// drive the margin negative.
func (f *Finder) addNewEdge(newEdgeEnd PointID) bool {
	newEdgeStart := f.kmove.starts[len(f.kmove.starts)-1]
	newLength := f.tour.LengthBetween(newEdgeStart, newEdgeEnd)
	if !f.kmargin.decrease(newLength) {
		return false
	}
	f.kmove.pushAddition(newEdgeEnd)
	return true
}

// undoNewEdge undoes the most recent addNewEdge.
func (f *Finder) undoNewEdge() {
	f.kmargin.popDecrease()
	f.kmove.popAddition()
}

// startSearch is the add-new-edge extension: from swapStart, whose edge to
// removedEdge was just deleted, try every nearby point as a new edge
// endpoint and recurse into the delete-edge extension.
func (f *Finder) startSearch(swapStart, removedEdge PointID) {
	remove := f.tour.Length(removedEdge)
	for _, p := range f.tour.NearbyPoints(swapStart, remove+1) {
		if p == swapStart || p == f.tour.Prev(swapStart) || p == f.tour.Next(swapStart) {
			continue
		}
		add := f.tour.LengthBetween(swapStart, p)
		if !f.addNewEdge(p) {
			continue
		}
		f.deleteEdge(remove, add)
		if f.stop {
			return
		}
		f.undoNewEdge()
	}
}

// deleteEdge is the delete-edge extension: from the point most recently
// attached as a new edge's end, try removing each of its two incident
// edges (whichever are not already removed) and recurse into the
// close-attempt / add-edge logic.
func (f *Finder) deleteEdge(removed, added int) {
	newest := f.kmove.newestPoint()

	prevPoint := f.tour.Prev(newest)
	if f.kmove.removable(prevPoint) {
		f.addEdge(prevPoint, prevPoint, removed, added)
		if f.stop {
			return
		}
	}

	if f.kmove.removable(newest) {
		next := f.tour.Next(newest)
		f.addEdge(next, newest, removed, added)
	}
}

// addEdge folds newRemove's edge length into the running removed/added
// totals (threaded as plain parameters rather than through kmargin, which
// tracks only the outer add-new-edge extension's budget), attempts a close
// back to swapEnd if the move is already improving, and otherwise (or
// additionally, if not yet at kmax) tries every nearby candidate as the
// matching new edge, recursing one level deeper per accepted candidate.
// newRemove's own removal only becomes permanent in kmove.removes when a
// candidate below actually commits to it via pushAll.
func (f *Finder) addEdge(newStart, newRemove PointID, removed, added int) {
	remove := f.tour.Length(newRemove)
	closingLength := f.tour.LengthBetween(newStart, f.swapEnd)
	totalClosingAdd := closingLength + added
	totalRemove := removed + remove
	improving := totalRemove > totalClosingAdd

	if improving && newStart != f.tour.Prev(f.swapEnd) && newStart != f.tour.Next(f.swapEnd) {
		f.kmove.pushAll(newStart, f.swapEnd, newRemove)
		if feasible(f.tour, f.kmove) {
			f.stop = true
			return
		}
		f.kmove.popAll()
	}

	if f.kmove.currentK() >= f.kmax-1 {
		return
	}

	margin := totalRemove - added
	searchRadius := margin + f.tour.Length(newRemove) + 1
	lastStart := f.kmove.starts[len(f.kmove.starts)-1]
	for _, p := range f.tour.NearbyPoints(newStart, searchRadius) {
		closing := p == f.swapEnd
		neighboring := p == f.tour.Next(newStart) || p == f.tour.Prev(newStart)
		self := p == newStart
		backtrack := p == lastStart
		if backtrack || self || closing || neighboring {
			continue
		}

		add := f.tour.LengthBetween(newStart, p)
		if !gainful(add, margin) {
			continue
		}
		if f.kmove.hasStart(newStart) && f.kmove.hasEnd(p) {
			continue
		}

		f.kmove.pushAll(newStart, p, newRemove)
		f.deleteEdge(removed+remove, added+add)
		if f.stop {
			return
		}
		f.kmove.popAll()
	}
}

// gainful reports whether a candidate new edge's length does not exceed
// the margin already budgeted for it.
func gainful(newLength, removedLength int) bool {
	return newLength <= removedLength
}

// resetSearch clears the Finder's per-seed state ahead of a new search.
func (f *Finder) resetSearch() {
	f.kmove.clear()
	f.kmargin.clear()
	f.swapEnd = invalidPoint
	f.stop = false
}

// cloneKMove returns an independent copy of m, safe to retain after the
// Finder's next search clears its working KMove.
func cloneKMove(m KMove) KMove {
	out := KMove{
		starts:  make([]PointID, len(m.starts)),
		ends:    make([]PointID, len(m.ends)),
		removes: make([]PointID, len(m.removes)),
	}
	copy(out.starts, m.starts)
	copy(out.ends, m.ends)
	copy(out.removes, m.removes)
	return out
}
