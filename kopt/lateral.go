package kopt

// LateralFinder extends Finder with "lateral" (zero-gain) moves: swaps whose
// total added length exactly equals total removed length. Such a move alone
// never improves the tour, but it changes its shape, which can open up an
// improving move that an ordinary (strictly-improving) search could never
// reach from the current local optimum. LateralFinder accepts a lateral
// move only when a subsequent Finder pass over the resulting tour finds a
// genuine improvement; otherwise it backs out and tries the next candidate.
//
// This is an opt-in escape hatch from local optima, not part of the default
// Optimize loop (see optimize.go's Options.AllowLateralMoves).
type LateralFinder struct {
	tour    *Tour
	kmax    int
	starts  []PointID
	ends    []PointID
	removes []PointID
	swapEnd PointID
}

// newLateralFinder returns a LateralFinder bounded to moves of at most kmax
// edges, searching (but never mutating) tour.
func newLateralFinder(tour *Tour, kmax int) *LateralFinder {
	return &LateralFinder{
		tour:    tour,
		kmax:    kmax,
		starts:  make([]PointID, 0, kmax),
		ends:    make([]PointID, 0, kmax),
		removes: make([]PointID, 0, kmax),
	}
}

// TryImprove scans every point as a seed, looking for a lateral move that
// unlocks a strictly improving follow-up move. On success it returns the
// resulting tour's full point order (both moves already applied, on a
// private trial copy) and true; the caller is expected to adopt that order
// as its new working tour. tour itself is never mutated.
//
// Complexity: bounded the same way as Finder.FindBest, times a constant
// factor for the inner verification Finder pass triggered per lateral
// candidate.
func (lf *LateralFinder) TryImprove() ([]int, bool) {
	n := lf.tour.Size()
	for idx := 0; idx < n; idx++ {
		i := PointID(idx)
		lf.starts = lf.starts[:0]
		lf.ends = lf.ends[:0]
		lf.removes = lf.removes[:0]

		lf.swapEnd = lf.tour.Prev(i)
		if order, ok := lf.startSearch(i, lf.swapEnd); ok {
			return order, true
		}
		lf.swapEnd = lf.tour.Next(i)
		if order, ok := lf.startSearch(i, i); ok {
			return order, true
		}
	}
	return nil, false
}

// startSearch mirrors Finder.startSearch, but gates candidates on
// gainful(add, remove) alone: a lateral search tries one new edge per
// removed edge before recursing, with no running kmargin to maintain.
func (lf *LateralFinder) startSearch(swapStart, removedEdge PointID) ([]int, bool) {
	remove := lf.tour.Length(removedEdge)
	for _, p := range lf.tour.NearbyPoints(swapStart, remove+1) {
		if p == swapStart || p == lf.tour.Prev(swapStart) || p == lf.tour.Next(swapStart) {
			continue
		}
		add := lf.tour.LengthBetween(swapStart, p)
		if !gainful(add, remove) {
			continue
		}
		lf.starts = append(lf.starts, swapStart)
		lf.ends = append(lf.ends, p)
		lf.removes = append(lf.removes, removedEdge)
		if order, ok := lf.deleteEdge(p, remove, add); ok {
			return order, true
		}
		lf.starts = lf.starts[:len(lf.starts)-1]
		lf.ends = lf.ends[:len(lf.ends)-1]
		lf.removes = lf.removes[:len(lf.removes)-1]
	}
	return nil, false
}

// deleteEdge mirrors Finder.deleteEdge: try removing each of the two edges
// incident to the point most recently attached, provided its anchor is not
// already in removes.
func (lf *LateralFinder) deleteEdge(end PointID, removed, added int) ([]int, bool) {
	prev := lf.tour.Prev(end)
	if !containsPoint(lf.removes, prev) {
		if order, ok := lf.addEdge(prev, prev, removed, added); ok {
			return order, true
		}
	}
	if !containsPoint(lf.removes, end) {
		next := lf.tour.Next(end)
		if order, ok := lf.addEdge(next, end, removed, added); ok {
			return order, true
		}
	}
	return nil, false
}

// addEdge mirrors Finder.addEdge's structure, but its "close attempt"
// requires an EXACT length match (lateral, not strictly improving); on a
// feasible lateral close it builds a trial tour, applies the lateral move,
// and hands the trial to an ordinary Finder — only a strictly improving
// follow-up there makes the candidate a success.
func (lf *LateralFinder) addEdge(newStart, newRemove PointID, removed, added int) ([]int, bool) {
	remove := lf.tour.Length(newRemove)
	closingLength := lf.tour.LengthBetween(newStart, lf.swapEnd)
	totalClosingAdd := closingLength + added
	totalRemove := removed + remove
	lateral := totalRemove == totalClosingAdd

	if lateral && newStart != lf.tour.Prev(lf.swapEnd) && newStart != lf.tour.Next(lf.swapEnd) {
		lf.starts = append(lf.starts, newStart)
		lf.ends = append(lf.ends, lf.swapEnd)
		lf.removes = append(lf.removes, newRemove)

		if order, ok := lf.tryCommit(); ok {
			return order, true
		}

		lf.starts = lf.starts[:len(lf.starts)-1]
		lf.ends = lf.ends[:len(lf.ends)-1]
		lf.removes = lf.removes[:len(lf.removes)-1]
	}

	if len(lf.starts) >= lf.kmax-1 {
		return nil, false
	}

	margin := totalRemove - added
	searchRadius := margin + lf.tour.Length(newRemove) + 1
	lastStart := PointID(invalidPoint)
	if len(lf.starts) > 0 {
		lastStart = lf.starts[len(lf.starts)-1]
	}
	for _, p := range lf.tour.NearbyPoints(newStart, searchRadius) {
		closing := p == lf.swapEnd
		neighboring := p == lf.tour.Next(newStart) || p == lf.tour.Prev(newStart)
		self := p == newStart
		backtrack := p == lastStart
		if backtrack || self || closing || neighboring {
			continue
		}

		add := lf.tour.LengthBetween(newStart, p)
		if !gainful(add, margin) {
			continue
		}
		if containsPoint(lf.starts, newStart) && containsPoint(lf.ends, p) {
			continue
		}

		lf.starts = append(lf.starts, newStart)
		lf.ends = append(lf.ends, p)
		lf.removes = append(lf.removes, newRemove)

		if order, ok := lf.deleteEdge(p, removed+remove, added+add); ok {
			return order, true
		}

		lf.starts = lf.starts[:len(lf.starts)-1]
		lf.ends = lf.ends[:len(lf.ends)-1]
		lf.removes = lf.removes[:len(lf.removes)-1]
	}
	return nil, false
}

// tryCommit builds the candidate KMove from the LateralFinder's current
// stacks, checks it is feasible (a single cycle) against lf.tour, and if so
// applies it to a private trial copy and runs an ordinary Finder over the
// result; a strictly improving move there is applied to the same trial
// copy, whose final point order is returned.
func (lf *LateralFinder) tryCommit() ([]int, bool) {
	candidate := KMove{starts: lf.starts, ends: lf.ends, removes: lf.removes}
	if !feasible(lf.tour, candidate) {
		return nil, false
	}

	trial, err := cloneTourForTrial(lf.tour)
	if err != nil {
		return nil, false
	}
	if err := trial.Swap(cloneKMove(candidate)); err != nil {
		return nil, false
	}

	inner := newFinder(trial, lf.kmax)
	result := inner.FindBest(nil)
	if !result.Found {
		return nil, false
	}
	if err := trial.Swap(result.Move); err != nil {
		return nil, false
	}

	order := make([]int, len(trial.order))
	copy(order, trial.order)
	return order, true
}

// cloneTourForTrial builds an independent Tour over the same PointSet,
// starting from t's current traversal order, for the LateralFinder to
// mutate speculatively without disturbing the caller's tour.
func cloneTourForTrial(t *Tour) (*Tour, error) {
	order := make([]int, len(t.order))
	copy(order, t.order)
	return NewTour(t.points, order)
}
