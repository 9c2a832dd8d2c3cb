package kopt

import "sort"

// feasible decides, without mutating tour, whether removing the edges named
// by kmove.removes and adding the edges named by kmove.starts/kmove.ends
// would leave a single Hamiltonian cycle.
//
// Rather than rebuild the whole n-point tour, it restricts the walk to the
// "touched" points — those incident to a removed edge — and treats every
// untouched run of points between two touched points as a single
// macro-edge, using the tour's sequence order to know which touched point a
// run leads to. For a well-formed k-opt move the touched set has exactly
// 2k members (each removal touches two distinct, otherwise-undisturbed
// points); this is verified as a side effect of requiring every touched
// point to end up with exactly two graph edges.
//
// Complexity: O(k log k), dominated by sorting the touched points into
// tour order.
func feasible(tour *Tour, kmove KMove) bool {
	k := len(kmove.starts)
	if k == 0 {
		return false
	}

	type cutFlags struct{ nextCut, prevCut bool }
	cut := make(map[PointID]*cutFlags, 2*k)
	flagsFor := func(p PointID) *cutFlags {
		f, ok := cut[p]
		if !ok {
			f = &cutFlags{}
			cut[p] = f
		}
		return f
	}
	for _, r := range kmove.removes {
		flagsFor(r).nextCut = true
		flagsFor(tour.Next(r)).prevCut = true
	}

	touched := make([]PointID, 0, len(cut))
	for p := range cut {
		touched = append(touched, p)
	}
	sort.Slice(touched, func(i, j int) bool {
		return tour.Sequence(touched[i]) < tour.Sequence(touched[j])
	})
	m := len(touched)

	newPartners := make(map[PointID][]PointID, m)
	for i := 0; i < k; i++ {
		s, e := kmove.starts[i], kmove.ends[i]
		newPartners[s] = append(newPartners[s], e)
		newPartners[e] = append(newPartners[e], s)
	}

	adjacency := make(map[PointID][2]PointID, m)
	for i, p := range touched {
		f := cut[p]
		var pair [2]PointID
		n := 0
		if !f.nextCut {
			pair[n] = touched[(i+1)%m]
			n++
		}
		if !f.prevCut {
			pair[n] = touched[(i-1+m)%m]
			n++
		}
		for _, partner := range newPartners[p] {
			if n >= 2 {
				return false // malformed move: more edges than slots at p
			}
			pair[n] = partner
			n++
		}
		if n != 2 {
			return false // malformed move: a touched point left with < 2 edges
		}
		adjacency[p] = pair
	}

	visited := make(map[PointID]bool, m)
	start := touched[0]
	current := start
	prevPoint := invalidPoint
	for count := 0; count < m; count++ {
		if visited[current] {
			return false
		}
		visited[current] = true
		pair := adjacency[current]
		next := getOther(pair, prevPoint)
		prevPoint = current
		current = next
	}
	return current == start
}
