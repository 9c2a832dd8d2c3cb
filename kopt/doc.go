// Package kopt implements a variable-depth k-opt local-search optimizer for the
// Euclidean Traveling Salesman Problem, following the Lin–Kernighan family of
// edge-exchange moves with margin-pruned backtracking, a point quadtree for
// candidate-edge lookup, and an explicit cycle-feasibility oracle.
//
// # What & Why
//
// Given a set of 2-D points and an initial tour (a permutation visiting every
// point exactly once), kopt repeatedly searches for a k-opt move — removing k
// edges and replacing them with k different edges — that shortens the tour
// while keeping it a single Hamiltonian cycle. It applies the first such move
// it finds, then repeats until a pass finds nothing, a pass limit is hit, or
// a time limit elapses.
//
//   - Spatial index: a point quadtree keyed by Morton (Z-order) code, queried
//     by growing radius to propose nearby candidate endpoints for a new edge.
//   - Search: Finder performs a margin-pruned depth-first search over chains
//     of edge deletions/additions (KMove), bounded by Options.KMax.
//   - Feasibility: every candidate move is checked against the tour's current
//     adjacency before being accepted, rejecting any move that would split the
//     tour into more than one cycle.
//   - Lateral moves: LateralFinder optionally accepts a zero-gain move when it
//     unlocks a further improving move one level deeper, searched against a
//     private tour clone so the live tour is never mutated speculatively.
//
// # Algorithms & Complexity
//
//	Finder.FindBest (margin-pruned k-opt DFS)
//	  Time:   exponential in KMax in the worst case, pruned in practice by the
//	          margin budget (KMargin) and the spatial index's candidate radius.
//	  Memory: O(KMax) search stack plus O(n) tour state.
//
//	LateralFinder.TryImprove (clone-and-verify lateral search)
//	  Time:   one Finder.FindBest call against an O(n) tour clone per
//	          candidate lateral move.
//
//	buildIndex / GetPoints (point quadtree)
//	  Time:   O(n log n + n·depth) build, O(log n + m) query for m results, under a
//	          roughly uniform point distribution; degrades toward O(n) under
//	          heavy clustering since tree depth is fixed rather than adaptive.
//
//	GreedyNearestNeighborTour
//	  Time:   O(n log n) typical, O(n²) worst case (see initialtour.go).
//
// # Determinism & Stability
//
//   - No time-based randomness. Options.Seed controls the only randomized
//     behavior (seed-point visitation order); Seed==0 yields a fixed order.
//   - After every accepted swap, the next-pointer, sequence and order state
//     are rebuilt from the tour's adjacency by one full traversal; only the
//     adjacency itself is edited in place.
//   - TSPLIB EUC_2D integer rounding (⌊√(Δx²+Δy²)+0.5⌋) keeps edge lengths
//     reproducible across platforms.
//
// # Input Requirements
//
//	A PointSet requires n>=1 points with finite coordinates; a Tour requires n>=3.
//	An initial tour must be a permutation of [0, n) with no duplicates.
//
// # Options
//
//	type Options struct {
//	    KMax              int           // max edges removed/added per move (default 5)
//	    MaxTreeDepth       int           // checked >= 1; not read otherwise (default 16)
//	    Seed               int64         // deterministic seed-point order (0=stable default)
//	    ShufflePointOrder  bool          // visit seed points in Seed-derived permutation
//	    TimeLimit          time.Duration // soft wall-clock budget (0=none)
//	    MaxPasses          int           // outer-loop pass cap (0=unlimited)
//	    AllowLateralMoves  bool          // fall back to LateralFinder when stuck
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrDimensionMismatch, ErrOutOfDomain, ErrEmptyTour, ErrDuplicatePoint,
//	ErrMultiCycle, ErrInvalidKMove, ErrKMaxTooSmall, ErrStartOutOfRange,
//	ErrMalformedFile, ErrPointIDMismatch.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type OptimizeReport struct {
//	    Tour          []int // final point order
//	    InitialLength int   // tour length before any moves
//	    FinalLength   int   // tour length after the run
//	    Moves         int   // accepted k-opt moves
//	    Passes        int   // outer-loop passes run
//	}
//
// # Mathematics (references)
//
//	EUC_2D distance: d(i,j) = ⌊√((xi−xj)²+(yi−yj)²) + 0.5⌋ (TSPLIB convention).
//	A k-opt move is feasible iff the surviving edges plus the k new edges form
//	a single Hamiltonian cycle over all n points; feasibility.go checks this by
//	walking only the points touched by a removed edge, inferring the untouched
//	tour segments between them as macro-edges from the tour's sequence order.
package kopt
