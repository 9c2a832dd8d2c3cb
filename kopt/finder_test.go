package kopt

import "testing"

// TestFinder_FindBest_S1 is scenario S1: a crossed side-10 square has a
// single improving 2-opt move, which FindBest must locate.
func TestFinder_FindBest_S1(t *testing.T) {
	x, y := scaledSquare()
	points := newTestPointSet(t, x, y)
	tour, err := NewTour(points, crossedSquareTour())
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	finder := newFinder(tour, DefaultKMax)
	result := finder.FindBest(nil)
	if !result.Found {
		t.Fatal("expected FindBest to locate the crossing-fixing move")
	}

	if err := tour.Swap(result.Move); err != nil {
		t.Fatalf("Swap of the found move failed: %v", err)
	}
	if got := tour.TotalLength(); got != 40 {
		t.Fatalf("post-swap length = %d, want 40", got)
	}
}

// TestFinder_FindBest_S2 is scenario S2: a convex pentagon visited in order
// is already a local optimum, so no improving move exists.
func TestFinder_FindBest_S2(t *testing.T) {
	x := []float64{0, 2, 3, 1.5, -1}
	y := []float64{0, -1, 1, 3, 2}
	points := newTestPointSet(t, x, y)
	tour, err := NewTour(points, []int{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	finder := newFinder(tour, DefaultKMax)
	result := finder.FindBest(nil)
	if result.Found {
		t.Fatalf("expected no improving move on a convex pentagon, got %+v", result.Move)
	}
}

// TestFinder_FindBest_ImprovementInvariant is property P4: any move FindBest
// returns must remove strictly more length than it adds.
func TestFinder_FindBest_ImprovementInvariant(t *testing.T) {
	x, y := scaledSquare()
	points := newTestPointSet(t, x, y)
	tour, err := NewTour(points, crossedSquareTour())
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	finder := newFinder(tour, DefaultKMax)
	result := finder.FindBest(nil)
	if !result.Found {
		t.Fatal("expected an improving move")
	}

	removed, added := 0, 0
	for _, p := range result.Move.removes {
		removed += tour.Length(p)
	}
	for i := range result.Move.starts {
		added += tour.LengthBetween(result.Move.starts[i], result.Move.ends[i])
	}
	if removed <= added {
		t.Fatalf("move is not improving: removed=%d added=%d", removed, added)
	}
}

// TestFinder_FindBest_Deterministic is property P8: given the same seed
// order, FindBest returns the same move every time.
func TestFinder_FindBest_Deterministic(t *testing.T) {
	x, y := scaledSquare()
	points := newTestPointSet(t, x, y)

	tourA, err := NewTour(points, crossedSquareTour())
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}
	tourB, err := NewTour(points, crossedSquareTour())
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	resultA := newFinder(tourA, DefaultKMax).FindBest(nil)
	resultB := newFinder(tourB, DefaultKMax).FindBest(nil)
	if !resultA.Found || !resultB.Found {
		t.Fatal("expected both finders to locate a move")
	}
	if len(resultA.Move.starts) != len(resultB.Move.starts) {
		t.Fatalf("move shapes differ: %v vs %v", resultA.Move, resultB.Move)
	}
	for i := range resultA.Move.starts {
		if resultA.Move.starts[i] != resultB.Move.starts[i] ||
			resultA.Move.ends[i] != resultB.Move.ends[i] ||
			resultA.Move.removes[i] != resultB.Move.removes[i] {
			t.Fatalf("moves differ at index %d: %+v vs %+v", i, resultA.Move, resultB.Move)
		}
	}
}

// TestFinder_FindBest_RespectsSeedOrder checks that a non-nil order argument
// changes which seed point is tried first, without changing the fact that an
// improving move is eventually found on the crossed square (every point in
// it is touched by the one available improving move).
func TestFinder_FindBest_RespectsSeedOrder(t *testing.T) {
	x, y := scaledSquare()
	points := newTestPointSet(t, x, y)
	tour, err := NewTour(points, crossedSquareTour())
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	finder := newFinder(tour, DefaultKMax)
	result := finder.FindBest([]PointID{3, 2, 1, 0})
	if !result.Found {
		t.Fatal("expected an improving move regardless of seed order")
	}
}
