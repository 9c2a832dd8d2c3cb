package kopt

import "time"

// Optimize builds a Tour from points and initial, then repeatedly applies
// Finder.FindBest (and, if enabled, LateralFinder.TryImprove) until a pass
// finds nothing, MaxPasses is reached, or TimeLimit elapses. This is the
// driver loop spec's Finder and Tour are designed to be embedded in; it is
// deliberately thin — everything that matters is in finder.go and tour.go.
//
// Complexity: O(passes * cost-of-FindBest); see Finder.FindBest.
func Optimize(points *PointSet, initial []int, opts Options) (OptimizeReport, error) {
	if err := validateOptions(opts); err != nil {
		return OptimizeReport{}, err
	}

	tour, err := NewTour(points, initial)
	if err != nil {
		return OptimizeReport{}, err
	}
	initialLength := tour.TotalLength()

	var order []PointID
	if opts.ShufflePointOrder {
		rng := rngFromSeed(opts.Seed)
		order, err = permRange(points.Len(), rng)
		if err != nil {
			return OptimizeReport{}, err
		}
	}

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	finder := newFinder(tour, opts.KMax)
	moves := 0
	passes := 0
	for opts.MaxPasses == 0 || passes < opts.MaxPasses {
		passes++

		result := finder.FindBest(order)
		if result.Found {
			if err := tour.Swap(result.Move); err != nil {
				return OptimizeReport{}, err
			}
			moves++
		} else if opts.AllowLateralMoves {
			lateral := newLateralFinder(tour, opts.KMax)
			newOrder, ok := lateral.TryImprove()
			if !ok {
				break
			}
			tour, err = NewTour(points, newOrder)
			if err != nil {
				return OptimizeReport{}, err
			}
			finder = newFinder(tour, opts.KMax)
			moves++
		} else {
			break
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}

	finalOrder := make([]int, tour.Size())
	copy(finalOrder, tour.Order())

	return OptimizeReport{
		Tour:          finalOrder,
		InitialLength: initialLength,
		FinalLength:   tour.TotalLength(),
		Moves:         moves,
		Passes:        passes,
	}, nil
}
