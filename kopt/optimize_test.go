package kopt_test

import (
	"testing"

	"github.com/gokopt/kopt/kopt"
	"github.com/stretchr/testify/require"
)

// TestOptimize_S1 drives scenario S1 through the full public entry point:
// a self-crossing side-10 square tour (length 48 under EUC_2D rounding) is
// shortened to the perimeter length 40.
func TestOptimize_S1(t *testing.T) {
	x := []float64{0, 10, 10, 0}
	y := []float64{0, 0, 10, 10}
	points, err := kopt.NewPointSet(x, y, kopt.DefaultMaxTreeDepth)
	require.NoError(t, err)

	report, err := kopt.Optimize(points, []int{0, 2, 1, 3}, kopt.DefaultOptions())
	require.NoError(t, err)

	require.Greater(t, report.InitialLength, report.FinalLength)
	require.Equal(t, 40, report.FinalLength)
	require.GreaterOrEqual(t, report.Moves, 1)
	require.Len(t, report.Tour, 4)
}

func TestOptimize_RejectsKMaxTooSmall(t *testing.T) {
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	points, err := kopt.NewPointSet(x, y, kopt.DefaultMaxTreeDepth)
	require.NoError(t, err)

	opts := kopt.DefaultOptions()
	opts.KMax = 1
	_, err = kopt.Optimize(points, []int{0, 1, 2, 3}, opts)
	require.ErrorIs(t, err, kopt.ErrKMaxTooSmall)
}

// TestOptimize_Deterministic is property P8 exercised end to end: two runs
// with the same seed and shuffled seed order produce byte-identical final
// tours and move counts.
func TestOptimize_Deterministic(t *testing.T) {
	x := []float64{0, 5, 9, 12, 14, 13, 9, 5, 2, 1}
	y := []float64{0, 2, 0, 4, 9, 13, 14, 12, 8, 4}
	points, err := kopt.NewPointSet(x, y, kopt.DefaultMaxTreeDepth)
	require.NoError(t, err)
	initial := kopt.IdentityTour(len(x))

	opts := kopt.DefaultOptions()
	opts.Seed = 42
	opts.ShufflePointOrder = true

	reportA, err := kopt.Optimize(points, initial, opts)
	require.NoError(t, err)
	reportB, err := kopt.Optimize(points, initial, opts)
	require.NoError(t, err)

	require.Equal(t, reportA.Tour, reportB.Tour)
	require.Equal(t, reportA.Moves, reportB.Moves)
	require.Equal(t, reportA.FinalLength, reportB.FinalLength)
}

// TestOptimize_NeverLengthens is property P4 at the whole-run level: the
// final tour is never longer than the initial one, across several seeds.
func TestOptimize_NeverLengthens(t *testing.T) {
	x := []float64{0, 5, 9, 12, 14, 13, 9, 5, 2, 1}
	y := []float64{0, 2, 0, 4, 9, 13, 14, 12, 8, 4}
	points, err := kopt.NewPointSet(x, y, kopt.DefaultMaxTreeDepth)
	require.NoError(t, err)
	initial := kopt.IdentityTour(len(x))

	for _, seed := range []int64{0, 1, 7, 99} {
		opts := kopt.DefaultOptions()
		opts.Seed = seed
		opts.ShufflePointOrder = seed != 0

		report, err := kopt.Optimize(points, initial, opts)
		require.NoError(t, err)
		require.LessOrEqual(t, report.FinalLength, report.InitialLength)
	}
}
