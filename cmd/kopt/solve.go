package main

import (
	"fmt"

	"github.com/gokopt/kopt/kopt"
	"github.com/spf13/cobra"
)

var (
	solveTSPPath  string
	solveTourPath string
	solveKMax     int
	solveOutPath  string
)

func init() {
	cmd := newSolveCmd()
	cmd.Flags().StringVar(&solveTSPPath, "tsp", "", "TSPLIB coordinate file (required)")
	cmd.Flags().StringVar(&solveTourPath, "tour", "", "TSPLIB starting tour file (optional; default is greedy nearest-neighbor)")
	cmd.Flags().IntVar(&solveKMax, "kmax", kopt.DefaultKMax, "maximum k-opt move depth")
	cmd.Flags().StringVar(&solveOutPath, "out", "", "write the resulting tour here (optional)")
	_ = cmd.MarkFlagRequired("tsp")
	rootCmd.AddCommand(cmd)
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Improve a tour with k-opt local search",
		Long: `The solve command reads a TSPLIB coordinate file (and, optionally, a
starting tour file), runs the k-opt optimizer to a local optimum, and
prints the tour length before and after.

Example:
  kopt solve --tsp berlin52.tsp --kmax 5 --out berlin52.opt.tour`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve()
		},
	}
}

func runSolve() error {
	x, y, err := kopt.ReadCoordinateFile(solveTSPPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", solveTSPPath, err)
	}

	points, err := kopt.NewPointSet(x, y, kopt.DefaultMaxTreeDepth)
	if err != nil {
		return fmt.Errorf("building point set: %w", err)
	}

	var initial []int
	if solveTourPath != "" {
		initial, err = kopt.ReadTourFile(solveTourPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", solveTourPath, err)
		}
	} else {
		initial, err = kopt.GreedyNearestNeighborTour(points, 0)
		if err != nil {
			return fmt.Errorf("building initial tour: %w", err)
		}
	}

	opts := kopt.DefaultOptions()
	opts.KMax = solveKMax

	report, err := kopt.Optimize(points, initial, opts)
	if err != nil {
		return asInvariantError(err)
	}

	printVerbose("passes: %d, accepted moves: %d\n", report.Passes, report.Moves)
	fmt.Printf("initial length: %d\n", report.InitialLength)
	fmt.Printf("final length:   %d\n", report.FinalLength)

	if solveOutPath != "" {
		if err := kopt.WriteTourFile(solveOutPath, report.Tour); err != nil {
			return fmt.Errorf("writing %s: %w", solveOutPath, err)
		}
	}
	return nil
}
