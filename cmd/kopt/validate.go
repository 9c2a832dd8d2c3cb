package main

import (
	"fmt"

	"github.com/gokopt/kopt/kopt"
	"github.com/spf13/cobra"
)

var (
	validateTSPPath  string
	validateTourPath string
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateTSPPath, "tsp", "", "TSPLIB coordinate file (required)")
	cmd.Flags().StringVar(&validateTourPath, "tour", "", "TSPLIB tour file (required)")
	_ = cmd.MarkFlagRequired("tsp")
	_ = cmd.MarkFlagRequired("tour")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that a tour file is a valid Hamiltonian cycle over a point set",
		Long: `The validate command reads a TSPLIB coordinate file and a tour file
and reports whether the tour visits every point exactly once and forms
a single cycle.

Example:
  kopt validate --tsp berlin52.tsp --tour berlin52.opt.tour`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

func runValidate() error {
	x, y, err := kopt.ReadCoordinateFile(validateTSPPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", validateTSPPath, err)
	}

	points, err := kopt.NewPointSet(x, y, kopt.DefaultMaxTreeDepth)
	if err != nil {
		return fmt.Errorf("building point set: %w", err)
	}

	order, err := kopt.ReadTourFile(validateTourPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", validateTourPath, err)
	}

	tour, err := kopt.NewTour(points, order)
	if err != nil {
		return asInvariantError(err)
	}

	if err := tour.Validate(); err != nil {
		return asInvariantError(err)
	}

	fmt.Printf("valid: tour visits %d points, length %d\n", tour.Size(), tour.TotalLength())
	return nil
}
