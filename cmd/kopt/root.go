package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "kopt",
	Short:   "k-opt local search for the Euclidean TSP",
	Version: "0.1.0",
	Long: `kopt runs a variable-depth k-opt local-search optimizer over a
TSPLIB coordinate file, optionally starting from a given tour, and
reports the resulting tour and its length.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pass and accepted-move counts")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// printVerbose writes a line to stdout when --verbose is set.
func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
