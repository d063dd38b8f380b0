package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clue-solve/nonogram/internal/common"
	"github.com/clue-solve/nonogram/internal/display"
	"github.com/clue-solve/nonogram/internal/input"
	"github.com/clue-solve/nonogram/internal/solver"
)

var (
	verbose      bool
	htmlInput    bool
	simpleOutput bool
	intervalMs   int
)

// rootCmd represents the nonogram-solver CLI: given a puzzle definition
// file, it solves it and prints the result.
var rootCmd = &cobra.Command{
	Use:   "nonogram [path]",
	Short: "Solve a nonogram puzzle by constraint propagation",
	Long: `nonogram reads a puzzle's row and column hints and narrows the board
to a solution using pure constraint propagation, with no guessing: a
puzzle that has more than one valid solution will stop short of fully
determining every cell rather than pick one arbitrarily.

Puzzles can be given as a plain-text hint file, or as an HTML table
scraped from a puzzle site (--html).`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose
		return nil
	},
	RunE: runSolve,
}

// Execute runs the root command, exiting with status 1 if it returns an
// error. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics")
	rootCmd.Flags().BoolVar(&htmlInput, "html", false, "parse the input as a scraped HTML table instead of plain text")
	rootCmd.Flags().BoolVar(&simpleOutput, "simple", false, "use the plain line-oriented display instead of the full-screen one")
	rootCmd.Flags().IntVarP(&intervalMs, "interval", "i", 0, "milliseconds to pause after each line redraw, for watching the solve animate")
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	common.Verbose("parsing %s (html=%v)", path, htmlInput)

	parse := input.ParseText
	if htmlInput {
		parse = input.ParseHTML
	}
	rows, cols, rowHints, colHints, err := parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	common.Verbose("parsed %dx%d board", rows, cols)

	var sink display.Sink
	if simpleOutput {
		sink = display.NewSimple(os.Stdout, 9991)
	} else {
		sink = display.NewConsole(time.Duration(intervalMs) * time.Millisecond)
	}

	s, err := solver.New(rows, cols, rowHints, colHints, sink)
	if err != nil {
		return fmt.Errorf("building solver: %w", err)
	}

	if err := s.Solve(context.Background()); err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	if !s.IsSolved() {
		return fmt.Errorf("puzzle is under-constrained: some cells remain undetermined")
	}
	return nil
}
