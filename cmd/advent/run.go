package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/advent-go/advent/internal/answer"
	"github.com/advent-go/advent/internal/input"
	"github.com/advent-go/advent/internal/storage"
)

var (
	runInput   string
	runExample bool
	runAll     bool
)

var runCmd = &cobra.Command{
	Use:   "run [year] [day]",
	Short: "Solve puzzles and print their answers",
	Long: `Solve one or more puzzles and print both answers.

Without arguments the most recent puzzle is solved. A year alone solves every
puzzle of that event.

Examples:
  # Solve 2024 day 6 with the cached or downloaded input
  advent run 2024 6

  # Check a solver against the example from the puzzle statement
  advent run 2024/06 --example

  # Solve with an input file, or "-" for stdin
  advent run 2024 6 --input day06.txt

  # Solve everything
  advent run --all`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		targets, err := selectPuzzles(args, runAll)
		if err != nil {
			return err
		}
		if runInput != "" && len(targets) > 1 {
			return fmt.Errorf("--input requires a single puzzle, got %d", len(targets))
		}

		var st storage.Storage
		if !runExample {
			if st, err = openStore(ctx); err != nil {
				return err
			}
		}

		outcomes, err := newRunner(st).RunAll(ctx, targets, input.Options{Path: runInput, Example: runExample})

		w := cmd.OutOrStdout()
		printer := answer.NewPrinter(w)
		red := color.New(color.FgRed).SprintFunc()
		failed := 0
		for i, out := range outcomes {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if out.Err != nil {
				failed++
				fmt.Fprintf(w, "%s %s: %v\n", red("✗"), out.Puzzle.ID, out.Err)
				continue
			}
			if err := printer.Print(answer.Solution{ID: out.Puzzle.ID, Result: out.Result}); err != nil {
				return err
			}
			if err := printer.Verdict(out.Verdict, out.Duration); err != nil {
				return err
			}
		}

		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d puzzles failed", failed, len(outcomes))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Read the input from a file (- for stdin)")
	runCmd.Flags().BoolVarP(&runExample, "example", "e", false, "Use the example from the puzzle statement")
	runCmd.Flags().BoolVarP(&runAll, "all", "a", false, "Solve every puzzle")
	runCmd.MarkFlagsMutuallyExclusive("input", "example")

	rootCmd.AddCommand(runCmd)
}
