package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/advent-go/advent/internal/input"
	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [year]",
	Short: "Re-run every puzzle with a cached input and compare answers",
	Long: `Re-run every puzzle whose input is cached and compare the answers with
the confirmed ones. Exits with status 1 when any answer changed or a solver
failed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		candidates := puzzles.All()
		if len(args) == 1 {
			var err error
			if candidates, err = selectPuzzles(args, false); err != nil {
				return err
			}
		}

		loader := newLoader()
		var targets []puzzle.Puzzle
		for _, p := range candidates {
			if loader.Cached(p.ID) {
				targets = append(targets, p)
			}
		}

		w := cmd.OutOrStdout()
		if len(targets) == 0 {
			fmt.Fprintln(w, "No cached inputs to check (use 'advent fetch' to download some)")
			return nil
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		outcomes, err := newRunner(st).RunAll(ctx, targets, input.Options{})
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		counts := make(map[types.Verdict]int)
		for _, out := range outcomes {
			counts[out.Verdict]++
			var mark string
			switch out.Verdict {
			case types.VerdictMatch:
				mark = green("✓")
			case types.VerdictNew:
				mark = yellow("?")
			default:
				mark = red("✗")
			}
			fmt.Fprintf(w, "%s %s  %-8s  %v", mark, out.Puzzle.ID, out.Verdict, out.Duration.Round(time.Microsecond))
			switch {
			case out.Err != nil:
				fmt.Fprintf(w, "  %v", out.Err)
			case out.Verdict == types.VerdictMismatch:
				fmt.Fprintf(w, "  got %s / %s, want %s / %s",
					out.Result.PartOne, out.Result.PartTwo, out.Expected.PartOne, out.Expected.PartTwo)
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "\n%d checked: %d match, %d new, %d mismatch, %d failed\n", len(outcomes),
			counts[types.VerdictMatch], counts[types.VerdictNew], counts[types.VerdictMismatch], counts[types.VerdictFailed])

		if bad := counts[types.VerdictMismatch] + counts[types.VerdictFailed]; bad > 0 {
			return fmt.Errorf("%d puzzles did not match their confirmed answers", bad)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
