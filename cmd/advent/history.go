package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/advent-go/advent/internal/storage/sqlite"
	"github.com/advent-go/advent/internal/types"
)

var (
	historyLimit   int
	historyYear    int
	historyVerdict string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Show recorded runs, most recent first.

Examples:
  advent history --limit 5
  advent history --year 2024 --verdict mismatch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if historyLimit < 1 {
			return fmt.Errorf("limit must be at least 1, got %d", historyLimit)
		}
		filter := types.RunFilter{
			Year:    historyYear,
			Verdict: types.Verdict(historyVerdict),
			Limit:   historyLimit,
		}
		if filter.Verdict != "" && !filter.Verdict.IsValid() {
			return fmt.Errorf("verdict must be one of new, match, mismatch, failed, got %q", historyVerdict)
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		runs, err := st.RecentRuns(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(w, "No runs recorded")
			return nil
		}

		gray := color.New(color.FgHiBlack).SprintFunc()
		fmt.Fprintf(w, "%-16s  %-7s  %-8s  %-8s  %-16s  %-16s  %s\n",
			"WHEN", "PUZZLE", "VERDICT", "SOURCE", "PART ONE", "PART TWO", "DURATION")
		for _, r := range runs {
			fmt.Fprintf(w, "%-16s  %-7s  %-8s  %-8s  %-16s  %-16s  %v\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Puzzle, r.Verdict, r.Source,
				r.PartOne, r.PartTwo, r.Duration)
			if r.Error != "" {
				fmt.Fprintf(w, "  %s\n", gray(r.Error))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", sqlite.DefaultRunLimit, "Maximum number of runs to show")
	historyCmd.Flags().IntVar(&historyYear, "year", 0, "Only show runs of one event")
	historyCmd.Flags().StringVar(&historyVerdict, "verdict", "", "Only show runs with this verdict")
	rootCmd.AddCommand(historyCmd)
}
