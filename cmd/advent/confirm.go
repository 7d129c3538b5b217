package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/advent-go/advent/internal/storage"
	"github.com/advent-go/advent/internal/types"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm <year> <day>",
	Short: "Mark the latest answers of a puzzle as correct",
	Long: `Store the answers of the latest successful run of a puzzle as confirmed
for that input. Later runs on the same input are judged against them.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := lookupPuzzle(args)
		if err != nil {
			return err
		}
		st, err := openStore(ctx)
		if err != nil {
			return err
		}

		run, err := st.LatestRun(ctx, p.ID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no successful run of %s to confirm (run 'advent run %d %d' first)", p.ID, p.ID.Year, p.ID.Day)
		}
		if err != nil {
			return fmt.Errorf("failed to load latest run: %w", err)
		}

		confirmed := &types.Answer{
			Puzzle:    p.ID,
			InputHash: run.InputHash,
			PartOne:   run.PartOne,
			PartTwo:   run.PartTwo,
		}
		if err := st.ConfirmAnswer(ctx, confirmed); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s Confirmed %s: part one %q, part two %q\n",
			green("✓"), p.ID, run.PartOne, run.PartTwo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(confirmCmd)
}
