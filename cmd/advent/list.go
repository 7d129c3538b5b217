package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [year]",
	Short: "List the solved puzzles",
	Long:  `List every puzzle with a solver, marking those whose input is cached.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := puzzles.All()
		if len(args) == 1 {
			var err error
			if selected, err = selectPuzzles(args, false); err != nil {
				return err
			}
		}

		loader := newLoader()
		cyan := color.New(color.FgCyan).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()
		w := cmd.OutOrStdout()

		year := 0
		for _, p := range selected {
			if p.ID.Year != year {
				year = p.ID.Year
				fmt.Fprintf(w, "%s\n", cyan(year))
			}
			cached := ""
			if loader.Cached(p.ID) {
				cached = gray(" (input cached)")
			}
			fmt.Fprintf(w, "  %s  %s%s\n", p.ID, p.Title, cached)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
