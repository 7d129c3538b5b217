package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <year> <day>",
	Short: "Download and cache a puzzle input",
	Long: `Download the input of a puzzle from adventofcode.com and cache it in the
input directory. Requires ADVENT_SESSION.

Examples:
  advent fetch 2024 6
  advent fetch 2024/06 --force`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupPuzzle(args)
		if err != nil {
			return err
		}

		loader := newLoader()
		path := loader.CachePath(p.ID)
		w := cmd.OutOrStdout()
		if loader.Cached(p.ID) && !fetchForce {
			fmt.Fprintf(w, "Input for %s is already cached at %s (use --force to download again)\n", p.ID, path)
			return nil
		}

		data, err := loader.Fetch(cmd.Context(), p.ID)
		if err != nil {
			return err
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(w, "%s Saved input for %s to %s (%d bytes)\n", green("✓"), p.ID, path, len(data))
		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "Download even when the input is cached")
	rootCmd.AddCommand(fetchCmd)
}
