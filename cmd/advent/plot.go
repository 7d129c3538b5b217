package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/advent-go/advent/internal/input"
	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/years/y2024/day14"
)

var (
	plotInput   string
	plotSeconds int
)

var plotCmd = &cobra.Command{
	Use:   "plot <output>",
	Short: "Draw the 2024 day 14 robots when they form a tree",
	Long: `Find the second at which the 2024 day 14 robots draw a picture and save
that frame as an image. The format follows the file extension (png, svg, pdf).

Examples:
  advent plot tree.png
  advent plot frame.svg --seconds 100`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := puzzles.Lookup(puzzle.ID{Year: 2024, Day: 14})
		if err != nil {
			return err
		}
		data, _, err := newLoader().Load(ctx, p, input.Options{Path: plotInput})
		if err != nil {
			return err
		}
		robots, err := day14.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse robots: %w", err)
		}

		room := day14.RoomFor(robots)
		seconds := plotSeconds
		if !cmd.Flags().Changed("seconds") {
			if seconds, err = day14.FindTree(ctx, robots, room); err != nil {
				return err
			}
		}
		if seconds < 0 {
			return fmt.Errorf("seconds must be non-negative, got %d", seconds)
		}

		if err := day14.Render(day14.Frame(robots, seconds, room), room, seconds, args[0]); err != nil {
			return err
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s Saved the frame after %d seconds to %s\n", green("✓"), seconds, args[0])
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotInput, "input", "i", "", "Read the input from a file (- for stdin)")
	plotCmd.Flags().IntVar(&plotSeconds, "seconds", 0, "Draw this frame instead of searching for the tree")
	rootCmd.AddCommand(plotCmd)
}
