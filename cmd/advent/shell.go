package main

import (
	"github.com/spf13/cobra"

	"github.com/advent-go/advent/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell",
	Long: `Start an interactive shell for running puzzles and browsing history.

Type 'help' in the shell for available commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		sh, err := shell.New(&shell.Config{
			Catalog: puzzles,
			Runner:  newRunner(st),
			Store:   st,
			Logger:  logger,
		})
		if err != nil {
			return err
		}
		return sh.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
