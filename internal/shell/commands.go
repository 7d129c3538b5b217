package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/advent-go/advent/internal/answer"
	"github.com/advent-go/advent/internal/input"
	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/types"
)

func (s *Shell) registerCommands() {
	s.register([]string{"run"}, "run [year day] [example]", "Solve a puzzle, the latest by default", s.cmdRun)
	s.register([]string{"list", "ls"}, "list [year]", "List available puzzles", s.cmdList)
	s.register([]string{"history"}, "history [n]", "Show recent runs", s.cmdHistory)
	s.register([]string{"help", "?"}, "help", "Show this help message", s.cmdHelp)
	s.register([]string{"exit", "quit"}, "exit", "Leave the shell", s.cmdExit)
}

func (s *Shell) cmdRun(ctx context.Context, args []string) error {
	var opts input.Options
	if n := len(args); n > 0 && args[n-1] == "example" {
		opts.Example = true
		args = args[:n-1]
	}

	var p puzzle.Puzzle
	var err error
	if len(args) == 0 {
		p, err = s.catalog.Latest()
	} else {
		var id puzzle.ID
		if id, err = puzzle.ParseID(args...); err != nil {
			return err
		}
		p, err = s.catalog.Lookup(id)
	}
	if err != nil {
		return err
	}

	out := s.runner.Run(ctx, p, opts)
	if out.Err != nil {
		return out.Err
	}
	if err := s.printer.Print(answer.Solution{ID: p.ID, Result: out.Result}); err != nil {
		return err
	}
	return s.printer.Verdict(out.Verdict, out.Duration)
}

func (s *Shell) cmdList(_ context.Context, args []string) error {
	puzzles := s.catalog.All()
	if len(args) > 0 {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		puzzles = s.catalog.Year(year)
		if len(puzzles) == 0 {
			return fmt.Errorf("no puzzles for %d", year)
		}
	}

	green := color.New(color.FgGreen).SprintFunc()
	for _, p := range puzzles {
		fmt.Fprintf(s.out, "  %s  %s\n", green(p.ID), p.Title)
	}
	return nil
}

func (s *Shell) cmdHistory(ctx context.Context, args []string) error {
	if s.store == nil {
		return fmt.Errorf("history is unavailable without a database")
	}
	filter := types.RunFilter{Limit: 10}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("limit must be a positive number, got %q", args[0])
		}
		filter.Limit = n
	}

	runs, err := s.store.RecentRuns(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(s.out, "No runs recorded yet")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(s.out, "  %s  %-8s  %-8s  %s  %s\n",
			r.Puzzle, r.Verdict, r.Source, r.CreatedAt.Format("2006-01-02 15:04"), r.Duration)
	}
	return nil
}

func (s *Shell) cmdHelp(_ context.Context, _ []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(s.out, "\n%s\n\n", cyan("Available Commands:"))

	seen := make(map[*command]bool)
	for _, name := range []string{"run", "list", "history", "help", "exit"} {
		c := s.commands[name]
		if seen[c] {
			continue
		}
		seen[c] = true
		fmt.Fprintf(s.out, "  %s  %s\n", green(fmt.Sprintf("%-24s", c.usage)), c.desc)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.TrimSpace(`
Examples:
  run 2024 6
  run 2024/06 example
  list 2024`))
	fmt.Fprintln(s.out)
	return nil
}

func (s *Shell) cmdExit(_ context.Context, _ []string) error {
	fmt.Fprintln(s.out, "Goodbye!")
	return errExit
}
