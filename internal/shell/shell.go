// Package shell provides the interactive advent prompt.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/advent-go/advent/internal/answer"
	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/runner"
	"github.com/advent-go/advent/internal/storage"
)

// errExit is returned by the exit command to end the loop.
var errExit = errors.New("exit")

// CommandHandler handles a specific command
type CommandHandler func(ctx context.Context, args []string) error

type command struct {
	usage   string
	desc    string
	handler CommandHandler
}

// Shell is the interactive prompt.
type Shell struct {
	catalog *puzzle.Catalog
	runner  *runner.Runner
	store   storage.Storage
	logger  *zap.Logger

	out     io.Writer
	stdin   io.ReadCloser
	printer *answer.Printer

	commands map[string]*command
}

// Config holds shell configuration
type Config struct {
	Catalog *puzzle.Catalog
	Runner  *runner.Runner
	// Store is optional; without it history is unavailable.
	Store  storage.Storage
	Logger *zap.Logger

	// Stdin and Stdout default to the process streams. A non-nil Stdin is
	// read as plain lines without terminal handling.
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// New creates a new shell
func New(cfg *Config) (*Shell, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg.Runner == nil {
		return nil, fmt.Errorf("runner is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := cfg.Stdout
	var printer *answer.Printer
	if out == nil {
		out = os.Stdout
		printer = answer.NewPrinter(out)
	} else {
		printer = answer.Plain(out)
	}

	s := &Shell{
		catalog:  cfg.Catalog,
		runner:   cfg.Runner,
		store:    cfg.Store,
		logger:   logger,
		out:      out,
		stdin:    cfg.Stdin,
		printer:  printer,
		commands: make(map[string]*command),
	}
	s.registerCommands()
	return s, nil
}

// Run starts the read-eval loop and returns when the user exits or input
// ends.
func (s *Shell) Run(ctx context.Context) error {
	cyan := color.New(color.FgCyan).SprintFunc()

	rlCfg := &readline.Config{
		Prompt:            cyan("advent> "),
		AutoComplete:      s.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            s.out,
	}
	if s.stdin != nil {
		rlCfg.Prompt = "advent> "
		rlCfg.Stdin = s.stdin
		rlCfg.FuncIsTerminal = func() bool { return false }
		rlCfg.FuncMakeRaw = func() error { return nil }
		rlCfg.FuncExitRaw = func() error { return nil }
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.printWelcome()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return nil
			}
			return err
		}

		if err := s.Execute(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(s.out, "%s %v\n", red("Error:"), err)
		}
	}
}

// Execute runs a single command line.
func (s *Shell) Execute(ctx context.Context, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	cmd, ok := s.commands[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (type 'help' for a list)", parts[0])
	}
	s.logger.Debug("shell command", zap.Strings("args", parts))
	return cmd.handler(ctx, parts[1:])
}

func (s *Shell) register(names []string, usage, desc string, h CommandHandler) {
	c := &command{usage: usage, desc: desc, handler: h}
	for _, name := range names {
		s.commands[name] = c
	}
}

// completer offers command names and the years in the catalog.
func (s *Shell) completer() *readline.PrefixCompleter {
	var years []readline.PrefixCompleterInterface
	for _, y := range s.catalog.Years() {
		years = append(years, readline.PcItem(fmt.Sprint(y)))
	}

	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		switch name {
		case "run", "list":
			items = append(items, readline.PcItem(name, years...))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

func (s *Shell) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(s.out, "\n%s\n", cyan("Advent of Code solutions"))
	fmt.Fprintf(s.out, "%d puzzles across %d events\n\n", s.catalog.Len(), len(s.catalog.Years()))
	fmt.Fprintln(s.out, "Type 'help' for available commands, 'exit' to quit")
	fmt.Fprintln(s.out)
}
