// Command advent runs Advent of Code solutions, caches puzzle inputs and
// keeps a history of answers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/advent-go/advent/internal/catalog"
	"github.com/advent-go/advent/internal/config"
	"github.com/advent-go/advent/internal/input"
	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/runner"
	"github.com/advent-go/advent/internal/storage"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	store  storage.Storage

	puzzles = catalog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent of Code solutions",
	Long: `Solve Advent of Code puzzles, download and cache their inputs, and
track which answers have been confirmed correct.

Configuration is read from advent.yaml, a .env file and ADVENT_* environment
variables. Set ADVENT_SESSION to your adventofcode.com session cookie to
download inputs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded", zap.Stringer("config", cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	closeStore()
	stop()

	if err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(1)
	}
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

// openStore opens the run history database on first use.
func openStore(ctx context.Context) (storage.Storage, error) {
	if store != nil {
		return store, nil
	}
	s, err := storage.NewStorage(ctx, &storage.Config{Path: cfg.DatabasePath})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store = s
	return store, nil
}

func closeStore() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil && logger != nil {
		logger.Warn("failed to close database", zap.Error(err))
	}
	store = nil
}

func newLoader() *input.Loader {
	return input.NewLoader(cfg, logger)
}

func newRunner(st storage.Storage) *runner.Runner {
	return runner.New(newLoader(), st, runner.Config{
		Timeout: cfg.Timeout,
		Workers: cfg.Workers,
	}, logger)
}

// selectPuzzles resolves command arguments: nothing means the latest puzzle
// (every puzzle with all), a year means that event, and a year and day or
// "year/day" means a single puzzle.
func selectPuzzles(args []string, all bool) ([]puzzle.Puzzle, error) {
	switch {
	case len(args) == 0 && all:
		return puzzles.All(), nil

	case len(args) == 0:
		p, err := puzzles.Latest()
		if err != nil {
			return nil, err
		}
		return []puzzle.Puzzle{p}, nil

	case len(args) == 1 && !strings.Contains(args[0], "/"):
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", args[0])
		}
		selected := puzzles.Year(year)
		if len(selected) == 0 {
			return nil, fmt.Errorf("%w: no puzzles for %d", puzzle.ErrNotFound, year)
		}
		return selected, nil
	}

	p, err := lookupPuzzle(args)
	if err != nil {
		return nil, err
	}
	return []puzzle.Puzzle{p}, nil
}

func lookupPuzzle(args []string) (puzzle.Puzzle, error) {
	id, err := puzzle.ParseID(args...)
	if err != nil {
		return puzzle.Puzzle{}, err
	}
	return puzzles.Lookup(id)
}
