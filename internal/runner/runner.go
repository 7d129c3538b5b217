// Package runner executes puzzle solvers with a timeout, records each run and
// judges the answers against confirmed or example answers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/advent-go/advent/internal/input"
	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/storage"
	"github.com/advent-go/advent/internal/types"
)

// Loader resolves the input of a puzzle.
type Loader interface {
	Load(ctx context.Context, p puzzle.Puzzle, opts input.Options) (string, input.Source, error)
}

// Outcome is the result of running one puzzle.
type Outcome struct {
	Puzzle   puzzle.Puzzle
	Result   puzzle.Result
	Source   input.Source
	Duration time.Duration
	Verdict  types.Verdict
	// Expected holds the answers the result was judged against, nil when
	// there were none.
	Expected *puzzle.Result
	// Run is the recorded history entry, nil when nothing was recorded.
	Run *types.Run
	Err error
}

// Config controls how puzzles are run.
type Config struct {
	// Timeout limits a single solver call.
	Timeout time.Duration
	// Workers bounds how many puzzles RunAll runs at once.
	Workers int
}

// Runner runs puzzles.
type Runner struct {
	loader Loader
	store  storage.Storage
	cfg    Config
	logger *zap.Logger
}

// New creates a runner. store may be nil, in which case nothing is recorded
// and every non-example run is judged new. A nil logger discards output.
func New(loader Loader, store storage.Storage, cfg Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Runner{loader: loader, store: store, cfg: cfg, logger: logger}
}

// Run loads the input for p, solves it and judges the answers. Failures are
// reported in the outcome rather than returned.
func (r *Runner) Run(ctx context.Context, p puzzle.Puzzle, opts input.Options) Outcome {
	out := Outcome{Puzzle: p}
	log := r.logger.With(zap.Stringer("puzzle", p.ID))

	data, src, err := r.loader.Load(ctx, p, opts)
	if err != nil {
		out.Verdict, out.Err = types.VerdictFailed, fmt.Errorf("failed to load input: %w", err)
		log.Warn("input unavailable", zap.Error(err))
		return out
	}
	out.Source = src

	start := time.Now()
	out.Result, out.Err = r.solve(ctx, p, data)
	out.Duration = time.Since(start)

	if out.Err != nil {
		out.Verdict = types.VerdictFailed
		log.Warn("solver failed", zap.Error(out.Err), zap.Duration("duration", out.Duration))
	} else {
		out.Verdict, out.Expected = r.judge(ctx, p, src, data, out.Result)
		log.Debug("solved", zap.Duration("duration", out.Duration), zap.String("verdict", string(out.Verdict)))
	}

	if src != input.SourceExample && r.store != nil {
		run := &types.Run{
			Puzzle:    p.ID,
			InputHash: storage.HashInput(data),
			Source:    string(src),
			PartOne:   out.Result.PartOne,
			PartTwo:   out.Result.PartTwo,
			Duration:  out.Duration,
			Verdict:   out.Verdict,
		}
		if out.Err != nil {
			run.Error = out.Err.Error()
		}
		if err := r.store.RecordRun(ctx, run); err != nil {
			log.Error("failed to record run", zap.Error(err))
		} else {
			out.Run = run
		}
	}
	return out
}

// RunAll runs puzzles concurrently, at most Workers at a time, and returns
// the outcomes in the order of puzzles. The error is non-nil only when ctx is
// cancelled.
func (r *Runner) RunAll(ctx context.Context, puzzles []puzzle.Puzzle, opts input.Options) ([]Outcome, error) {
	outcomes := make([]Outcome, len(puzzles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, p := range puzzles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = Outcome{Puzzle: p, Verdict: types.VerdictFailed, Err: err}
				return err
			}
			outcomes[i] = r.Run(gctx, p, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, ctx.Err()
}

// solve calls the solver on its own goroutine so a timeout is reported even
// when the solver does not watch its context. Panics become errors.
func (r *Runner) solve(ctx context.Context, p puzzle.Puzzle, data string) (puzzle.Result, error) {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	type answer struct {
		result puzzle.Result
		err    error
	}
	done := make(chan answer, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				r.logger.Debug("solver panic", zap.Stringer("puzzle", p.ID), zap.ByteString("stack", debug.Stack()))
				done <- answer{err: fmt.Errorf("solver panicked: %v", v)}
			}
		}()
		result, err := p.Solve(ctx, data)
		done <- answer{result, err}
	}()

	select {
	case a := <-done:
		if a.err != nil && errors.Is(a.err, context.DeadlineExceeded) {
			return a.result, fmt.Errorf("timed out after %v: %w", r.cfg.Timeout, a.err)
		}
		return a.result, a.err
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			return puzzle.Result{}, fmt.Errorf("timed out after %v: %w", r.cfg.Timeout, err)
		}
		return puzzle.Result{}, err
	}
}

// judge compares result with the example answers for example input and with
// the confirmed answers otherwise.
func (r *Runner) judge(ctx context.Context, p puzzle.Puzzle, src input.Source, data string, result puzzle.Result) (types.Verdict, *puzzle.Result) {
	if src == input.SourceExample {
		expected := p.ExampleAnswers
		a := types.Answer{PartOne: expected.PartOne, PartTwo: expected.PartTwo}
		return a.Judge(result), &expected
	}
	if r.store == nil {
		return types.VerdictNew, nil
	}

	answer, err := r.store.GetAnswer(ctx, p.ID, storage.HashInput(data))
	if errors.Is(err, storage.ErrNotFound) {
		return types.VerdictNew, nil
	}
	if err != nil {
		r.logger.Warn("failed to look up confirmed answer", zap.Stringer("puzzle", p.ID), zap.Error(err))
		return types.VerdictNew, nil
	}
	expected := puzzle.Result{PartOne: answer.PartOne, PartTwo: answer.PartTwo}
	return answer.Judge(result), &expected
}
