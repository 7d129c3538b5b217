package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/types"
)

// DefaultRunLimit caps RecentRuns when the filter sets no limit.
const DefaultRunLimit = 20

const runColumns = `id, year, day, input_hash, source, part_one, part_two,
	duration_ms, error, verdict, created_at`

// RecordRun stores a run. A missing ID or creation time is filled in.
func (s *SQLiteStorage) RecordRun(ctx context.Context, run *types.Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	if err := run.Validate(); err != nil {
		return fmt.Errorf("invalid run: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID, run.Puzzle.Year, run.Puzzle.Day, run.InputHash, run.Source,
		run.PartOne, run.PartTwo, run.Duration.Milliseconds(), run.Error,
		string(run.Verdict), toMillis(run.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// RecentRuns returns runs matching filter, newest first.
func (s *SQLiteStorage) RecentRuns(ctx context.Context, filter types.RunFilter) ([]*types.Run, error) {
	var where []string
	var args []any
	if filter.Year != 0 {
		where = append(where, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.Day != 0 {
		where = append(where, "day = ?")
		args = append(args, filter.Day)
	}
	if filter.Verdict != "" {
		where = append(where, "verdict = ?")
		args = append(args, string(filter.Verdict))
	}

	query := `SELECT ` + runColumns + ` FROM runs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultRunLimit
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}
	return runs, nil
}

// LatestRun returns the most recent successful run of a puzzle.
func (s *SQLiteStorage) LatestRun(ctx context.Context, id puzzle.ID) (*types.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+runColumns+` FROM runs
		WHERE year = ? AND day = ? AND verdict != ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, id.Year, id.Day, string(types.VerdictFailed))

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no successful run of %s", ErrNotFound, id)
	}
	return run, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*types.Run, error) {
	var (
		run        types.Run
		verdict    string
		durationMs int64
		createdAt  int64
	)
	err := row.Scan(
		&run.ID,
		&run.Puzzle.Year,
		&run.Puzzle.Day,
		&run.InputHash,
		&run.Source,
		&run.PartOne,
		&run.PartTwo,
		&durationMs,
		&run.Error,
		&verdict,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	run.Verdict = types.Verdict(verdict)
	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CreatedAt = fromMillis(createdAt)
	return &run, nil
}
