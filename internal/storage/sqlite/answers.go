package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/types"
)

// ConfirmAnswer stores the answers for a puzzle input, replacing any
// previously confirmed ones.
func (s *SQLiteStorage) ConfirmAnswer(ctx context.Context, answer *types.Answer) error {
	if answer.ConfirmedAt.IsZero() {
		answer.ConfirmedAt = s.now()
	}
	if err := answer.Validate(); err != nil {
		return fmt.Errorf("invalid answer: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO answers (year, day, input_hash, part_one, part_two, confirmed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (year, day, input_hash) DO UPDATE SET
			part_one = excluded.part_one,
			part_two = excluded.part_two,
			confirmed_at = excluded.confirmed_at
	`,
		answer.Puzzle.Year, answer.Puzzle.Day, answer.InputHash,
		answer.PartOne, answer.PartTwo, toMillis(answer.ConfirmedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to confirm answer: %w", err)
	}
	return nil
}

// GetAnswer returns the confirmed answers for a puzzle input.
func (s *SQLiteStorage) GetAnswer(ctx context.Context, id puzzle.ID, inputHash string) (*types.Answer, error) {
	answer := &types.Answer{Puzzle: id, InputHash: inputHash}
	var confirmedAt int64

	err := s.db.QueryRowContext(ctx, `
		SELECT part_one, part_two, confirmed_at
		FROM answers
		WHERE year = ? AND day = ? AND input_hash = ?
	`, id.Year, id.Day, inputHash).Scan(&answer.PartOne, &answer.PartTwo, &confirmedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no confirmed answer for %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	answer.ConfirmedAt = fromMillis(confirmedAt)
	return answer, nil
}
