package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/advent-go/advent/internal/puzzle"
)

func TestRunValidate(t *testing.T) {
	valid := func() Run {
		return Run{
			ID:        "run-1",
			Puzzle:    puzzle.ID{Year: 2024, Day: 6},
			InputHash: "abc",
			PartOne:   "41",
			Duration:  time.Millisecond,
			Verdict:   VerdictNew,
		}
	}

	tests := []struct {
		name    string
		modify  func(*Run)
		wantErr string
	}{
		{"valid", func(*Run) {}, ""},
		{"bad day", func(r *Run) { r.Puzzle.Day = 0 }, "invalid puzzle"},
		{"missing hash", func(r *Run) { r.InputHash = "" }, "input_hash is required"},
		{"negative duration", func(r *Run) { r.Duration = -1 }, "duration must be non-negative"},
		{"unknown verdict", func(r *Run) { r.Verdict = "maybe" }, `invalid verdict: "maybe"`},
		{"failed without error", func(r *Run) { r.Verdict = VerdictFailed }, "must carry an error"},
		{"failed with error", func(r *Run) { r.Verdict, r.Error = VerdictFailed, "boom" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.modify(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAnswerJudge(t *testing.T) {
	a := Answer{Puzzle: puzzle.ID{Year: 2024, Day: 6}, InputHash: "abc", PartOne: "41", PartTwo: "6"}

	assert.Equal(t, VerdictMatch, a.Judge(puzzle.Answers(41, 6)))
	assert.Equal(t, VerdictMismatch, a.Judge(puzzle.Answers(41, 7)))
	assert.Equal(t, VerdictMismatch, a.Judge(puzzle.Answers(40, 6)))

	partial := Answer{Puzzle: a.Puzzle, InputHash: "abc", PartOne: "41"}
	assert.Equal(t, VerdictMatch, partial.Judge(puzzle.Answers(41, 999)))
}

func TestAnswerValidate(t *testing.T) {
	a := Answer{Puzzle: puzzle.ID{Year: 2024, Day: 6}, InputHash: "abc"}
	assert.ErrorContains(t, a.Validate(), "at least one part")

	a.PartTwo = "6"
	assert.NoError(t, a.Validate())
}

func TestVerdictIsValid(t *testing.T) {
	for _, v := range []Verdict{VerdictNew, VerdictMatch, VerdictMismatch, VerdictFailed} {
		assert.True(t, v.IsValid(), v)
	}
	assert.False(t, Verdict("").IsValid())
}
