package types

import (
	"fmt"
	"time"

	"github.com/advent-go/advent/internal/puzzle"
)

// Verdict compares a run's answers with the confirmed ones.
type Verdict string

const (
	// VerdictNew means there is no confirmed answer to compare with.
	VerdictNew Verdict = "new"
	// VerdictMatch means both parts equal the confirmed answers.
	VerdictMatch Verdict = "match"
	// VerdictMismatch means at least one part differs from its confirmed
	// answer.
	VerdictMismatch Verdict = "mismatch"
	// VerdictFailed means the solver returned an error, panicked or timed out.
	VerdictFailed Verdict = "failed"
)

// IsValid checks if the verdict value is valid
func (v Verdict) IsValid() bool {
	switch v {
	case VerdictNew, VerdictMatch, VerdictMismatch, VerdictFailed:
		return true
	}
	return false
}

// Run is one recorded solver execution.
type Run struct {
	ID        string        `json:"id"`
	Puzzle    puzzle.ID     `json:"puzzle"`
	InputHash string        `json:"input_hash"`
	Source    string        `json:"source"`
	PartOne   string        `json:"part_one"`
	PartTwo   string        `json:"part_two"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
	Verdict   Verdict       `json:"verdict"`
	CreatedAt time.Time     `json:"created_at"`
}

// Validate checks if the run has valid field values
func (r *Run) Validate() error {
	if err := r.Puzzle.Validate(); err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}
	if r.InputHash == "" {
		return fmt.Errorf("input_hash is required")
	}
	if r.Duration < 0 {
		return fmt.Errorf("duration must be non-negative (got %v)", r.Duration)
	}
	if !r.Verdict.IsValid() {
		return fmt.Errorf("invalid verdict: %q", r.Verdict)
	}
	if r.Verdict == VerdictFailed && r.Error == "" {
		return fmt.Errorf("failed run must carry an error")
	}
	return nil
}

// Result returns the run's answers.
func (r *Run) Result() puzzle.Result {
	return puzzle.Result{PartOne: r.PartOne, PartTwo: r.PartTwo}
}

// Answer holds the answers confirmed correct for one puzzle input.
type Answer struct {
	Puzzle      puzzle.ID `json:"puzzle"`
	InputHash   string    `json:"input_hash"`
	PartOne     string    `json:"part_one"`
	PartTwo     string    `json:"part_two"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// Validate checks if the answer has valid field values
func (a *Answer) Validate() error {
	if err := a.Puzzle.Validate(); err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}
	if a.InputHash == "" {
		return fmt.Errorf("input_hash is required")
	}
	if a.PartOne == "" && a.PartTwo == "" {
		return fmt.Errorf("answer must confirm at least one part")
	}
	return nil
}

// Judge compares result with the confirmed answer. A part the answer leaves
// empty is not compared.
func (a *Answer) Judge(result puzzle.Result) Verdict {
	if a.PartOne != "" && a.PartOne != result.PartOne {
		return VerdictMismatch
	}
	if a.PartTwo != "" && a.PartTwo != result.PartTwo {
		return VerdictMismatch
	}
	return VerdictMatch
}

// RunFilter narrows run history queries. Zero fields match everything.
type RunFilter struct {
	Year    int
	Day     int
	Verdict Verdict
	Limit   int
}
