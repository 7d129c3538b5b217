// Package day02 solves 2024 day 2, "Red-Nosed Reports": decide which reactor
// reports are safe.
package day02

import (
	"cmp"
	"context"
	_ "embed"
	"fmt"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(2, 4)

// ParseReports reads one report of levels per line.
func ParseReports(input string) ([][]int, error) {
	lines := puzzle.Lines(input)
	reports := make([][]int, 0, len(lines))
	for i, line := range lines {
		levels, err := puzzle.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", i+1, err)
		}
		if len(levels) < 2 {
			return nil, fmt.Errorf("report %d: need at least two levels, got %d", i+1, len(levels))
		}
		reports = append(reports, levels)
	}
	return reports, nil
}

func isLevelSafe(level, next, direction int) bool {
	// Change in direction
	if cmp.Compare(level, next) != direction {
		return false
	}
	distance := max(level-next, next-level)
	return distance >= 1 && distance <= 3
}

// IsSafe reports whether the levels move in one direction by 1 to 3 at each
// step.
func IsSafe(report []int) bool {
	if len(report) < 2 {
		return false
	}
	direction := cmp.Compare(report[0], report[1])
	for i := 0; i < len(report)-1; i++ {
		if !isLevelSafe(report[i], report[i+1], direction) {
			return false
		}
	}
	return true
}

// IsMostlySafe reports whether the report is safe once at most one level is
// removed by the problem dampener.
func IsMostlySafe(report []int) bool {
	if IsSafe(report) {
		return true
	}
	dampened := make([]int, 0, len(report)-1)
	for i := range report {
		dampened = append(dampened[:0], report[:i]...)
		dampened = append(dampened, report[i+1:]...)
		if IsSafe(dampened) {
			return true
		}
	}
	return false
}

func count(reports [][]int, safe func([]int) bool) int {
	n := 0
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	reports, err := ParseReports(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(count(reports, IsSafe), count(reports, IsMostlySafe)), nil
}
