// Package day07 solves 2024 day 7, "Bridge Repair": find operators that make
// each calibration equation true.
package day07

import (
	"context"
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(3749, 11387)

// Equation is a test value and the numbers that must combine to it.
type Equation struct {
	Target  int
	Numbers []int
}

func Parse(input string) ([]Equation, error) {
	var equations []Equation
	for i, line := range puzzle.Lines(input) {
		target, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':' in %q", i+1, line)
		}
		t, err := strconv.Atoi(target)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		numbers, err := puzzle.Ints(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(numbers) == 0 {
			return nil, fmt.Errorf("line %d: equation has no numbers", i+1)
		}
		if t < 0 || slices.Min(numbers) < 0 {
			return nil, fmt.Errorf("line %d: values must be non-negative, got %q", i+1, line)
		}
		equations = append(equations, Equation{Target: t, Numbers: numbers})
	}
	return equations, nil
}

// Operator combines the running total with the next number.
type Operator func(a, b int) int

func add(a, b int) int { return a + b }
func mul(a, b int) int { return a * b }

// concat joins the decimal digits of a and b.
func concat(a, b int) int {
	shift := 10
	for b >= shift {
		shift *= 10
	}
	return a*shift + b
}

var (
	basic    = []Operator{add, mul}
	extended = []Operator{add, mul, concat}
)

// Solvable reports whether some choice of operators, evaluated left to right,
// produces the target. No operator lowers a total when every remaining
// number is at least 1, so only then are branches that overshoot pruned.
func (e Equation) Solvable(ops []Operator) bool {
	n := len(e.Numbers)
	prunable := make([]bool, n+1)
	prunable[n] = true
	for i := n - 1; i >= 0; i-- {
		prunable[i] = prunable[i+1] && e.Numbers[i] >= 1
	}

	var search func(total, i int) bool
	search = func(total, i int) bool {
		if i == n {
			return total == e.Target
		}
		if total > e.Target && prunable[i] {
			return false
		}
		for _, op := range ops {
			if search(op(total, e.Numbers[i]), i+1) {
				return true
			}
		}
		return false
	}
	return search(e.Numbers[0], 1)
}

// Calibrate sums the targets of the solvable equations.
func Calibrate(equations []Equation, ops []Operator) int {
	sum := 0
	for _, e := range equations {
		if e.Solvable(ops) {
			sum += e.Target
		}
	}
	return sum
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	equations, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(Calibrate(equations, basic), Calibrate(equations, extended)), nil
}
