// Package day01 solves 2024 day 1, "Historian Hysteria": reconcile two
// lists of location ids.
package day01

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(11, 31)

// SplitLists reads the two side-by-side columns.
func SplitLists(input string) (left, right []int, err error) {
	values, err := puzzle.Ints(input)
	if err != nil {
		return nil, nil, err
	}
	if len(values)%2 != 0 {
		return nil, nil, fmt.Errorf("expected pairs of ids, got %d values", len(values))
	}

	left = make([]int, 0, len(values)/2)
	right = make([]int, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		left = append(left, values[i])
		right = append(right, values[i+1])
	}
	return left, right, nil
}

// Distance pairs the lists smallest to smallest and sums the gaps. The
// inputs are not modified.
func Distance(left, right []int) int {
	l := slices.Sorted(slices.Values(left))
	r := slices.Sorted(slices.Values(right))

	total := 0
	for i := range l {
		if l[i] > r[i] {
			total += l[i] - r[i]
		} else {
			total += r[i] - l[i]
		}
	}
	return total
}

// Similarity sums each left id multiplied by its number of occurrences in
// the right list.
func Similarity(left, right []int) int {
	counts := make(map[int]int, len(right))
	for _, v := range right {
		counts[v]++
	}

	total := 0
	for _, v := range left {
		total += v * counts[v]
	}
	return total
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	left, right, err := SplitLists(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(Distance(left, right), Similarity(left, right)), nil
}
