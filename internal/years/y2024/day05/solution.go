// Package day05 solves 2024 day 5, "Print Queue": check page updates
// against ordering rules.
package day05

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(143, 123)

// ErrCyclicRules is returned when the rules relating an update's pages
// contradict each other, so no order satisfies them.
var ErrCyclicRules = errors.New("ordering rules form a cycle")

// rule says page Before must be printed ahead of page After.
type rule struct {
	Before, After int
}

// Queue is the parsed puzzle input.
type Queue struct {
	rules   map[rule]bool
	Updates [][]int
}

func Parse(input string) (*Queue, error) {
	sections := puzzle.Sections(input)
	if len(sections) != 2 {
		return nil, fmt.Errorf("expected rules and updates sections, got %d sections", len(sections))
	}

	q := &Queue{rules: make(map[rule]bool)}
	for i, line := range puzzle.Lines(sections[0]) {
		before, after, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("rule %d: missing '|' in %q", i+1, line)
		}
		b, err := strconv.Atoi(before)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		a, err := strconv.Atoi(after)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		q.rules[rule{b, a}] = true
	}

	for i, line := range puzzle.Lines(sections[1]) {
		fields := strings.Split(line, ",")
		pages := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("update %d: %w", i+1, err)
			}
			pages = append(pages, n)
		}
		if len(pages)%2 == 0 {
			return nil, fmt.Errorf("update %d: has no middle page, got %d pages", i+1, len(pages))
		}
		q.Updates = append(q.Updates, pages)
	}
	return q, nil
}

// violation returns the first pair of positions i < j whose pages break a
// rule, that is pages[j] must be printed before pages[i].
func (q *Queue) violation(pages []int) (i, j int, found bool) {
	for i := range pages {
		for j := i + 1; j < len(pages); j++ {
			if q.rules[rule{pages[j], pages[i]}] {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// InOrder reports whether no rule is violated by pages.
func (q *Queue) InOrder(pages []int) bool {
	_, _, found := q.violation(pages)
	return !found
}

// Reorder returns a copy of pages with violating pairs swapped until every
// rule holds. Rules that contradict each other within the update never
// settle and are reported as ErrCyclicRules.
func (q *Queue) Reorder(pages []int) ([]int, error) {
	out := slices.Clone(pages)
	n := len(out)
	for range n*n*n + 1 {
		i, j, found := q.violation(out)
		if !found {
			return out, nil
		}
		out[i], out[j] = out[j], out[i]
	}
	return nil, fmt.Errorf("%w: %v", ErrCyclicRules, pages)
}

func middle(pages []int) int {
	return pages[len(pages)/2]
}

// Checksums returns the summed middle pages of the updates already in order
// and of the reordered ones.
func (q *Queue) Checksums() (ordered, fixed int, err error) {
	for i, pages := range q.Updates {
		if q.InOrder(pages) {
			ordered += middle(pages)
			continue
		}
		reordered, err := q.Reorder(pages)
		if err != nil {
			return 0, 0, fmt.Errorf("update %d: %w", i+1, err)
		}
		fixed += middle(reordered)
	}
	return ordered, fixed, nil
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	q, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	ordered, fixed, err := q.Checksums()
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(ordered, fixed), nil
}
