// Package day11 solves 2024 day 11, "Plutonian Pebbles": count stones that
// split each time you blink.
package day11

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(55312, 65601038650482)

// Stones maps an engraved number to how many stones carry it. Stone order
// never affects the count, so equal stones are blinked together.
type Stones map[int]int

func Parse(input string) (Stones, error) {
	values, err := puzzle.Ints(input)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no stones in input")
	}
	stones := make(Stones, len(values))
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("stone must be non-negative, got %d", v)
		}
		stones[v]++
	}
	return stones, nil
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// change applies the rules to a single stone.
func change(n int) []int {
	if n == 0 {
		return []int{1}
	}
	if d := digits(n); d%2 == 0 {
		half := 1
		for range d / 2 {
			half *= 10
		}
		return []int{n / half, n % half}
	}
	return []int{n * 2024}
}

// Blink returns the stones after one blink.
func (s Stones) Blink() Stones {
	next := make(Stones, len(s))
	for n, count := range s {
		for _, m := range change(n) {
			next[m] += count
		}
	}
	return next
}

func (s Stones) Count() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// After returns the number of stones after the given number of blinks.
func (s Stones) After(blinks int) int {
	for range blinks {
		s = s.Blink()
	}
	return s.Count()
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	stones, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(stones.After(25), stones.After(75)), nil
}
