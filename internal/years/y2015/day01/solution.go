// Package day01 solves 2015 day 1, "Not Quite Lisp": Santa follows
// parentheses up and down the floors of a building.
package day01

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(-1, 5)

// ErrNeverBasement is returned when the instructions never reach floor -1.
var ErrNeverBasement = errors.New("never entered the basement")

func step(c rune, floor *int) {
	switch c {
	case '(':
		*floor++
	case ')':
		*floor--
	}
}

// FinalFloor returns the floor reached after every instruction.
func FinalFloor(input string) int {
	floor := 0
	for _, c := range input {
		step(c, &floor)
	}
	return floor
}

// BasementPosition returns the 1-based position of the instruction that
// first takes Santa to floor -1.
func BasementPosition(input string) (int, error) {
	floor := 0
	for i, c := range input {
		step(c, &floor)
		if floor == -1 {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: current floor %d", ErrNeverBasement, floor)
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	position, err := BasementPosition(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(FinalFloor(input), position), nil
}
