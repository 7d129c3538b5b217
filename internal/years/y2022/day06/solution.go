// Package day06 solves 2022 day 6, "Tuning Trouble": find the first run of
// distinct letters in a datastream.
package day06

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/bits"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

// The example holds five datastreams; answers are summed across lines.
var ExampleAnswers = puzzle.Answers(39, 120)

const (
	packetMarker  = 4
	messageMarker = 14
)

// ErrNoMarker is returned when a datastream has no window of distinct letters.
var ErrNoMarker = errors.New("no marker found")

func letterMask(letter byte) (uint32, error) {
	if letter < 'a' || letter > 'z' {
		return 0, fmt.Errorf("unsupported letter %q", letter)
	}
	return 1 << (letter - 'a'), nil
}

// FindMarker returns the number of characters processed once the last
// `length` characters are all different.
func FindMarker(data string, length int) (int, error) {
	for start := 0; start+length <= len(data); start++ {
		var mask uint32
		for i := start; i < start+length; i++ {
			m, err := letterMask(data[i])
			if err != nil {
				return 0, err
			}
			mask |= m
		}
		if bits.OnesCount32(mask) == length {
			return start + length, nil
		}
	}
	return 0, fmt.Errorf("%w of length %d", ErrNoMarker, length)
}

func sumMarkers(lines []string, length int) (int, error) {
	total := 0
	for i, line := range lines {
		n, err := FindMarker(line, length)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	lines := puzzle.Lines(input)

	partOne, err := sumMarkers(lines, packetMarker)
	if err != nil {
		return puzzle.Result{}, err
	}
	partTwo, err := sumMarkers(lines, messageMarker)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(partOne, partTwo), nil
}
