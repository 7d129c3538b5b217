// Package day01 solves 2025 day 1, "Secret Entrance": count how often a safe
// dial points at zero.
package day01

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(3, 6)

const (
	dialSize  = 100
	dialStart = 50
)

// Rotation turns the dial by Distance clicks, towards lower numbers when Left
// is set. Distances may exceed a full turn.
type Rotation struct {
	Left     bool
	Distance int
}

func Parse(input string) ([]Rotation, error) {
	var rotations []Rotation
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			return nil, fmt.Errorf("line %d: rotation is empty", i+1)
		}
		var r Rotation
		switch line[0] {
		case 'L':
			r.Left = true
		case 'R':
		default:
			return nil, fmt.Errorf("line %d: unsupported rotation direction %q", i+1, line[0])
		}
		d, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to parse rotation distance: %w", i+1, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("line %d: distance must be non-negative, got %d", i+1, d)
		}
		r.Distance = d
		rotations = append(rotations, r)
	}
	return rotations, nil
}

// Dial is the position of the safe's dial.
type Dial int

// Turn applies r and returns the new position along with how many clicks
// during the rotation left the dial at zero.
func (d Dial) Turn(r Rotation) (Dial, int) {
	pos := int(d)
	if !r.Left {
		sum := pos + r.Distance
		return Dial(sum % dialSize), sum / dialSize
	}

	// Turning left reaches zero first after pos clicks, or after a full
	// turn when already there.
	first := pos
	if first == 0 {
		first = dialSize
	}
	zeros := 0
	if r.Distance >= first {
		zeros = 1 + (r.Distance-first)/dialSize
	}
	next := ((pos-r.Distance)%dialSize + dialSize) % dialSize
	return Dial(next), zeros
}

// Password returns the number of rotations that end on zero and the number of
// clicks that pass over zero.
func Password(rotations []Rotation) (landed, passed int) {
	dial := Dial(dialStart)
	for _, r := range rotations {
		var zeros int
		dial, zeros = dial.Turn(r)
		passed += zeros
		if dial == 0 {
			landed++
		}
	}
	return landed, passed
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	rotations, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(Password(rotations)), nil
}
