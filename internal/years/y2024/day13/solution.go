// Package day13 solves 2024 day 13, "Claw Contraption": the cheapest button
// presses that win each prize.
package day13

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(480, 875318608908)

const (
	costA = 3
	costB = 1

	// prizeOffset is the unit conversion error corrected in part two.
	prizeOffset = 10_000_000_000_000
)

// Machine is one claw machine.
type Machine struct {
	A, B  grid.Point[int64]
	Prize grid.Point[int64]
}

func Parse(input string) ([]Machine, error) {
	var machines []Machine
	for i, section := range puzzle.Sections(input) {
		var m Machine
		_, err := fmt.Sscanf(section,
			"Button A: X+%d, Y+%d\nButton B: X+%d, Y+%d\nPrize: X=%d, Y=%d",
			&m.A.X, &m.A.Y, &m.B.X, &m.B.Y, &m.Prize.X, &m.Prize.Y)
		if err != nil {
			return nil, fmt.Errorf("machine %d: %w", i+1, err)
		}
		machines = append(machines, m)
	}
	return machines, nil
}

// Tokens returns the cost of winning the prize, solving the two linear
// equations with Cramer's rule. ok is false when no whole number of presses
// reaches the prize.
func (m Machine) Tokens() (tokens int64, ok bool) {
	det := m.A.X*m.B.Y - m.A.Y*m.B.X
	if det == 0 {
		return 0, false
	}
	a := (m.Prize.X*m.B.Y - m.Prize.Y*m.B.X) / det
	b := (m.A.X*m.Prize.Y - m.A.Y*m.Prize.X) / det
	if a < 0 || b < 0 {
		return 0, false
	}
	if m.A.Scale(a).Add(m.B.Scale(b)) != m.Prize {
		return 0, false
	}
	return costA*a + costB*b, true
}

// Corrected returns m with the prize moved by the part two offset.
func (m Machine) Corrected() Machine {
	m.Prize = m.Prize.Add(grid.Point[int64]{X: prizeOffset, Y: prizeOffset})
	return m
}

// TotalTokens sums the cost of every winnable prize.
func TotalTokens(machines []Machine) int64 {
	var total int64
	for _, m := range machines {
		if t, ok := m.Tokens(); ok {
			total += t
		}
	}
	return total
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	machines, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	corrected := make([]Machine, len(machines))
	for i, m := range machines {
		corrected[i] = m.Corrected()
	}
	return puzzle.Answers(TotalTokens(machines), TotalTokens(corrected)), nil
}
