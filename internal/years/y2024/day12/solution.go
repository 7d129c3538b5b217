// Package day12 solves 2024 day 12, "Garden Groups": price the fencing of
// every garden region.
package day12

import (
	"context"
	_ "embed"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(1930, 1206)

// Region is a connected group of plots growing the same plant.
type Region struct {
	Plant     byte
	Area      int
	Perimeter int
	Sides     int
}

// Regions flood-fills the garden into regions in row-major order of their
// first plot.
func Regions(garden *grid.Bytes) []Region {
	var regions []Region
	seen := make(map[grid.Point[int]]bool)

	same := func(p grid.Point[int], plant byte) bool {
		c, ok := garden.Get(p)
		return ok && c == plant
	}

	for x, y := range grid.Coords(garden.Width(), garden.Height()) {
		start := grid.Pt(x, y)
		if seen[start] {
			continue
		}

		r := Region{Plant: garden.At(start)}
		stack := []grid.Point[int]{start}
		seen[start] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r.Area++

			for _, d := range grid.Directions {
				next := p.Add(d.Offset())
				if !same(next, r.Plant) {
					r.Perimeter++
				} else if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}

				// A region has as many sides as corners. Check the corner
				// between d and the direction clockwise from it.
				side := p.Add(d.TurnRight().Offset())
				diagonal := next.Add(d.TurnRight().Offset())
				inNext, inSide := same(next, r.Plant), same(side, r.Plant)
				if !inNext && !inSide {
					r.Sides++
				} else if inNext && inSide && !same(diagonal, r.Plant) {
					r.Sides++
				}
			}
		}
		regions = append(regions, r)
	}
	return regions
}

// Prices returns the total fencing price by perimeter and by side count.
func Prices(regions []Region) (byPerimeter, bySides int) {
	for _, r := range regions {
		byPerimeter += r.Area * r.Perimeter
		bySides += r.Area * r.Sides
	}
	return byPerimeter, bySides
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	garden, err := grid.ParseBytes(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(Prices(Regions(garden))), nil
}
