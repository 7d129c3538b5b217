// Package day08 solves 2024 day 8, "Resonant Collinearity": count the
// antinodes created by pairs of same-frequency antennas.
package day08

import (
	"context"
	_ "embed"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(14, 34)

// City holds antenna positions grouped by frequency.
type City struct {
	width, height int
	antennas      map[byte][]grid.Point[int]
}

func Parse(input string) (*City, error) {
	g, err := grid.ParseBytes(input)
	if err != nil {
		return nil, err
	}

	c := &City{
		width:    g.Width(),
		height:   g.Height(),
		antennas: make(map[byte][]grid.Point[int]),
	}
	for x, y := range grid.Coords(g.Width(), g.Height()) {
		p := grid.Pt(x, y)
		if f := g.At(p); f != '.' {
			c.antennas[f] = append(c.antennas[f], p)
		}
	}
	return c, nil
}

func (c *City) inBounds(p grid.Point[int]) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.width && p.Y < c.height
}

// pairs calls fn for every ordered pair of distinct antennas sharing a
// frequency.
func (c *City) pairs(fn func(a, b grid.Point[int])) {
	for _, positions := range c.antennas {
		for i, a := range positions {
			for j, b := range positions {
				if i != j {
					fn(a, b)
				}
			}
		}
	}
}

// Antinodes counts the in-bounds points twice as far from one antenna of a
// pair as from the other.
func (c *City) Antinodes() int {
	unique := make(map[grid.Point[int]]struct{})
	c.pairs(func(a, b grid.Point[int]) {
		if p := b.Add(b.Sub(a)); c.inBounds(p) {
			unique[p] = struct{}{}
		}
	})
	return len(unique)
}

// Harmonics counts every in-bounds grid point in line with a pair, the
// antennas themselves included.
func (c *City) Harmonics() int {
	unique := make(map[grid.Point[int]]struct{})
	c.pairs(func(a, b grid.Point[int]) {
		step := b.Sub(a)
		for p := b; c.inBounds(p); p = p.Add(step) {
			unique[p] = struct{}{}
		}
	})
	return len(unique)
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(c.Antinodes(), c.Harmonics()), nil
}
