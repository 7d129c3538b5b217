// Package day10 solves 2024 day 10, "Hoof It": score and rate the hiking
// trails on a topographic map.
package day10

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(36, 81)

// Map is a topographic map of heights 0 to 9. Cells written '.' are
// impassable.
type Map struct {
	heights *grid.Bytes
}

func Parse(input string) (*Map, error) {
	g, err := grid.ParseBytes(input)
	if err != nil {
		return nil, err
	}
	for x, y := range grid.Coords(g.Width(), g.Height()) {
		p := grid.Pt(x, y)
		switch c := g.At(p); {
		case c >= '0' && c <= '9':
		case c == '.':
		default:
			return nil, fmt.Errorf("invalid height %q at %d,%d", c, x, y)
		}
	}
	return &Map{heights: g}, nil
}

func (m *Map) height(p grid.Point[int]) int {
	c, ok := m.heights.Get(p)
	if !ok || c == '.' {
		return -1
	}
	return int(c - '0')
}

// summits returns the summits reachable from p by gradual uphill steps, one
// entry per distinct trail.
func (m *Map) summits(p grid.Point[int], out []grid.Point[int]) []grid.Point[int] {
	h := m.height(p)
	if h == 9 {
		return append(out, p)
	}
	for _, d := range grid.Directions {
		if next := p.Add(d.Offset()); m.height(next) == h+1 {
			out = m.summits(next, out)
		}
	}
	return out
}

// Trailheads returns the total score (distinct summits) and rating (distinct
// trails) over every trailhead.
func (m *Map) Trailheads() (score, rating int) {
	for x, y := range grid.Coords(m.heights.Width(), m.heights.Height()) {
		p := grid.Pt(x, y)
		if m.height(p) != 0 {
			continue
		}
		trails := m.summits(p, nil)
		distinct := make(map[grid.Point[int]]struct{}, len(trails))
		for _, s := range trails {
			distinct[s] = struct{}{}
		}
		score += len(distinct)
		rating += len(trails)
	}
	return score, rating
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(m.Trailheads()), nil
}
