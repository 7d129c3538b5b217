// Package day04 solves 2024 day 4, "Ceres Search": a word search for XMAS.
package day04

import (
	"context"
	_ "embed"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(18, 9)

// neighbours are the eight straight-line directions a word can run in.
var neighbours = []grid.Point[int]{
	grid.Pt(0, 1), grid.Pt(0, -1), grid.Pt(-1, 0), grid.Pt(1, 0),
	grid.Pt(1, 1), grid.Pt(-1, -1), grid.Pt(-1, 1), grid.Pt(1, -1),
}

// WordTable is the puzzle's letter grid.
type WordTable struct {
	*grid.Bytes
}

func NewWordTable(raw string) (*WordTable, error) {
	g, err := grid.ParseBytes(raw)
	if err != nil {
		return nil, err
	}
	return &WordTable{g}, nil
}

// scan reports whether value is spelled out starting one step from start
// in direction step.
func (w *WordTable) scan(start, step grid.Point[int], value string) bool {
	p := start
	for i := 0; i < len(value); i++ {
		p = p.Add(step)
		if c, ok := w.Get(p); !ok || c != value[i] {
			return false
		}
	}
	return true
}

// CountXMAS counts every XMAS in any of the eight directions, overlaps
// included.
func (w *WordTable) CountXMAS() int {
	found := 0
	for x, y := range grid.Coords(w.Width(), w.Height()) {
		p := grid.Pt(x, y)
		if w.At(p) != 'X' {
			continue
		}
		for _, step := range neighbours {
			if w.scan(p, step, "MAS") {
				found++
			}
		}
	}
	return found
}

// CountCrossMAS counts the A cells at the centre of two diagonal MAS words.
func (w *WordTable) CountCrossMAS() int {
	found := 0
	for x, y := range grid.CoordsFrom(1, 1, w.Width()-1, w.Height()-1) {
		if w.At(grid.Pt(x, y)) != 'A' {
			continue
		}
		topLeft := w.At(grid.Pt(x-1, y-1))
		topRight := w.At(grid.Pt(x+1, y-1))
		bottomLeft := w.At(grid.Pt(x-1, y+1))
		bottomRight := w.At(grid.Pt(x+1, y+1))

		falling := (topLeft == 'M' && bottomRight == 'S') || (topLeft == 'S' && bottomRight == 'M')
		rising := (topRight == 'M' && bottomLeft == 'S') || (topRight == 'S' && bottomLeft == 'M')
		if falling && rising {
			found++
		}
	}
	return found
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	table, err := NewWordTable(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(table.CountXMAS(), table.CountCrossMAS()), nil
}
