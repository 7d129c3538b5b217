// Package day15 solves 2024 day 15, "Warehouse Woes": simulate a robot
// pushing boxes around a warehouse.
package day15

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(10092, 9021)

const (
	wall     = '#'
	empty    = '.'
	robot    = '@'
	box      = 'O'
	boxLeft  = '['
	boxRight = ']'
)

// ErrNoRobot is returned when the warehouse map has no robot.
var ErrNoRobot = errors.New("warehouse has no robot")

// Warehouse is the map and the robot's position on it.
type Warehouse struct {
	cells *grid.Bytes
	robot grid.Point[int]
}

// Parse reads the warehouse map and the robot's moves. With wide set every
// tile except the robot is doubled in width.
func Parse(input string, wide bool) (*Warehouse, []grid.Direction, error) {
	sections := puzzle.Sections(input)
	if len(sections) != 2 {
		return nil, nil, fmt.Errorf("expected map and moves sections, got %d sections", len(sections))
	}

	layout := sections[0]
	if wide {
		layout = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.").Replace(layout)
	}
	cells, err := grid.ParseBytes(layout)
	if err != nil {
		return nil, nil, err
	}
	start, ok := cells.Find(robot)
	if !ok {
		return nil, nil, ErrNoRobot
	}

	var moves []grid.Direction
	for _, line := range puzzle.Lines(sections[1]) {
		for i := 0; i < len(line); i++ {
			d, ok := grid.ParseArrow(line[i])
			if !ok {
				return nil, nil, fmt.Errorf("invalid move %q", line[i])
			}
			moves = append(moves, d)
		}
	}
	return &Warehouse{cells: cells, robot: start}, moves, nil
}

// Move tries to step the robot in direction d, pushing any boxes in the way.
// Nothing moves when a wall or the edge of the map blocks any pushed box. It
// reports whether the robot moved.
func (w *Warehouse) Move(d grid.Direction) bool {
	step := d.Offset()

	// Collect the robot and every box it would push, nearest first.
	pushed := []grid.Point[int]{w.robot}
	seen := map[grid.Point[int]]bool{w.robot: true}
	for i := 0; i < len(pushed); i++ {
		if !w.cells.InBounds(pushed[i]) {
			return false
		}
		next := pushed[i].Add(step)
		c, ok := w.cells.Get(next)
		if !ok {
			return false
		}
		var more []grid.Point[int]
		switch c {
		case wall:
			return false
		case box:
			more = append(more, next)
		case boxLeft:
			more = append(more, next)
			if d.Vertical() {
				more = append(more, next.Add(grid.Right.Offset()))
			}
		case boxRight:
			more = append(more, next)
			if d.Vertical() {
				more = append(more, next.Add(grid.Left.Offset()))
			}
		}
		for _, p := range more {
			if !seen[p] {
				seen[p] = true
				pushed = append(pushed, p)
			}
		}
	}

	for i := len(pushed) - 1; i >= 0; i-- {
		p := pushed[i]
		w.cells.Set(p.Add(step), w.cells.At(p))
		w.cells.Set(p, empty)
	}
	w.robot = w.robot.Add(step)
	return true
}

// GPS sums 100*y + x over every box, measured from its left edge.
func (w *Warehouse) GPS() int {
	sum := 0
	for x, y := range grid.Coords(w.cells.Width(), w.cells.Height()) {
		if c := w.cells.At(grid.Pt(x, y)); c == box || c == boxLeft {
			sum += 100*y + x
		}
	}
	return sum
}

func (w *Warehouse) String() string {
	return w.cells.String()
}

func simulate(input string, wide bool) (int, error) {
	w, moves, err := Parse(input, wide)
	if err != nil {
		return 0, err
	}
	for _, d := range moves {
		w.Move(d)
	}
	return w.GPS(), nil
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	narrow, err := simulate(input, false)
	if err != nil {
		return puzzle.Result{}, err
	}
	wide, err := simulate(input, true)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(narrow, wide), nil
}
