// Package day06 solves 2024 day 6, "Guard Gallivant": follow a patrolling
// guard and find the obstructions that trap it in a loop.
package day06

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(41, 6)

// ErrNoGuard is returned when the map has no guard arrow.
var ErrNoGuard = errors.New("map has no guard")

const obstruction = '#'

// Lab is the mapped area and the guard's starting state.
type Lab struct {
	floor *grid.Bytes
	start grid.Point[int]
	dir   grid.Direction
}

func Parse(input string) (*Lab, error) {
	floor, err := grid.ParseBytes(input)
	if err != nil {
		return nil, err
	}

	lab := &Lab{floor: floor}
	found := 0
	for x, y := range grid.Coords(floor.Width(), floor.Height()) {
		p := grid.Pt(x, y)
		if d, ok := grid.ParseArrow(floor.At(p)); ok {
			lab.start, lab.dir = p, d
			found++
		}
	}
	switch {
	case found == 0:
		return nil, ErrNoGuard
	case found > 1:
		return nil, fmt.Errorf("map must have exactly one guard, got %d", found)
	}
	return lab, nil
}

type state struct {
	pos grid.Point[int]
	dir grid.Direction
}

// walk moves the guard until it leaves the map or repeats a state. extra is
// an additional obstruction, ignored when it is off the map. visit is called
// once per step with the guard's position.
func (l *Lab) walk(extra grid.Point[int], visit func(grid.Point[int])) (loops bool) {
	pos, dir := l.start, l.dir
	seen := make(map[state]struct{})
	for {
		if _, ok := seen[state{pos, dir}]; ok {
			return true
		}
		seen[state{pos, dir}] = struct{}{}
		if visit != nil {
			visit(pos)
		}

		next := pos.Add(dir.Offset())
		c, ok := l.floor.Get(next)
		if !ok {
			return false
		}
		if c == obstruction || next == extra {
			dir = dir.TurnRight()
			continue
		}
		pos = next
	}
}

var offMap = grid.Pt(-1, -1)

// Route returns the distinct cells the guard visits, in first-visit order.
func (l *Lab) Route() []grid.Point[int] {
	var route []grid.Point[int]
	seen := make(map[grid.Point[int]]bool)
	l.walk(offMap, func(p grid.Point[int]) {
		if !seen[p] {
			seen[p] = true
			route = append(route, p)
		}
	})
	return route
}

// Loops reports whether an obstruction at p traps the guard.
func (l *Lab) Loops(p grid.Point[int]) bool {
	return l.walk(p, nil)
}

// CountTraps counts the cells of route, the guard's original route as
// returned by Route, where a single new obstruction makes the guard loop.
// Only those cells can change its path, and the start cell is never a
// candidate. Candidates are checked on up to GOMAXPROCS goroutines.
func (l *Lab) CountTraps(ctx context.Context, route []grid.Point[int]) (int, error) {
	var traps atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, p := range route {
		if p == l.start {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if l.Loops(p) {
				traps.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(traps.Load()), nil
}

func Solve(ctx context.Context, input string) (puzzle.Result, error) {
	lab, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	route := lab.Route()
	traps, err := lab.CountTraps(ctx, route)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("failed to search obstructions: %w", err)
	}
	return puzzle.Answers(len(route), traps), nil
}
