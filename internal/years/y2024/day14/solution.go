// Package day14 solves 2024 day 14, "Restroom Redoubt": predict where
// wrapping security robots end up and spot the frame where they draw a tree.
package day14

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

// The example room is too small to hold a tree, so it only has a part one
// answer.
var ExampleAnswers = puzzle.PartOneOnly(12)

var (
	Room        = grid.Pt(101, 103)
	ExampleRoom = grid.Pt(11, 7)
)

const (
	elapsed = 100

	// treeSpread is the largest standard deviation, on both axes, of a frame
	// in which the robots have gathered into a picture.
	treeSpread = 20
)

// ErrNoTree is returned when no frame in a full cycle shows the tree.
var ErrNoTree = errors.New("robots never form a tree")

// Robot is a starting position and a per-second velocity.
type Robot struct {
	P, V grid.Point[int]
}

func Parse(input string) ([]Robot, error) {
	var robots []Robot
	for i, line := range puzzle.Lines(input) {
		var r Robot
		if _, err := fmt.Sscanf(line, "p=%d,%d v=%d,%d", &r.P.X, &r.P.Y, &r.V.X, &r.V.Y); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		robots = append(robots, r)
	}
	if len(robots) == 0 {
		return nil, errors.New("no robots in input")
	}
	return robots, nil
}

// RoomFor returns the example room when every robot starts inside it and the
// full-size room otherwise.
func RoomFor(robots []Robot) grid.Point[int] {
	for _, r := range robots {
		if r.P.X >= ExampleRoom.X || r.P.Y >= ExampleRoom.Y {
			return Room
		}
	}
	return ExampleRoom
}

func wrap(v, size int) int {
	return ((v % size) + size) % size
}

// At returns the robot's position after the given number of seconds.
func (r Robot) At(seconds int, room grid.Point[int]) grid.Point[int] {
	p := r.P.Add(r.V.Scale(seconds))
	return grid.Pt(wrap(p.X, room.X), wrap(p.Y, room.Y))
}

// Frame returns every robot's position after the given number of seconds.
func Frame(robots []Robot, seconds int, room grid.Point[int]) []grid.Point[int] {
	frame := make([]grid.Point[int], len(robots))
	for i, r := range robots {
		frame[i] = r.At(seconds, room)
	}
	return frame
}

// SafetyFactor multiplies the robot counts of the four quadrants. Robots on
// the middle row or column belong to no quadrant.
func SafetyFactor(frame []grid.Point[int], room grid.Point[int]) int {
	var quadrants [4]int
	midX, midY := room.X/2, room.Y/2
	for _, p := range frame {
		if p.X == midX || p.Y == midY {
			continue
		}
		q := 0
		if p.X > midX {
			q++
		}
		if p.Y > midY {
			q += 2
		}
		quadrants[q]++
	}
	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]
}

// spread returns the standard deviation of the frame along each axis.
func spread(frame []grid.Point[int]) (x, y float64) {
	xs := make([]float64, len(frame))
	ys := make([]float64, len(frame))
	for i, p := range frame {
		xs[i], ys[i] = float64(p.X), float64(p.Y)
	}
	return stat.StdDev(xs, nil), stat.StdDev(ys, nil)
}

// FindTree returns the first second at which the robots cluster tightly on
// both axes. Positions repeat after room.X*room.Y seconds.
func FindTree(ctx context.Context, robots []Robot, room grid.Point[int]) (int, error) {
	for seconds := range room.X * room.Y {
		if seconds%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		x, y := spread(Frame(robots, seconds, room))
		if x < treeSpread && y < treeSpread {
			return seconds, nil
		}
	}
	return 0, ErrNoTree
}

func Solve(ctx context.Context, input string) (puzzle.Result, error) {
	robots, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}

	room := RoomFor(robots)
	safety := SafetyFactor(Frame(robots, elapsed, room), room)
	if room == ExampleRoom {
		return puzzle.PartOneOnly(safety), nil
	}

	tree, err := FindTree(ctx, robots, room)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(safety, tree), nil
}
