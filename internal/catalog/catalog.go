// Package catalog wires every solved puzzle into a puzzle.Catalog.
package catalog

import (
	"github.com/advent-go/advent/internal/puzzle"
	y2015day01 "github.com/advent-go/advent/internal/years/y2015/day01"
	y2022day03 "github.com/advent-go/advent/internal/years/y2022/day03"
	y2022day06 "github.com/advent-go/advent/internal/years/y2022/day06"
	y2024day01 "github.com/advent-go/advent/internal/years/y2024/day01"
	y2024day02 "github.com/advent-go/advent/internal/years/y2024/day02"
	y2024day03 "github.com/advent-go/advent/internal/years/y2024/day03"
	y2024day04 "github.com/advent-go/advent/internal/years/y2024/day04"
	y2024day05 "github.com/advent-go/advent/internal/years/y2024/day05"
	y2024day06 "github.com/advent-go/advent/internal/years/y2024/day06"
	y2024day07 "github.com/advent-go/advent/internal/years/y2024/day07"
	y2024day08 "github.com/advent-go/advent/internal/years/y2024/day08"
	y2024day09 "github.com/advent-go/advent/internal/years/y2024/day09"
	y2024day10 "github.com/advent-go/advent/internal/years/y2024/day10"
	y2024day11 "github.com/advent-go/advent/internal/years/y2024/day11"
	y2024day12 "github.com/advent-go/advent/internal/years/y2024/day12"
	y2024day13 "github.com/advent-go/advent/internal/years/y2024/day13"
	y2024day14 "github.com/advent-go/advent/internal/years/y2024/day14"
	y2024day15 "github.com/advent-go/advent/internal/years/y2024/day15"
	y2025day01 "github.com/advent-go/advent/internal/years/y2025/day01"
)

type entry struct {
	id       puzzle.ID
	title    string
	solve    puzzle.SolveFunc
	example  string
	expected puzzle.Result
}

// Default returns a catalog of every implemented puzzle.
func Default() *puzzle.Catalog {
	c := puzzle.NewCatalog()
	for _, e := range []entry{
		{puzzle.ID{Year: 2015, Day: 1}, "Not Quite Lisp", y2015day01.Solve, y2015day01.Example, y2015day01.ExampleAnswers},
		{puzzle.ID{Year: 2022, Day: 3}, "Rucksack Reorganization", y2022day03.Solve, y2022day03.Example, y2022day03.ExampleAnswers},
		{puzzle.ID{Year: 2022, Day: 6}, "Tuning Trouble", y2022day06.Solve, y2022day06.Example, y2022day06.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 1}, "Historian Hysteria", y2024day01.Solve, y2024day01.Example, y2024day01.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 2}, "Red-Nosed Reports", y2024day02.Solve, y2024day02.Example, y2024day02.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 3}, "Mull It Over", y2024day03.Solve, y2024day03.Example, y2024day03.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 4}, "Ceres Search", y2024day04.Solve, y2024day04.Example, y2024day04.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 5}, "Print Queue", y2024day05.Solve, y2024day05.Example, y2024day05.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 6}, "Guard Gallivant", y2024day06.Solve, y2024day06.Example, y2024day06.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 7}, "Bridge Repair", y2024day07.Solve, y2024day07.Example, y2024day07.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 8}, "Resonant Collinearity", y2024day08.Solve, y2024day08.Example, y2024day08.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 9}, "Disk Fragmenter", y2024day09.Solve, y2024day09.Example, y2024day09.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 10}, "Hoof It", y2024day10.Solve, y2024day10.Example, y2024day10.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 11}, "Plutonian Pebbles", y2024day11.Solve, y2024day11.Example, y2024day11.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 12}, "Garden Groups", y2024day12.Solve, y2024day12.Example, y2024day12.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 13}, "Claw Contraption", y2024day13.Solve, y2024day13.Example, y2024day13.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 14}, "Restroom Redoubt", y2024day14.Solve, y2024day14.Example, y2024day14.ExampleAnswers},
		{puzzle.ID{Year: 2024, Day: 15}, "Warehouse Woes", y2024day15.Solve, y2024day15.Example, y2024day15.ExampleAnswers},
		{puzzle.ID{Year: 2025, Day: 1}, "Secret Entrance", y2025day01.Solve, y2025day01.Example, y2025day01.ExampleAnswers},
	} {
		c.MustRegister(puzzle.Puzzle{
			ID:             e.id,
			Title:          e.title,
			Solve:          e.solve,
			Example:        e.example,
			ExampleAnswers: e.expected,
		})
	}
	return c
}
