// Package day03 solves 2022 day 3, "Rucksack Reorganization". Item types
// are tracked as bits in a uint64 so shared items fall out of a bitwise AND.
package day03

import (
	"context"
	_ "embed"
	"fmt"
	"math/bits"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(157, 70)

// itemMask returns a mask with the bit at the item's priority set:
// a-z are 1-26 and A-Z are 27-52.
func itemMask(item byte) (uint64, error) {
	var priority uint
	switch {
	case item >= 'a' && item <= 'z':
		priority = uint(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		priority = uint(item-'A') + 27
	default:
		return 0, fmt.Errorf("unsupported item %q", item)
	}
	return 1 << priority, nil
}

func contentsMask(items string) (uint64, error) {
	var mask uint64
	for i := 0; i < len(items); i++ {
		m, err := itemMask(items[i])
		if err != nil {
			return 0, err
		}
		mask |= m
	}
	return mask, nil
}

// priority recovers the priority of the single item in mask.
func priority(mask uint64) (int, error) {
	if bits.OnesCount64(mask) != 1 {
		return 0, fmt.Errorf("expected exactly one shared item, found %d", bits.OnesCount64(mask))
	}
	return bits.Len64(mask) - 1, nil
}

func splitHalf(sack string) (string, string) {
	return sack[:len(sack)/2], sack[len(sack)/2:]
}

// MisplacedPriorities sums the priority of the item found in both
// compartments of each rucksack.
func MisplacedPriorities(sacks []string) (int, error) {
	total := 0
	for i, sack := range sacks {
		left, right := splitHalf(sack)
		l, err := contentsMask(left)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		r, err := contentsMask(right)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		p, err := priority(l & r)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

// BadgePriorities sums the priority of the badge shared by each group of
// three elves.
func BadgePriorities(sacks []string) (int, error) {
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("rucksack count %d is not a multiple of three", len(sacks))
	}

	total := 0
	for g := 0; g < len(sacks); g += 3 {
		common := ^uint64(0)
		for _, sack := range sacks[g : g+3] {
			m, err := contentsMask(sack)
			if err != nil {
				return 0, fmt.Errorf("group %d: %w", g/3+1, err)
			}
			common &= m
		}
		p, err := priority(common)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", g/3+1, err)
		}
		total += p
	}
	return total, nil
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	sacks := puzzle.Lines(input)

	partOne, err := MisplacedPriorities(sacks)
	if err != nil {
		return puzzle.Result{}, err
	}
	partTwo, err := BadgePriorities(sacks)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(partOne, partTwo), nil
}
