// Package puzzle defines the contract every daily solver implements and a
// catalog to look solvers up by year and day.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrNotFound is returned when no solver is registered for an ID.
var ErrNotFound = errors.New("puzzle not found")

// ID identifies a puzzle by event year and day.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string {
	return fmt.Sprintf("%d/%02d", id.Year, id.Day)
}

// Compare orders IDs by year then day.
func (id ID) Compare(other ID) int {
	if id.Year != other.Year {
		return id.Year - other.Year
	}
	return id.Day - other.Day
}

// Validate checks the ID is a plausible event date.
func (id ID) Validate() error {
	if id.Year < 2015 {
		return fmt.Errorf("year must be 2015 or later, got %d", id.Year)
	}
	if id.Day < 1 || id.Day > 25 {
		return fmt.Errorf("day must be between 1 and 25, got %d", id.Day)
	}
	return nil
}

// ParseID parses "2024/6", "2024/06" or the pair of arguments "2024", "6".
func ParseID(args ...string) (ID, error) {
	if len(args) == 1 {
		args = strings.SplitN(args[0], "/", 2)
	}
	if len(args) != 2 {
		return ID{}, fmt.Errorf("expected <year> <day>, got %q", strings.Join(args, " "))
	}

	year, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return ID{}, fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	day, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return ID{}, fmt.Errorf("invalid day %q: %w", args[1], err)
	}

	id := ID{Year: year, Day: day}
	return id, id.Validate()
}

// Result holds the answers of both parts. An empty string means the part has
// no answer.
type Result struct {
	PartOne string
	PartTwo string
}

// Answers builds a Result from any printable values.
func Answers(partOne, partTwo any) Result {
	return Result{PartOne: format(partOne), PartTwo: format(partTwo)}
}

// PartOneOnly builds a Result for a day whose second part has no answer.
func PartOneOnly(partOne any) Result {
	return Result{PartOne: format(partOne)}
}

func format(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// SolveFunc parses input and computes both answers.
type SolveFunc func(ctx context.Context, input string) (Result, error)

// Puzzle describes one registered solver.
type Puzzle struct {
	ID    ID
	Title string
	Solve SolveFunc

	// Example is the sample input from the puzzle statement and
	// ExampleAnswers the answers it is documented to produce.
	Example        string
	ExampleAnswers Result
}

// Catalog is an index of puzzles.
type Catalog struct {
	puzzles map[ID]Puzzle
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{puzzles: make(map[ID]Puzzle)}
}

// Register adds p. Registering the same ID twice is an error.
func (c *Catalog) Register(p Puzzle) error {
	if err := p.ID.Validate(); err != nil {
		return fmt.Errorf("invalid puzzle id %s: %w", p.ID, err)
	}
	if p.Solve == nil {
		return fmt.Errorf("puzzle %s has no solver", p.ID)
	}
	if _, exists := c.puzzles[p.ID]; exists {
		return fmt.Errorf("puzzle %s already registered", p.ID)
	}
	c.puzzles[p.ID] = p
	return nil
}

// MustRegister is Register for static catalogs; it panics on error.
func (c *Catalog) MustRegister(puzzles ...Puzzle) {
	for _, p := range puzzles {
		if err := c.Register(p); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the puzzle registered for id.
func (c *Catalog) Lookup(id ID) (Puzzle, error) {
	p, ok := c.puzzles[id]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// All returns every puzzle ordered by year then day.
func (c *Catalog) All() []Puzzle {
	all := make([]Puzzle, 0, len(c.puzzles))
	for _, p := range c.puzzles {
		all = append(all, p)
	}
	slices.SortFunc(all, func(a, b Puzzle) int { return a.ID.Compare(b.ID) })
	return all
}

// Year returns the puzzles of a single event, ordered by day.
func (c *Catalog) Year(year int) []Puzzle {
	var out []Puzzle
	for _, p := range c.All() {
		if p.ID.Year == year {
			out = append(out, p)
		}
	}
	return out
}

// Years returns the distinct event years in ascending order.
func (c *Catalog) Years() []int {
	var years []int
	for _, p := range c.All() {
		if len(years) == 0 || years[len(years)-1] != p.ID.Year {
			years = append(years, p.ID.Year)
		}
	}
	return years
}

// Latest returns the most recent puzzle.
func (c *Catalog) Latest() (Puzzle, error) {
	all := c.All()
	if len(all) == 0 {
		return Puzzle{}, fmt.Errorf("%w: catalog is empty", ErrNotFound)
	}
	return all[len(all)-1], nil
}

func (c *Catalog) Len() int {
	return len(c.puzzles)
}
