package grid

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned when a grid has no rows.
var ErrEmpty = errors.New("grid is empty")

// Bytes is a rectangular grid of ASCII cells.
type Bytes struct {
	cells  [][]byte
	width  int
	height int
}

// ParseBytes reads a grid from newline separated rows. Blank leading and
// trailing lines are ignored; every remaining row must have the same width.
func ParseBytes(raw string) (*Bytes, error) {
	lines := strings.Split(strings.Trim(raw, "\r\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmpty
	}

	g := &Bytes{
		cells:  make([][]byte, 0, len(lines)),
		width:  len(strings.TrimRight(lines[0], "\r")),
		height: len(lines),
	}
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) != g.width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(line), g.width)
		}
		g.cells = append(g.cells, []byte(line))
	}
	return g, nil
}

func (g *Bytes) Width() int  { return g.width }
func (g *Bytes) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Bytes) InBounds(p Point[int]) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the cell at p. It panics when p is out of bounds; use Get for
// checked access.
func (g *Bytes) At(p Point[int]) byte {
	return g.cells[p.Y][p.X]
}

// Get returns the cell at p and whether p was in bounds.
func (g *Bytes) Get(p Point[int]) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

func (g *Bytes) Set(p Point[int], v byte) {
	g.cells[p.Y][p.X] = v
}

// Find returns the first cell holding v in row-major order.
func (g *Bytes) Find(v byte) (Point[int], bool) {
	for x, y := range Coords(g.width, g.height) {
		if g.cells[y][x] == v {
			return Pt(x, y), true
		}
	}
	return Point[int]{}, false
}

// Clone returns a deep copy of g.
func (g *Bytes) Clone() *Bytes {
	cells := make([][]byte, len(g.cells))
	for i, row := range g.cells {
		cells[i] = bytes.Clone(row)
	}
	return &Bytes{cells: cells, width: g.width, height: g.height}
}

func (g *Bytes) String() string {
	return string(bytes.Join(g.cells, []byte("\n")))
}
