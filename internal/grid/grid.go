// Package grid holds the small amount of 2D plumbing shared by the puzzle
// kernels: a row-major coordinate iterator, generic points and directions,
// and a rectangular byte grid.
package grid

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Coords yields every (x, y) pair of a width x height grid in row-major
// order, starting at (0, 0).
func Coords[W, H constraints.Integer](width W, height H) iter.Seq2[W, H] {
	return CoordsFrom(W(0), H(0), width, height)
}

// CoordsFrom yields (x, y) for startY <= y < height and startX <= x < width,
// row by row.
func CoordsFrom[W, H constraints.Integer](startX W, startY H, width W, height H) iter.Seq2[W, H] {
	return func(yield func(W, H) bool) {
		for y := startY; y < height; y++ {
			for x := startX; x < width; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
