package grid

import "golang.org/x/exp/constraints"

// Point is a position or offset on an integer plane.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Pt is shorthand for Point[int]{x, y}.
func Pt(x, y int) Point[int] {
	return Point[int]{X: x, Y: y}
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point[T]) Scale(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point[T]) ManhattanDistance(q Point[T]) T {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four cardinal directions. Y grows downwards.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the cardinal directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Offset returns the unit step for d.
func (d Direction) Offset() Point[int] {
	switch d {
	case Up:
		return Pt(0, -1)
	case Right:
		return Pt(1, 0)
	case Down:
		return Pt(0, 1)
	default:
		return Pt(-1, 0)
	}
}

// TurnRight rotates d by 90 degrees clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// ParseArrow maps '^', '>', 'v' and '<' to a direction.
func ParseArrow(b byte) (Direction, bool) {
	switch b {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}
