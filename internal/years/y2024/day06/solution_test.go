package day06

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/advent-go/advent/internal/grid"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRoute(t *testing.T) {
	lab, err := Parse(Example)
	require.NoError(t, err)

	route := lab.Route()
	assert.Len(t, route, 41)
	assert.Equal(t, grid.Pt(4, 6), route[0])
	assert.Equal(t, grid.Pt(4, 1), route[5])
}

func TestLoops(t *testing.T) {
	lab, err := Parse(Example)
	require.NoError(t, err)

	// positions from the puzzle statement
	for _, p := range []grid.Point[int]{
		grid.Pt(3, 6), grid.Pt(6, 7), grid.Pt(7, 7),
		grid.Pt(1, 8), grid.Pt(3, 8), grid.Pt(7, 9),
	} {
		assert.True(t, lab.Loops(p), "obstruction at %v", p)
	}
	assert.False(t, lab.Loops(grid.Pt(0, 0)))
}

func TestCountTrapsCancelled(t *testing.T) {
	lab, err := Parse(Example)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = lab.CountTraps(ctx, lab.Route())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountTrapsOverRoute(t *testing.T) {
	lab, err := Parse(Example)
	require.NoError(t, err)
	route := lab.Route()

	traps, err := lab.CountTraps(context.Background(), route)
	require.NoError(t, err)
	assert.Equal(t, 6, traps)

	// The start cell is never a candidate.
	traps, err = lab.CountTraps(context.Background(), []grid.Point[int]{route[0], grid.Pt(3, 6), grid.Pt(0, 0)})
	require.NoError(t, err)
	assert.Equal(t, 1, traps)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("...\n.#.\n")
	assert.ErrorIs(t, err, ErrNoGuard)

	_, err = Parse("^..\n..>\n")
	assert.ErrorContains(t, err, "exactly one guard, got 2")
}

func TestExample(t *testing.T) {
	got, err := Solve(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, ExampleAnswers, got)
}
