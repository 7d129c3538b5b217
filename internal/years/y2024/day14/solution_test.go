package day14

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent/internal/grid"
	"github.com/advent-go/advent/internal/puzzle"
)

// testdata/tree.txt holds 24 robots that gather in the middle of the room
// after 7 seconds and are scattered at every other second.
func readTree(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "tree.txt"))
	require.NoError(t, err)
	return string(data)
}

func loadTree(t *testing.T) []Robot {
	t.Helper()
	robots, err := Parse(readTree(t))
	require.NoError(t, err)
	return robots
}

func TestRobotAtWraps(t *testing.T) {
	r := Robot{P: grid.Pt(2, 4), V: grid.Pt(2, -3)}
	want := []grid.Point[int]{
		grid.Pt(2, 4), grid.Pt(4, 1), grid.Pt(6, 5), grid.Pt(8, 2), grid.Pt(10, 6), grid.Pt(1, 3),
	}
	for seconds, p := range want {
		assert.Equal(t, p, r.At(seconds, ExampleRoom), "after %d seconds", seconds)
	}
}

func TestSafetyFactor(t *testing.T) {
	robots, err := Parse(Example)
	require.NoError(t, err)
	require.Equal(t, ExampleRoom, RoomFor(robots))

	assert.Equal(t, 12, SafetyFactor(Frame(robots, 100, ExampleRoom), ExampleRoom))
}

func TestFindTree(t *testing.T) {
	robots := loadTree(t)
	require.Equal(t, Room, RoomFor(robots))

	seconds, err := FindTree(context.Background(), robots, Room)
	require.NoError(t, err)
	assert.Equal(t, 7, seconds)
}

func TestFindTreeNone(t *testing.T) {
	robots := []Robot{
		{P: grid.Pt(0, 0), V: grid.Pt(0, 0)},
		{P: grid.Pt(100, 102), V: grid.Pt(0, 0)},
	}
	_, err := FindTree(context.Background(), robots, Room)
	assert.ErrorIs(t, err, ErrNoTree)
}

func TestFindTreeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FindTree(ctx, loadTree(t), Room)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveFullRoom(t *testing.T) {
	got, err := Solve(context.Background(), readTree(t))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answers(1008, 7), got)
}

func TestRender(t *testing.T) {
	robots := loadTree(t)
	path := filepath.Join(t.TempDir(), "tree.png")

	require.NoError(t, Render(Frame(robots, 7, Room), Room, 7, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("p=1,2 v=3\n")
	assert.ErrorContains(t, err, "line 1")

	_, err = Parse("\n")
	assert.ErrorContains(t, err, "no robots")
}

func TestExample(t *testing.T) {
	got, err := Solve(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, ExampleAnswers, got)
}
