package day04

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sparseCrosses = `.M.S......
..A..MSMS.
.M.S.MAA..
..A.ASMSM.
.M.S.M....
..........
S.S.S.S.S.
.A.A.A.A..
M.M.M.M.M.
..........`

func TestCountXMAS(t *testing.T) {
	table, err := NewWordTable(Example)
	require.NoError(t, err)
	assert.Equal(t, 18, table.CountXMAS())
}

func TestCountXMASAllDirections(t *testing.T) {
	table, err := NewWordTable("XMAS\nMM..\nA.A.\nS..S")
	require.NoError(t, err)
	// right, down and the falling diagonal from the corner
	assert.Equal(t, 3, table.CountXMAS())
}

func TestCountCrossMAS(t *testing.T) {
	table, err := NewWordTable(sparseCrosses)
	require.NoError(t, err)
	assert.Equal(t, 9, table.CountCrossMAS())
}

func TestExample(t *testing.T) {
	got, err := Solve(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, ExampleAnswers, got)
}
