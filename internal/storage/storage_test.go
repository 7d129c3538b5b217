package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/types"
)

func TestNewStorageOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "advent.db")

	store, err := NewStorage(ctx, &Config{Path: path})
	require.NoError(t, err)

	run := &types.Run{
		Puzzle:    puzzle.ID{Year: 2024, Day: 1},
		InputHash: HashInput("3   4\n"),
		PartOne:   "11",
		Verdict:   types.VerdictNew,
	}
	require.NoError(t, store.RecordRun(ctx, run))
	require.NoError(t, store.Close())

	// reopening applies no migration twice and keeps the data
	store, err = NewStorage(ctx, &Config{Path: path})
	require.NoError(t, err)
	defer store.Close()

	got, err := store.LatestRun(ctx, run.Puzzle)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
}

func TestLatestRunNotFound(t *testing.T) {
	store, err := NewStorage(context.Background(), &Config{Path: ":memory:"})
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LatestRun(context.Background(), puzzle.ID{Year: 2024, Day: 9})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHashInput(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashInput(""))
	assert.NotEqual(t, HashInput("a\n"), HashInput("a"))
	assert.Len(t, HashInput("anything"), 64)
}
