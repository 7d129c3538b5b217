// Package storage persists run history and confirmed answers.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/storage/sqlite"
	"github.com/advent-go/advent/internal/types"
)

// ErrNotFound is returned when a run or answer does not exist.
var ErrNotFound = sqlite.ErrNotFound

// Storage defines the interface for run history backends
type Storage interface {
	// Runs
	RecordRun(ctx context.Context, run *types.Run) error
	RecentRuns(ctx context.Context, filter types.RunFilter) ([]*types.Run, error)
	LatestRun(ctx context.Context, id puzzle.ID) (*types.Run, error)

	// Confirmed answers
	ConfirmAnswer(ctx context.Context, answer *types.Answer) error
	GetAnswer(ctx context.Context, id puzzle.ID, inputHash string) (*types.Answer, error)

	// Lifecycle
	Close() error
}

// Config holds database configuration
type Config struct {
	// Path is the SQLite database file path
	// Default: ".advent/advent.db"
	// Special value ":memory:" creates an in-memory database (useful for tests)
	Path string
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Path: ".advent/advent.db",
	}
}

// NewStorage opens the SQLite backend described by cfg.
func NewStorage(ctx context.Context, cfg *Config) (Storage, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	path := cfg.Path
	if path == "" {
		path = DefaultConfig().Path
	}
	return sqlite.New(ctx, path)
}

// HashInput identifies a puzzle input by its SHA-256 digest. Answers are
// keyed by it, so every account's input keeps its own confirmed answers.
func HashInput(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
