package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent/internal/config"
	"github.com/advent-go/advent/internal/input"
	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/storage"
	"github.com/advent-go/advent/internal/types"
	"github.com/advent-go/advent/internal/years/y2024/day14"
)

// setup runs the test in an empty directory with no ADVENT_* overrides.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{
		"INPUT_DIR", "DATABASE", "SESSION", "SESSION_FILE", "BASE_URL", "USER_AGENT",
		"LOG_LEVEL", "REQUESTS_PER_MINUTE", "WORKERS", "TIMEOUT",
	} {
		t.Setenv(config.EnvPrefix+key, "")
	}
	return dir
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	closeStore()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestVersion(t *testing.T) {
	setup(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "advent dev")
	assert.Contains(t, out, "19 puzzles")
}

func TestMissingConfigFile(t *testing.T) {
	setup(t)
	_, err := execute(t, "--config", "missing.yaml", "version")
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestList(t *testing.T) {
	setup(t)
	writeFile(t, filepath.Join("inputs", "2022", "day03.txt"), "vJrwpWtwJgWrhcsFMMfFFhFp\n")

	out, err := execute(t, "list", "2022")
	require.NoError(t, err)
	assert.Contains(t, out, "2022\n")
	assert.Contains(t, out, "  2022/03  Rucksack Reorganization (input cached)\n")
	assert.Contains(t, out, "  2022/06  Tuning Trouble\n")
	assert.NotContains(t, out, "2024/01")

	_, err = execute(t, "list", "2019")
	assert.ErrorIs(t, err, puzzle.ErrNotFound)
}

func TestRunExample(t *testing.T) {
	setup(t)
	out, err := execute(t, "run", "2024", "6", "--example")
	require.NoError(t, err)
	assert.Contains(t, out, "=== 2024 Day 6 ===\n\nPart One:\n41\n\nPart Two:\n6\n")
	assert.Contains(t, out, "Verdict: match")

	_, err = os.Stat(filepath.Join(".advent", "advent.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunAllExamples(t *testing.T) {
	setup(t)
	out, err := execute(t, "run", "--all", "--example")
	require.NoError(t, err)
	assert.Equal(t, 19, strings.Count(out, "Verdict: match"))
	assert.Less(t, strings.Index(out, "=== 2015 Day 1 ==="), strings.Index(out, "=== 2025 Day 1 ==="))
}

func TestRunArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad day", []string{"run", "2024", "26"}, "day must be between 1 and 25"},
		{"unknown year", []string{"run", "2019"}, "no puzzles for 2019"},
		{"not solved", []string{"run", "2023", "1"}, "puzzle not found"},
		{"input with many", []string{"run", "2024", "--input", "x.txt"}, "--input requires a single puzzle"},
		{"input and example", []string{"run", "2024", "6", "--input", "x.txt", "--example"}, "none of the others can be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)
			_, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunConfirmCheck(t *testing.T) {
	setup(t)
	writeFile(t, filepath.Join("inputs", "2015", "day01.txt"), "())")

	out, err := execute(t, "run", "2015", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Part One:\n-1\n\nPart Two:\n3\n")
	assert.Contains(t, out, "Verdict: new")

	out, err = execute(t, "confirm", "2015/01")
	require.NoError(t, err)
	assert.Contains(t, out, `Confirmed 2015/01: part one "-1", part two "3"`)

	out, err = execute(t, "run", "2015", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Verdict: match")

	out, err = execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "1 checked: 1 match, 0 new, 0 mismatch, 0 failed")

	out, err = execute(t, "history", "--limit", "10")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "2015/01"))

	// A confirmed answer that no longer matches fails the check.
	st, err := storage.NewStorage(context.Background(), &storage.Config{Path: filepath.Join(".advent", "advent.db")})
	require.NoError(t, err)
	require.NoError(t, st.ConfirmAnswer(context.Background(), &types.Answer{
		Puzzle:    puzzle.ID{Year: 2015, Day: 1},
		InputHash: storage.HashInput("())"),
		PartOne:   "-2",
		PartTwo:   "3",
	}))
	require.NoError(t, st.Close())

	out, err = execute(t, "check", "2015")
	assert.ErrorContains(t, err, "1 puzzles did not match")
	assert.Contains(t, out, "got -1 / 3, want -2 / 3")

	out, err = execute(t, "history", "--verdict", "mismatch")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "2015/01"))
}

func TestRunFailureIsRecorded(t *testing.T) {
	setup(t)
	writeFile(t, "up.txt", "(((")

	out, err := execute(t, "run", "2015", "1", "--input", "up.txt")
	assert.ErrorContains(t, err, "1 of 1 puzzles failed")
	assert.Contains(t, out, "2015/01: never entered the basement")

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "file")

	_, err = execute(t, "confirm", "2015", "1")
	assert.ErrorContains(t, err, "no successful run of 2015/01")
}

func TestHistoryValidation(t *testing.T) {
	setup(t)
	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded\n", out)

	_, err = execute(t, "history", "--limit", "0")
	assert.ErrorContains(t, err, "limit must be at least 1")

	_, err = execute(t, "history", "--verdict", "great")
	assert.ErrorContains(t, err, "verdict must be one of")
}

func TestCheckWithoutInputs(t *testing.T) {
	setup(t)
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "No cached inputs to check")
}

func TestFetch(t *testing.T) {
	setup(t)
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "s3cret" {
			http.Error(w, "unauthorized", http.StatusBadRequest)
			return
		}
		assert.Equal(t, "/2024/day/6/input", r.URL.Path)
		_, _ = w.Write([]byte("....#\n"))
	}))
	defer srv.Close()
	t.Setenv(config.EnvPrefix+"BASE_URL", srv.URL)
	t.Setenv(config.EnvPrefix+"SESSION", "s3cret")

	out, err := execute(t, "fetch", "2024", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved input for 2024/06")
	data, err := os.ReadFile(filepath.Join("inputs", "2024", "day06.txt"))
	require.NoError(t, err)
	assert.Equal(t, "....#\n", string(data))

	out, err = execute(t, "fetch", "2024/06")
	require.NoError(t, err)
	assert.Contains(t, out, "already cached")
	assert.Equal(t, int32(1), requests.Load())

	_, err = execute(t, "fetch", "2024", "6", "--force")
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
}

func TestFetchWithoutSession(t *testing.T) {
	setup(t)
	_, err := execute(t, "fetch", "2024", "6")
	assert.ErrorIs(t, err, input.ErrNoSession)
}

func TestPlot(t *testing.T) {
	setup(t)
	writeFile(t, "robots.txt", day14.Example)

	out, err := execute(t, "plot", "tree.png", "--input", "robots.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "after 0 seconds to tree.png")

	out, err = execute(t, "plot", "frame.png", "--input", "robots.txt", "--seconds", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "after 100 seconds")

	for _, name := range []string{"tree.png", "frame.png"} {
		info, err := os.Stat(name)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	_, err = execute(t, "plot", "bad.png", "--input", "robots.txt", "--seconds", "-1")
	assert.ErrorContains(t, err, "seconds must be non-negative")
}
