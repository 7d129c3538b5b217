// Package input resolves a puzzle's input from a file, stdin, the embedded
// example, the local cache or the puzzle site.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/advent-go/advent/internal/config"
	"github.com/advent-go/advent/internal/puzzle"
)

// ErrNoSession is returned when an input has to be downloaded but no session
// cookie is configured.
var ErrNoSession = errors.New("no session cookie configured (set ADVENT_SESSION)")

// Source records where an input came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceStdin    Source = "stdin"
	SourceExample  Source = "example"
	SourceCache    Source = "cache"
	SourceDownload Source = "download"
)

// Options selects an input other than the cached or downloaded one.
type Options struct {
	// Path reads the input from a file; "-" reads stdin.
	Path string
	// Example uses the puzzle's embedded example.
	Example bool
}

// Loader finds puzzle inputs.
type Loader struct {
	dir       string
	baseURL   string
	session   string
	userAgent string

	client  *http.Client
	limiter *rate.Limiter
	stdin   io.Reader
	logger  *zap.Logger
}

// NewLoader creates a loader from cfg. A nil logger discards log output.
func NewLoader(cfg *config.Config, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		dir:       cfg.InputDir,
		baseURL:   cfg.BaseURL,
		session:   cfg.Session,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: 30 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		stdin:     os.Stdin,
		logger:    logger,
	}
}

// CachePath returns where the input for id is cached.
func (l *Loader) CachePath(id puzzle.ID) string {
	return filepath.Join(l.dir, fmt.Sprint(id.Year), fmt.Sprintf("day%02d.txt", id.Day))
}

// Cached reports whether the input for id is already on disk.
func (l *Loader) Cached(id puzzle.ID) bool {
	_, err := os.Stat(l.CachePath(id))
	return err == nil
}

// Load returns the input for p. An explicit path or the example take
// precedence, then the cache, and finally a download that is written to the
// cache.
func (l *Loader) Load(ctx context.Context, p puzzle.Puzzle, opts Options) (string, Source, error) {
	switch {
	case opts.Path == "-":
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), SourceStdin, nil

	case opts.Path != "":
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return "", "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), SourceFile, nil

	case opts.Example:
		if p.Example == "" {
			return "", "", fmt.Errorf("puzzle %s has no example", p.ID)
		}
		return p.Example, SourceExample, nil
	}

	if data, err := os.ReadFile(l.CachePath(p.ID)); err == nil {
		l.logger.Debug("using cached input", zap.Stringer("puzzle", p.ID), zap.String("path", l.CachePath(p.ID)))
		return string(data), SourceCache, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", "", fmt.Errorf("failed to read cached input: %w", err)
	}

	data, err := l.Fetch(ctx, p.ID)
	if err != nil {
		return "", "", err
	}
	return data, SourceDownload, nil
}

// Fetch downloads the input for id and stores it in the cache, replacing any
// cached copy.
func (l *Loader) Fetch(ctx context.Context, id puzzle.ID) (string, error) {
	if l.session == "" {
		return "", ErrNoSession
	}
	if err := l.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed waiting for rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", l.baseURL, id.Year, id.Day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: l.session})
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	l.logger.Info("downloading input", zap.Stringer("puzzle", id), zap.String("url", url))
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download input for %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download input for %s: %s", id, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read input for %s: %w", id, err)
	}

	path := l.CachePath(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create input cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to cache input: %w", err)
	}
	return string(data), nil
}
