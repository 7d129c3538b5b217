package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ADVENT_"

// applyEnv overrides fields from the environment.
//
// Environment variables:
//   - ADVENT_INPUT_DIR: input cache directory
//   - ADVENT_DATABASE: SQLite database path
//   - ADVENT_SESSION: adventofcode.com session cookie
//   - ADVENT_SESSION_FILE: file holding the session cookie
//   - ADVENT_BASE_URL: puzzle site URL
//   - ADVENT_USER_AGENT: User-Agent sent with downloads
//   - ADVENT_REQUESTS_PER_MINUTE: download rate limit
//   - ADVENT_WORKERS: concurrent puzzle runs
//   - ADVENT_TIMEOUT: per puzzle timeout, e.g. 30s
//   - ADVENT_LOG_LEVEL: debug, info, warn or error
func (c *Config) applyEnv() error {
	fields := map[string]*string{
		"INPUT_DIR":    &c.InputDir,
		"DATABASE":     &c.DatabasePath,
		"SESSION":      &c.Session,
		"SESSION_FILE": &c.SessionFile,
		"BASE_URL":     &c.BaseURL,
		"USER_AGENT":   &c.UserAgent,
		"LOG_LEVEL":    &c.LogLevel,
	}
	for key, dest := range fields {
		parseEnvString(EnvPrefix+key, dest)
	}

	if err := parseEnvInt(EnvPrefix+"REQUESTS_PER_MINUTE", &c.RequestsPerMinute); err != nil {
		return err
	}
	if err := parseEnvInt(EnvPrefix+"WORKERS", &c.Workers); err != nil {
		return err
	}
	if err := parseEnvDuration(EnvPrefix+"TIMEOUT", &c.Timeout); err != nil {
		return err
	}
	return nil
}

// parseEnvInt parses an int from an environment variable
func parseEnvInt(key string, dest *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}

// parseEnvDuration parses a time.Duration from an environment variable
func parseEnvDuration(key string, dest *time.Duration) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}

func parseEnvString(key string, dest *string) {
	if value := os.Getenv(key); value != "" {
		*dest = value
	}
}
