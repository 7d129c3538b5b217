// Package config loads the CLI configuration from defaults, an optional YAML
// file, a .env file and ADVENT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "advent.yaml"

// Config holds the settings shared by every command.
type Config struct {
	// InputDir is where downloaded puzzle inputs are cached, one
	// <year>/dayNN.txt file per puzzle.
	// Default: inputs
	InputDir string `yaml:"input_dir"`

	// DatabasePath is the SQLite database holding run history and confirmed
	// answers.
	// Default: .advent/advent.db
	DatabasePath string `yaml:"database_path"`

	// Session is the adventofcode.com session cookie used to download inputs.
	Session string `yaml:"session"`

	// SessionFile is read for the session cookie when Session is empty.
	SessionFile string `yaml:"session_file"`

	// BaseURL is the puzzle site.
	// Default: https://adventofcode.com
	BaseURL string `yaml:"base_url"`

	// UserAgent identifies the tool to the puzzle site.
	UserAgent string `yaml:"user_agent"`

	// RequestsPerMinute throttles input downloads.
	// Default: 5, Range: 1-60
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// Workers bounds how many puzzles run at once.
	// Default: GOMAXPROCS
	Workers int `yaml:"workers"`

	// Timeout limits a single puzzle run.
	// Default: 2m
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel is one of debug, info, warn or error.
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir:          "inputs",
		DatabasePath:      ".advent/advent.db",
		BaseURL:           "https://adventofcode.com",
		UserAgent:         "github.com/advent-go/advent",
		RequestsPerMinute: 5,
		Workers:           runtime.GOMAXPROCS(0),
		Timeout:           2 * time.Minute,
		LogLevel:          "info",
	}
}

// Load builds the configuration. Values are applied in increasing priority:
// defaults, the YAML file at path, then environment variables. Variables from
// a .env file in the working directory are loaded first but never replace
// variables already set. A missing file at path is only an error when
// required is set.
func Load(path string, required bool) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if required || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.resolveSession(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) resolveSession() error {
	if c.Session != "" || c.SessionFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}
	c.Session = strings.TrimSpace(string(data))
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}

	if c.RequestsPerMinute < 1 || c.RequestsPerMinute > 60 {
		return fmt.Errorf("requests_per_minute must be between 1 and 60, got %d", c.RequestsPerMinute)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}

// String returns the configuration with the session redacted.
func (c *Config) String() string {
	session := "unset"
	if c.Session != "" {
		session = "set"
	}
	return fmt.Sprintf(
		"Config{InputDir: %s, DatabasePath: %s, Session: %s, BaseURL: %s, "+
			"RequestsPerMinute: %d, Workers: %d, Timeout: %v, LogLevel: %s}",
		c.InputDir, c.DatabasePath, session, c.BaseURL,
		c.RequestsPerMinute, c.Workers, c.Timeout, c.LogLevel,
	)
}
