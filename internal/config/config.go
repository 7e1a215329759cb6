// Package config loads lvpatrol settings from an optional YAML file and
// LVPATROL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. LVPATROL_SEARCH_WORKERS.
const EnvPrefix = "LVPATROL_"

const maxConfigFileSize = 1024 * 1024 // 1MB

var (
	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("config: search.workers must be >= 0")
	// ErrInvalidFormat indicates an unknown log format.
	ErrInvalidFormat = errors.New("config: log.format must be \"json\" or \"console\"")
	// ErrFileTooLarge indicates the config file exceeds maxConfigFileSize.
	ErrFileTooLarge = errors.New("config: file too large")
)

// Config holds all lvpatrol settings.
type Config struct {
	Search SearchConfig `koanf:"search"`
	Log    LogConfig    `koanf:"log"`
}

// SearchConfig tunes the obstruction search.
type SearchConfig struct {
	// Workers bounds parallel candidate runs; 0 means GOMAXPROCS.
	Workers int `koanf:"workers"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Search: SearchConfig{Workers: 0},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads configuration with precedence (highest first):
//  1. LVPATROL_* environment variables (LVPATROL_LOG_LEVEL -> log.level)
//  2. the YAML file at path, if path is non-empty
//  3. Default()
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// LVPATROL_SEARCH_WORKERS -> search.workers; split on the first underscore only.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		parts := strings.SplitN(key, "_", 2)
		if len(parts) == 1 {
			return key
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Search.Workers < 0 {
		return ErrInvalidWorkers
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Log.Format)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return content, nil
}
