// Package config loads the nost configuration file and its environment
// overrides. The core pipeline never reads configuration itself; values are
// passed down from the CLI layer.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// WorkConfig holds the values the work-stats report derives salary from.
type WorkConfig struct {
	DailyRate float64 `yaml:"daily_rate"`
	Currency  string  `yaml:"currency"`
}

// Config is the full nost configuration.
type Config struct {
	NotPath  string     `yaml:"not_path"`
	Language string     `yaml:"language"`
	LogLevel string     `yaml:"log_level"`
	Work     WorkConfig `yaml:"work"`
}

// Default returns a Config with sensible defaults: notes under
// ~/.nost/nots, English headers, warnings-only logging, zero salary in EUR.
func Default() Config {
	cfg := Config{
		Language: "en",
		LogLevel: "warn",
		Work:     WorkConfig{DailyRate: 0, Currency: "EUR"},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.NotPath = filepath.Join(home, ".nost", "nots")
	}
	return cfg
}

// DefaultPath returns the config file location: NOST_CONFIG if set,
// otherwise ~/.nost/config.yaml.
func DefaultPath() string {
	if v := os.Getenv("NOST_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".nost", "config.yaml")
}

// Load reads the YAML config at path and applies environment overrides,
// falling back to defaults for anything unset. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// run on defaults
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NOST_NOT_PATH"); v != "" {
		cfg.NotPath = v
	}
	if v := os.Getenv("NOST_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("NOST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NOST_WORK_DAILY_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Work.DailyRate = f
		}
	}
	if v := os.Getenv("NOST_WORK_CURRENCY"); v != "" {
		cfg.Work.Currency = v
	}
}

// SlogLevel maps the configured log level onto a slog.Level, defaulting to
// warn for unrecognized values.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
