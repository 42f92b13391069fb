package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tracker's runtime settings.
type Config struct {
	// DBPath is the SQLite file holding the trade ledger.
	DBPath string `json:"db_path" yaml:"db_path"`
	// CacheTTL is the query-cache freshness window, e.g. "5m".
	CacheTTL string `json:"cache_ttl,omitempty" yaml:"cache_ttl,omitempty"`
	// QueryLimit is the default number of records list/stats operate on.
	QueryLimit uint `json:"query_limit,omitempty" yaml:"query_limit,omitempty"`
	// LogLevel: debug|info|warn|error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DBPath:     "trades.db",
		CacheTTL:   "5m",
		QueryLimit: 200,
		LogLevel:   "info",
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON). Missing
// fields fall back to defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if jerr := json.Unmarshal(data, &cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if _, err := c.CacheTTLDuration(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// CacheTTLDuration parses CacheTTL; empty means the default window.
func (c *Config) CacheTTLDuration() (time.Duration, error) {
	if c.CacheTTL == "" {
		return 5 * time.Minute, nil
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("cache_ttl: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("cache_ttl must be positive, got %s", c.CacheTTL)
	}
	return d, nil
}
