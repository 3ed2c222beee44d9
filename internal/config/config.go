// Package config provides YAML-based configuration loading for the cronnext
// binary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // location names resolve without a system zoneinfo

	"gopkg.in/yaml.v3"

	"github.com/netresearch/go-cronnext"
)

// DefaultPath is the config file read when no --config flag is given. A
// missing file at this path is not an error.
const DefaultPath = "cronnext.yaml"

// Config is the top-level configuration, loaded from cronnext.yaml.
type Config struct {
	// Location is the IANA timezone expressions are evaluated in. Empty
	// means the local timezone.
	Location    string       `yaml:"location"`
	SearchLimit int          `yaml:"search_limit"`
	Log         LogConfig    `yaml:"log"`
	Server      ServerConfig `yaml:"server"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig holds settings for the HTTP preview API.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	MaxCount int    `yaml:"max_count"`
	// RatePerSec limits requests per second across all clients. Zero
	// disables rate limiting.
	RatePerSec float64 `yaml:"rate_per_sec"`
	Burst      int     `yaml:"burst"`
	// Watch reloads location and search_limit when the file changes.
	Watch bool `yaml:"watch"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault behaves like Load, except that a missing file yields the
// default configuration.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in default values.
func (c *Config) applyDefaults() {
	if c.SearchLimit == 0 {
		c.SearchLimit = cronnext.DefaultSearchLimit
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxCount == 0 {
		c.Server.MaxCount = 50
	}
	if c.Server.RatePerSec > 0 && c.Server.Burst == 0 {
		c.Server.Burst = int(math.Ceil(c.Server.RatePerSec))
	}
}

// validate checks that all fields are consistent.
func (c *Config) validate() error {
	var errs []string
	if _, err := time.LoadLocation(c.Location); err != nil {
		errs = append(errs, fmt.Sprintf("location %q: %v", c.Location, err))
	}
	if c.SearchLimit < 0 {
		errs = append(errs, "search_limit must be positive")
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not one of trace, debug, info, warn, error, disabled", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be console or json", c.Log.Format))
	}
	if c.Server.MaxCount < 0 {
		errs = append(errs, "server.max_count must be positive")
	}
	if c.Server.RatePerSec < 0 {
		errs = append(errs, "server.rate_per_sec must not be negative")
	}
	if c.Server.Burst < 0 {
		errs = append(errs, "server.burst must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// TimeLocation returns the configured timezone. An empty Location yields
// time.Local.
func (c *Config) TimeLocation() *time.Location {
	if c.Location == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.Local
	}
	return loc
}
