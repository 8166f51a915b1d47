// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when no --config flag is
// given.
const EnvironmentVariable = "OSTIME_CONFIG"

// Format selects how commands print readings.
type Format string

const (
	// FormatAuto prints text to a terminal and JSON otherwise.
	FormatAuto Format = ""
	// FormatText is human-readable key/value output.
	FormatText Format = "text"
	// FormatJSON is one JSON object per reading.
	FormatJSON Format = "json"
	// FormatCBOR is one deterministic CBOR item per reading.
	FormatCBOR Format = "cbor"
)

// Config is the full tool configuration.
type Config struct {
	// Timezone is the zone used for local wall-clock conversions.
	// Default: Local
	Timezone string `yaml:"timezone" json:"timezone"`

	// Format is the default output format. Default: auto.
	Format Format `yaml:"format" json:"format"`

	// LogLevel is one of debug, info, warn, error. Default: info
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Drift configures the NTP drift probe.
	Drift DriftConfig `yaml:"drift" json:"drift"`
}

// DriftConfig configures the NTP drift probe.
type DriftConfig struct {
	// Server is the NTP host, optionally with :port.
	// Default: pool.ntp.org
	Server string `yaml:"server" json:"server"`

	// Timeout bounds one NTP query. Default: 5s
	Timeout string `yaml:"timeout" json:"timeout"`

	// MaxOffset is the absolute offset above which the probe reports
	// the local clock as unhealthy. Default: 500ms
	MaxOffset string `yaml:"max_offset" json:"max_offset"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Timezone: "Local",
		Format:   FormatAuto,
		LogLevel: "info",
		Drift: DriftConfig{
			Server:    "pool.ntp.org",
			Timeout:   "5s",
			MaxOffset: "500ms",
		},
	}
}

// Resolve picks the config file from flagPath, then OSTIME_CONFIG, and
// loads it. With neither set it returns Default().
func Resolve(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvironmentVariable)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path over the defaults and
// validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges the file at path into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

func (c *Config) expandVariables() {
	c.Timezone = expandVars(c.Timezone)
	c.Drift.Server = expandVars(c.Drift.Server)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks every field that has a constrained value.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	switch c.Format {
	case FormatAuto, FormatText, FormatJSON, FormatCBOR:
	default:
		errs = append(errs, fmt.Errorf("format must be one of: text, json, cbor (got %q)", c.Format))
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if c.Drift.Server == "" {
		errs = append(errs, errors.New("drift.server is required"))
	}
	if _, err := c.DriftTimeout(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.DriftMaxOffset(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Location resolves Timezone. "Local" and the empty string return
// time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return location, nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// DriftTimeout parses Drift.Timeout.
func (c *Config) DriftTimeout() (time.Duration, error) {
	return parsePositive("drift.timeout", c.Drift.Timeout)
}

// DriftMaxOffset parses Drift.MaxOffset.
func (c *Config) DriftMaxOffset() (time.Duration, error) {
	return parsePositive("drift.max_offset", c.Drift.MaxOffset)
}

func parsePositive(field, value string) (time.Duration, error) {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive (got %s)", field, value)
	}
	return parsed, nil
}
