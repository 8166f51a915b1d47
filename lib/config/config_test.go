// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/ostime/lib/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	location, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if location != time.Local {
		t.Errorf("expected time.Local, got %v", location)
	}
	if cfg.Drift.Server != "pool.ntp.org" {
		t.Errorf("expected drift.server=pool.ntp.org, got %s", cfg.Drift.Server)
	}
}

func TestResolve_NoFile(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Timezone != "Local" {
		t.Errorf("expected defaults, got timezone=%s", cfg.Timezone)
	}
}

func TestResolve_FlagBeatsEnvironment(t *testing.T) {
	envPath := testutil.WriteFile(t, "env.yaml", "timezone: UTC\n")
	flagPath := testutil.WriteFile(t, "flag.yaml", "timezone: Asia/Tokyo\n")
	t.Setenv(EnvironmentVariable, envPath)

	cfg, err := Resolve(flagPath)
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	if cfg.Timezone != "Asia/Tokyo" {
		t.Errorf("expected flag file to win, got timezone=%s", cfg.Timezone)
	}

	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve from environment: %v", err)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("expected environment file, got timezone=%s", cfg.Timezone)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := testutil.WriteFile(t, "ostime.yaml", `
timezone: UTC
format: json
log_level: debug
drift:
  server: time.example.net
  timeout: 2s
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("expected format=json, got %s", cfg.Format)
	}
	level, _ := cfg.SlogLevel()
	if level != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", level)
	}
	timeout, _ := cfg.DriftTimeout()
	if timeout != 2*time.Second {
		t.Errorf("expected drift timeout 2s, got %v", timeout)
	}
	// Unset fields keep their defaults.
	if cfg.Drift.MaxOffset != "500ms" {
		t.Errorf("expected default max_offset, got %s", cfg.Drift.MaxOffset)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	path := testutil.WriteFile(t, "ostime.jsonc", `{
  // Wall-clock conversions in UTC.
  "timezone": "UTC",
  "format": "cbor", /* machine consumers */
  "drift": {"server": "ntp.example.org",},
}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Format != FormatCBOR || cfg.Drift.Server != "ntp.example.org" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadFile_ExpandsVariables(t *testing.T) {
	t.Setenv("OSTIME_TEST_NTP", "ntp.internal")
	path := testutil.WriteFile(t, "ostime.yaml", `
timezone: ${OSTIME_TEST_ZONE:-UTC}
drift:
  server: ${OSTIME_TEST_NTP}:123
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("expected default expansion to UTC, got %s", cfg.Timezone)
	}
	if cfg.Drift.Server != "ntp.internal:123" {
		t.Errorf("expected ntp.internal:123, got %s", cfg.Drift.Server)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	path := testutil.WriteFile(t, "bad.yaml", `
timezone: Not/AZone
format: xml
log_level: loud
drift:
  server: ""
  timeout: -1s
`)
	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, fragment := range []string{"timezone", "format", "log_level", "drift.server", "drift.timeout"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("expected error to mention %q, got: %v", fragment, err)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
