// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads ostime tool configuration.
//
// Configuration comes from a single file named by either the --config
// flag or the OSTIME_CONFIG environment variable, in that order of
// precedence. Without either, [Default] is used as-is. There is no
// search path and no per-field environment override.
//
// Files ending in .json or .jsonc are parsed as JSON with comments and
// trailing commas (github.com/tidwall/jsonc). Everything else is YAML.
//
// ${VAR} and ${VAR:-default} patterns in the timezone and drift server
// fields are expanded from the environment after loading.
//
// The timezone field is the local-time input for wall-clock
// conversions: an IANA name ("Europe/Berlin"), "UTC", or "Local" for
// the process setting (TZ or /etc/localtime).
//
// This package depends on no other ostime packages.
package config
