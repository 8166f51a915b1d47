// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the ostime
// binary: nested [Command] values dispatched by name, per-command
// github.com/spf13/pflag flag sets, generated help, and
// [NewCommandLogger] for structured logs on stderr.
package cli
