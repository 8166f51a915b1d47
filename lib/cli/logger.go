// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger returns a logger on stderr at level. A terminal gets
// slog.TextHandler output; a pipe or file gets slog.JSONHandler so
// scripts can parse it.
func NewCommandLogger(level slog.Level) *slog.Logger {
	return NewLogger(os.Stderr, IsTerminal(os.Stderr), level)
}

// NewLogger is NewCommandLogger writing to w, with the terminal
// decision made by the caller.
func NewLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// IsTerminal reports whether file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
