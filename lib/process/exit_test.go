// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/bureau-foundation/ostime/lib/cli"
)

type codedError int

func (c codedError) Error() string { return fmt.Sprintf("exit %d", int(c)) }
func (c codedError) ExitCode() int { return int(c) }

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"usage", fmt.Errorf("%w: unknown flag", cli.ErrUsage), 2},
		{"coded", fmt.Errorf("wrapped: %w", codedError(3)), 3},
		{"exit error", &cli.ExitError{Code: 3, Err: errors.New("offset too large")}, 3},
		{"silent exit error", &cli.ExitError{Code: 4}, 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ExitCode(test.err); got != test.want {
				t.Errorf("ExitCode(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var buffer bytes.Buffer
	report(&buffer, "ostime", errors.New("clock unavailable"))
	if got, want := buffer.String(), "ostime: error: clock unavailable\n"; got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}
