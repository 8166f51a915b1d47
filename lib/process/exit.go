// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/ostime/lib/cli"
)

// Fatal writes "<program>: error: err" to stderr and exits with
// ExitCode(err). A cli.ExitError without a cause exits silently.
func Fatal(program string, err error) {
	var exit *cli.ExitError
	if !errors.As(err, &exit) || exit.Err != nil {
		report(os.Stderr, program, err)
	}
	os.Exit(ExitCode(err))
}

// ExitCode maps err to a process exit status: 0 for nil, the error's
// own ExitCode() if it has one, 2 for command-line usage errors, and 1
// otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if errors.Is(err, cli.ErrUsage) {
		return 2
	}
	return 1
}

func report(w io.Writer, program string, err error) {
	fmt.Fprintf(w, "%s: error: %v\n", program, err)
}
