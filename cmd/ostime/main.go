// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/bureau-foundation/ostime/lib/cli"
	"github.com/bureau-foundation/ostime/lib/ostime"
	"github.com/bureau-foundation/ostime/lib/process"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		process.Fatal("ostime", err)
	}
}

func run(args []string) error {
	a := newApp(ostime.Platform(), os.Stdout, os.Stderr)
	a.terminal = cli.IsTerminal(os.Stdout)
	return a.root().Execute(args)
}
