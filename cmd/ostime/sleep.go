// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ostime/lib/cli"
	"github.com/bureau-foundation/ostime/lib/ostime"
)

type sleepRecord struct {
	Source    string `json:"source"`
	Requested int64  `json:"requested_ns"`
	Elapsed   int64  `json:"elapsed_ns"`
	Unslept   int64  `json:"unslept_ns"`
	Complete  bool   `json:"complete"`
}

func (r sleepRecord) fields() []field {
	return []field{
		{"requested", ostime.Duration(r.Requested).String()},
		{"elapsed", ostime.Duration(r.Elapsed).String()},
		{"unslept", ostime.Duration(r.Unslept).String()},
		{"complete", strconv.FormatBool(r.Complete)},
	}
}

func (a *app) sleepCommand() *cli.Command {
	return &cli.Command{
		Name:    "sleep",
		Summary: "Sleep for a duration, retrying on signal interruption",
		Description: `Sleep for a duration, retrying on signal interruption.

Signals that interrupt the sleep do not shorten it: the sleep resumes
with the remaining time. Elapsed time is measured on the monotonic
clock. Exits 1 if the kernel rejects the sleep before it completes.`,
		Usage: "ostime sleep <duration> [flags]",
		Flags: func() *pflag.FlagSet { return a.flags("sleep") },
		Run: func(args []string) error {
			d, err := parseDurationArgument(args)
			if err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}

			start := a.source.Monotonic()
			unslept := ostime.SleepOn(a.source, d)
			elapsed := a.source.Monotonic() - start

			a.logger.Debug("sleep finished", "requested", d, "elapsed", ostime.Duration(elapsed), "unslept", unslept)

			if err := a.emit(sleepRecord{
				Source:    a.source.Name(),
				Requested: int64(d),
				Elapsed:   int64(elapsed),
				Unslept:   int64(unslept),
				Complete:  unslept == 0,
			}); err != nil {
				return err
			}
			if unslept != 0 {
				return &cli.ExitError{Code: 1, Err: fmt.Errorf("sleep ended with %v unslept", unslept)}
			}
			return nil
		},
	}
}
