// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ostime/lib/cli"
	"github.com/bureau-foundation/ostime/lib/ostime"
)

type timeoutRecord struct {
	Duration     int64           `json:"duration_ns"`
	Milliseconds int32           `json:"milliseconds"`
	Relative     ostime.Timespec `json:"relative"`
	Absolute     ostime.Timespec `json:"absolute"`
}

func (r timeoutRecord) fields() []field {
	return []field{
		{"duration", ostime.Duration(r.Duration).String()},
		{"milliseconds", strconv.FormatInt(int64(r.Milliseconds), 10)},
		{"relative", r.Relative.String()},
		{"absolute", r.Absolute.String()},
	}
}

func (a *app) timeoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "timeout",
		Summary: "Convert a duration to poll and absolute-deadline timeouts",
		Description: `Convert a duration to the timeout forms passed to the kernel.

milliseconds is the poll(2) form: 0 for non-positive durations, -1
(wait forever) when the duration does not fit in 32 bits of
milliseconds. absolute is the realtime deadline now+duration used by
timed condition waits.`,
		Usage: "ostime timeout <duration> [flags]",
		Flags: func() *pflag.FlagSet { return a.flags("timeout") },
		Run: func(args []string) error {
			d, err := parseDurationArgument(args)
			if err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			return a.emit(timeoutRecord{
				Duration:     int64(d),
				Milliseconds: d.Milliseconds(),
				Relative:     d.Timespec(),
				Absolute:     d.AbsoluteTimespecFrom(a.source),
			})
		},
	}
}
