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

type monoRecord struct {
	Source      string `json:"source"`
	Index       int    `json:"index"`
	Nanoseconds uint64 `json:"nanoseconds"`
	Delta       uint64 `json:"delta_ns"`
}

func (r monoRecord) fields() []field {
	return []field{
		{"index", strconv.Itoa(r.Index)},
		{"monotonic", strconv.FormatUint(r.Nanoseconds, 10)},
		{"delta", ostime.Duration(r.Delta).String()},
	}
}

func (a *app) monoCommand() *cli.Command {
	var (
		count    int
		interval string
	)
	return &cli.Command{
		Name:    "mono",
		Summary: "Print monotonic clock readings",
		Description: `Print monotonic clock readings in nanoseconds.

Each reading also reports its delta from the first. With --interval the
command sleeps between readings, so deltas show the sleep's accuracy.`,
		Usage: "ostime mono [--count N] [--interval DURATION] [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := a.flags("mono")
			flagSet.IntVarP(&count, "count", "n", 1, "number of readings")
			flagSet.StringVar(&interval, "interval", "0s", "sleep between readings")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", cli.ErrUsage, args[0])
			}
			if count < 1 {
				return fmt.Errorf("%w: --count must be at least 1", cli.ErrUsage)
			}
			pause, err := ostime.ParseDuration(interval)
			if err != nil {
				return fmt.Errorf("%w: --interval: %v", cli.ErrUsage, err)
			}
			if err := a.setup(); err != nil {
				return err
			}

			var first, previous uint64
			for index := range count {
				if index > 0 {
					ostime.SleepOn(a.source, pause)
					a.emitSeparator()
				}
				reading, err := a.source.MonotonicChecked()
				if err != nil {
					return fmt.Errorf("reading monotonic clock from %s source: %w", a.source.Name(), err)
				}
				if index == 0 {
					first = reading
				} else if reading < previous {
					a.logger.Warn("monotonic clock went backwards",
						"previous", previous,
						"reading", reading,
					)
				}
				previous = reading

				if err := a.emit(monoRecord{
					Source:      a.source.Name(),
					Index:       index,
					Nanoseconds: reading,
					Delta:       reading - first,
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
