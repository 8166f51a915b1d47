// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ostime/lib/cli"
	"github.com/bureau-foundation/ostime/lib/ostime"
)

type nowRecord struct {
	Source      string    `json:"source"`
	Instant     string    `json:"instant"`
	Time        time.Time `json:"time"`
	Unix        int64     `json:"unix"`
	Microsecond int       `json:"microsecond"`
	Local       bool      `json:"local"`
	Zone        string    `json:"zone"`
	Offset      int       `json:"offset"`
	Weekday     int       `json:"weekday"`
	YearDay     int       `json:"year_day"`
	DST         int       `json:"dst"`
}

func (r nowRecord) fields() []field {
	return []field{
		{"instant", r.Instant},
		{"unix", strconv.FormatInt(r.Unix, 10)},
		{"microsecond", strconv.Itoa(r.Microsecond)},
		{"zone", r.Zone},
		{"offset", strconv.Itoa(r.Offset)},
		{"weekday", time.Weekday(r.Weekday).String()},
		{"year day", strconv.Itoa(r.YearDay + 1)},
		{"dst", strconv.Itoa(r.DST)},
		{"source", r.Source},
	}
}

func (a *app) nowCommand() *cli.Command {
	var utc bool
	return &cli.Command{
		Name:    "now",
		Summary: "Print the current wall-clock instant",
		Description: `Print the current wall-clock instant.

Reads the realtime clock once, truncated to microseconds. Local time
uses the configured timezone; --utc prints UTC instead.`,
		Usage: "ostime now [--utc] [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := a.flags("now")
			flagSet.BoolVar(&utc, "utc", false, "print UTC instead of local time")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", cli.ErrUsage, args[0])
			}
			if err := a.setup(); err != nil {
				return err
			}

			var (
				instant ostime.Instant
				fields  ostime.BrokenDownTime
				zone    = "UTC"
				err     error
			)
			if utc {
				if instant, err = a.reader.UTCNowChecked(); err != nil {
					return err
				}
				fields = ostime.DecomposeUTC(instant.Unix())
			} else {
				if instant, err = a.reader.LocalNowChecked(); err != nil {
					return err
				}
				fields = a.reader.DecomposeLocal(instant.Unix())
				zone = a.reader.Location().String()
			}

			return a.emit(nowRecord{
				Source:      a.source.Name(),
				Instant:     instant.String(),
				Time:        instant.Time(),
				Unix:        instant.Unix(),
				Microsecond: instant.Microsecond(),
				Local:       instant.IsLocal(),
				Zone:        zone,
				Offset:      instant.Offset(),
				Weekday:     fields.Wday,
				YearDay:     fields.Yday,
				DST:         fields.Isdst,
			})
		},
	}
}
