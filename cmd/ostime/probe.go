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

type probeRecord struct {
	Source         string          `json:"source"`
	Supported      bool            `json:"supported"`
	Monotonic      uint64          `json:"monotonic_ns"`
	MonotonicError string          `json:"monotonic_error,omitempty"`
	Realtime       ostime.Timespec `json:"realtime"`
	RealtimeError  string          `json:"realtime_error,omitempty"`
	UTC            string          `json:"utc"`
	Local          string          `json:"local"`
	Zone           string          `json:"zone"`
}

func (r probeRecord) fields() []field {
	monotonic := strconv.FormatUint(r.Monotonic, 10)
	if r.MonotonicError != "" {
		monotonic = "error: " + r.MonotonicError
	}
	realtime := r.Realtime.String()
	if r.RealtimeError != "" {
		realtime = "error: " + r.RealtimeError
	}
	return []field{
		{"source", r.Source},
		{"supported", strconv.FormatBool(r.Supported)},
		{"monotonic", monotonic},
		{"realtime", realtime},
		{"utc", r.UTC},
		{"local", r.Local},
		{"zone", r.Zone},
	}
}

func (a *app) probeCommand() *cli.Command {
	return &cli.Command{
		Name:    "probe",
		Summary: "Report which clocks this platform supports",
		Description: `Report which clocks this platform supports.

Performs a checked read of the monotonic and realtime clocks and
prints both, along with the UTC and local instants derived from the
realtime reading. Exits 1 after printing if any read failed.`,
		Usage: "ostime probe [flags]",
		Flags: func() *pflag.FlagSet { return a.flags("probe") },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", cli.ErrUsage, args[0])
			}
			if err := a.setup(); err != nil {
				return err
			}

			result := probeRecord{
				Source: a.source.Name(),
				Zone:   a.reader.Location().String(),
			}
			monotonic, monotonicErr := a.source.MonotonicChecked()
			if monotonicErr != nil {
				result.MonotonicError = monotonicErr.Error()
			}
			realtime, realtimeErr := a.source.RealtimeChecked()
			if realtimeErr != nil {
				result.RealtimeError = realtimeErr.Error()
			}
			result.Monotonic = monotonic
			result.Realtime = realtime
			result.Supported = monotonicErr == nil && realtimeErr == nil

			utc := a.reader.UTCNow()
			result.UTC = utc.String()
			result.Local = a.reader.ToLocal(utc).String()

			if err := a.emit(result); err != nil {
				return err
			}
			if !result.Supported {
				a.logger.Warn("clock source is not fully supported", "source", result.Source)
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
