// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ostime/lib/cli"
	"github.com/bureau-foundation/ostime/lib/drift"
)

// driftRecord flattens drift.Report into the output record.
type driftRecord struct {
	drift.Report
}

func (r driftRecord) fields() []field {
	return []field{
		{"server", r.Server},
		{"server time", r.ServerTime.UTC().Format(time.RFC3339Nano)},
		{"local", r.Local.String()},
		{"offset", r.Offset.String()},
		{"system offset", r.SystemOffset.String()},
		{"rtt", r.RTT.String()},
		{"stratum", strconv.Itoa(int(r.Stratum))},
		{"healthy", strconv.FormatBool(r.Healthy)},
	}
}

func (a *app) driftCommand() *cli.Command {
	var (
		server    string
		timeout   string
		maxOffset string
	)
	return &cli.Command{
		Name:    "drift",
		Summary: "Measure realtime clock offset against an NTP server",
		Description: `Measure realtime clock offset against an NTP server.

Queries the server once and compares its time, corrected by half the
round trip, to a realtime reading. A positive offset means the local
clock is behind. Exits 3 when the offset exceeds the configured
maximum (drift.max_offset, default 500ms).`,
		Usage: "ostime drift [--server HOST] [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := a.flags("drift")
			flagSet.StringVar(&server, "server", "", "NTP server (default: drift.server from config)")
			flagSet.StringVar(&timeout, "timeout", "", "query timeout (default: drift.timeout from config)")
			flagSet.StringVar(&maxOffset, "max-offset", "", "largest healthy offset (default: drift.max_offset from config)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", cli.ErrUsage, args[0])
			}
			if err := a.setup(); err != nil {
				return err
			}

			// Flags override the config file field by field and go
			// through the same validation.
			settings := *a.config
			if server != "" {
				settings.Drift.Server = server
			}
			if timeout != "" {
				settings.Drift.Timeout = timeout
			}
			if maxOffset != "" {
				settings.Drift.MaxOffset = maxOffset
			}
			queryTimeout, err := settings.DriftTimeout()
			if err != nil {
				return fmt.Errorf("%w: %v", cli.ErrUsage, err)
			}
			limit, err := settings.DriftMaxOffset()
			if err != nil {
				return fmt.Errorf("%w: %v", cli.ErrUsage, err)
			}

			prober := drift.NewProber(a.source, queryTimeout, limit, a.logger)
			if a.querier != nil {
				prober.SetQuerier(a.querier)
			}
			report, err := prober.Probe(settings.Drift.Server)
			if err != nil {
				return err
			}
			if err := a.emit(driftRecord{report}); err != nil {
				return err
			}
			if !report.Healthy {
				return &cli.ExitError{
					Code: 3,
					Err:  fmt.Errorf("clock offset %v from %s exceeds %v", report.Offset, report.Server, limit),
				}
			}
			return nil
		},
	}
}
