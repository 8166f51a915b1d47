// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ostime/lib/cli"
	"github.com/bureau-foundation/ostime/lib/config"
	"github.com/bureau-foundation/ostime/lib/drift"
	"github.com/bureau-foundation/ostime/lib/ostime"
)

// app carries the state shared by every subcommand: the clock source,
// output streams, and whatever setup resolved from flags and config.
type app struct {
	source ostime.Source
	stdout io.Writer
	stderr io.Writer

	// terminal selects text output when --format is auto.
	terminal bool

	// logOutput overrides the command logger's destination. Nil logs
	// to stderr.
	logOutput io.Writer

	// querier replaces the NTP client used by drift.
	querier drift.Querier

	// Global flags, bound into every subcommand's flag set.
	configPath string
	format     string

	// Populated by setup.
	config *config.Config
	reader *ostime.Reader
	logger *slog.Logger
	output config.Format
}

func newApp(source ostime.Source, stdout, stderr io.Writer) *app {
	return &app{source: source, stdout: stdout, stderr: stderr}
}

func (a *app) root() *cli.Command {
	return &cli.Command{
		Name:    "ostime",
		Summary: "Inspect the host's clocks",
		Description: `Inspect the host's clocks.

Reads the monotonic and realtime clocks, sleeps through signal
interruptions, converts durations to the timeout forms used by poll(2)
and pthread_cond_timedwait(3), and measures local clock drift against
an NTP server.`,
		HelpOutput: a.stderr,
		Subcommands: []*cli.Command{
			a.nowCommand(),
			a.monoCommand(),
			a.sleepCommand(),
			a.timeoutCommand(),
			a.probeCommand(),
			a.driftCommand(),
			a.versionCommand(),
		},
	}
}

// flags returns a flag set holding the global flags. Subcommands add
// their own flags to it.
func (a *app) flags(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&a.configPath, "config", "", "config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&a.format, "format", "", "output format: text, json, or cbor (default: text on a terminal, json otherwise)")
	return flagSet
}

// setup loads configuration and builds the reader and logger. Every
// subcommand's Run calls it after flag parsing.
func (a *app) setup() error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if os.Getenv("OSTIME_DEBUG") != "" {
		cfg.LogLevel = "debug"
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	location, err := cfg.Location()
	if err != nil {
		return err
	}

	output := cfg.Format
	if a.format != "" {
		output = config.Format(a.format)
	}
	switch output {
	case config.FormatAuto:
		output = config.FormatJSON
		if a.terminal {
			output = config.FormatText
		}
	case config.FormatText, config.FormatJSON, config.FormatCBOR:
	default:
		return fmt.Errorf("%w: --format must be one of: text, json, cbor (got %q)", cli.ErrUsage, a.format)
	}

	if a.logOutput != nil {
		a.logger = cli.NewLogger(a.logOutput, false, level)
	} else {
		a.logger = cli.NewCommandLogger(level)
	}
	a.config = cfg
	a.reader = ostime.NewReader(a.source, location)
	a.output = output

	a.logger.Debug("configured",
		"source", a.source.Name(),
		"timezone", location.String(),
		"format", string(output),
	)
	return nil
}

// parseDurationArgument parses the single positional duration taken by
// sleep and timeout.
func parseDurationArgument(args []string) (ostime.Duration, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one duration argument (e.g. 250ms, 1.5s)", cli.ErrUsage)
	}
	d, err := ostime.ParseDuration(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return d, nil
}
