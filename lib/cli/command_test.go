// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string
	root := &Command{
		Name: "ostime",
		Subcommands: []*Command{
			{Name: "now", Run: func(args []string) error { called = "now"; return nil }},
			{Name: "mono", Run: func(args []string) error { called = "mono"; return nil }},
		},
	}

	if err := root.Execute([]string{"mono"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "mono" {
		t.Errorf("dispatched to %q, want %q", called, "mono")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var count int
	var receivedArgs []string
	command := &Command{
		Name: "mono",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("mono", pflag.ContinueOnError)
			flagSet.IntVar(&count, "count", 1, "readings")
			return flagSet
		},
		Run: func(args []string) error {
			receivedArgs = args
			return nil
		},
	}

	if err := command.Execute([]string{"--count", "3", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra" {
		t.Errorf("args = %v, want [extra]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownFlagIsUsageError(t *testing.T) {
	command := &Command{
		Name:  "now",
		Flags: func() *pflag.FlagSet { return pflag.NewFlagSet("now", pflag.ContinueOnError) },
		Run:   func(args []string) error { return nil },
	}
	err := command.Execute([]string{"--bogus"})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
}

func TestCommand_Execute_UnknownSubcommand(t *testing.T) {
	root := &Command{
		Name:        "ostime",
		Subcommands: []*Command{{Name: "now", Run: func([]string) error { return nil }}},
	}
	err := root.Execute([]string{"later"})
	if !errors.Is(err, ErrUsage) || !strings.Contains(err.Error(), `"later"`) {
		t.Fatalf("error = %v", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:       "ostime",
		Summary:    "Inspect OS clocks",
		HelpOutput: &help,
		Subcommands: []*Command{
			{Name: "now", Summary: "Print the wall clock", Run: func([]string) error { return nil }},
		},
	}
	if err := root.Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute(--help): %v", err)
	}
	output := help.String()
	for _, want := range []string{"Inspect OS clocks", "Usage:\n  ostime <command> [flags]", "now", "Print the wall clock"} {
		if !strings.Contains(output, want) {
			t.Errorf("help missing %q:\n%s", want, output)
		}
	}
}

func TestNewLogger_HandlerFollowsTerminal(t *testing.T) {
	var buffer bytes.Buffer
	NewLogger(&buffer, false, slog.LevelInfo).Info("reading", "source", "posix")
	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("non-terminal output is not JSON: %q", buffer.String())
	}
	if record["source"] != "posix" {
		t.Errorf("record = %v", record)
	}

	buffer.Reset()
	NewLogger(&buffer, true, slog.LevelInfo).Debug("hidden")
	if buffer.Len() != 0 {
		t.Errorf("debug record emitted at info level: %q", buffer.String())
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("offset too large")
	err := fmt.Errorf("drift: %w", &ExitError{Code: 3, Err: cause})
	if !errors.Is(err, cause) {
		t.Error("ExitError does not unwrap to its cause")
	}
	var exit *ExitError
	if !errors.As(err, &exit) || exit.ExitCode() != 3 {
		t.Fatalf("errors.As = %v", err)
	}
	if got := (&ExitError{Code: 4}).Error(); got != "exit code 4" {
		t.Errorf("Error() = %q", got)
	}
}
