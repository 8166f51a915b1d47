// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(linux || freebsd || netbsd || openbsd || darwin)

package ostime

import "time"

var platform Source = stubSource{}

// stubSource compiles everywhere and reports nothing. Unchecked reads
// return zero; checked reads return ErrUnsupported.
type stubSource struct{}

func (stubSource) Name() string { return "stub" }

func (stubSource) Monotonic() uint64 { return 0 }

func (stubSource) MonotonicChecked() (uint64, error) { return 0, ErrUnsupported }

func (stubSource) Realtime() Timespec { return Timespec{} }

func (stubSource) RealtimeChecked() (Timespec, error) { return Timespec{}, ErrUnsupported }

// Nanosleep uses the Go runtime timer, which is never interrupted by
// signals.
func (stubSource) Nanosleep(request Timespec) (Timespec, error) {
	time.Sleep(time.Duration(request.Nano()))
	return Timespec{}, nil
}

func monotonicNow() uint64 { return 0 }

func monotonicNowChecked() (uint64, error) { return 0, ErrUnsupported }
