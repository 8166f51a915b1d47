// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || freebsd || netbsd || openbsd

package ostime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var platform Source = posixSource{}

type posixSource struct{}

func (posixSource) Name() string { return "posix" }

func (posixSource) Monotonic() uint64 { return monotonicNow() }

func (posixSource) MonotonicChecked() (uint64, error) { return monotonicNowChecked() }

func (posixSource) Realtime() Timespec {
	var native unix.Timespec
	_ = unix.ClockGettime(unix.CLOCK_REALTIME, &native)
	return fromNative(&native)
}

func (posixSource) RealtimeChecked() (Timespec, error) {
	var native unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &native); err != nil {
		return Timespec{}, fmt.Errorf("clock_gettime(CLOCK_REALTIME): %w", err)
	}
	return fromNative(&native), nil
}

func (posixSource) Nanosleep(request Timespec) (Timespec, error) {
	native := unix.NsecToTimespec(request.Nano())
	var remaining unix.Timespec
	err := unix.Nanosleep(&native, &remaining)
	if err == nil {
		return Timespec{}, nil
	}
	if err == unix.EINTR {
		return fromNative(&remaining), ErrInterrupted
	}
	// The kernel only fills remaining on EINTR.
	return request, fmt.Errorf("nanosleep: %w", err)
}

func monotonicNow() uint64 {
	var native unix.Timespec
	_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &native)
	return uint64(native.Nano())
}

func monotonicNowChecked() (uint64, error) {
	var native unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &native); err != nil {
		return 0, fmt.Errorf("clock_gettime(CLOCK_MONOTONIC): %w", err)
	}
	return uint64(native.Nano()), nil
}

// fromNative widens the platform Timespec, whose field types vary by
// architecture.
func fromNative(native *unix.Timespec) Timespec {
	seconds, nanoseconds := native.Unix()
	return Timespec{Sec: seconds, Nsec: nanoseconds}
}
