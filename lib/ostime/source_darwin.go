// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package ostime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var platform Source = darwinSource{}

type darwinSource struct{}

func (darwinSource) Name() string { return "darwin" }

func (darwinSource) Monotonic() uint64 { return monotonicNow() }

func (darwinSource) MonotonicChecked() (uint64, error) { return monotonicNowChecked() }

func (darwinSource) Realtime() Timespec {
	var native unix.Timespec
	_ = unix.ClockGettime(unix.CLOCK_REALTIME, &native)
	return fromNative(&native)
}

func (darwinSource) RealtimeChecked() (Timespec, error) {
	var native unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &native); err != nil {
		return Timespec{}, fmt.Errorf("clock_gettime(CLOCK_REALTIME): %w", err)
	}
	return fromNative(&native), nil
}

// Nanosleep waits in select(2) with no descriptors. select does not
// report the unslept time, so on EINTR the remainder is recomputed from
// the monotonic counter.
func (darwinSource) Nanosleep(request Timespec) (Timespec, error) {
	start := monotonicNow()
	timeout := unix.NsecToTimeval(request.Nano())
	_, err := unix.Select(0, nil, nil, nil, &timeout)
	if err == nil {
		return Timespec{}, nil
	}
	if err == unix.EINTR {
		remaining := Duration(request.Nano()) - Duration(monotonicNow()-start)
		if remaining < 0 {
			remaining = 0
		}
		return remaining.Timespec(), ErrInterrupted
	}
	return request, fmt.Errorf("select: %w", err)
}

// CLOCK_UPTIME_RAW is mach_absolute_time scaled to nanoseconds: it
// does not advance while the machine sleeps and ignores NTP slewing.
func monotonicNow() uint64 {
	var native unix.Timespec
	_ = unix.ClockGettime(unix.CLOCK_UPTIME_RAW, &native)
	return uint64(native.Nano())
}

func monotonicNowChecked() (uint64, error) {
	var native unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_UPTIME_RAW, &native); err != nil {
		return 0, fmt.Errorf("clock_gettime(CLOCK_UPTIME_RAW): %w", err)
	}
	return uint64(native.Nano()), nil
}

func fromNative(native *unix.Timespec) Timespec {
	seconds, nanoseconds := native.Unix()
	return Timespec{Sec: seconds, Nsec: nanoseconds}
}
