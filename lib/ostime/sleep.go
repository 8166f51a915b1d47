// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ostime

import "errors"

// Sleep blocks the calling thread for at least d using the platform
// source and returns the portion of d that was not slept: zero when the
// full duration elapsed. See [SleepOn].
func Sleep(d Duration) Duration {
	return SleepOn(Platform(), d)
}

// SleepOn splits d into seconds and nanoseconds and issues one sleep on
// source. When a signal interrupts the call, the remainder reported by
// the source becomes the next request, until a call completes. Any
// other failure stops the loop; the remainder of the failed request is
// returned so the caller can decide whether the shortfall matters.
//
// d <= 0 returns immediately without calling the source.
func SleepOn(source Source, d Duration) Duration {
	if d <= 0 {
		return 0
	}
	request := d.Timespec()
	for {
		remaining, err := source.Nanosleep(request)
		if err == nil {
			return 0
		}
		if !errors.Is(err, ErrInterrupted) {
			return Duration(remaining.Nano())
		}
		request = remaining
	}
}
