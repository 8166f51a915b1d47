// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ostime

import "errors"

// ErrUnsupported is returned by checked reads on platforms without a
// native clock implementation.
var ErrUnsupported = errors.New("ostime: clock not supported on this platform")

// ErrInterrupted is returned by [Source.Nanosleep] when a signal cut the
// wait short. The accompanying Timespec holds the unslept remainder.
var ErrInterrupted = errors.New("ostime: sleep interrupted by signal")

// Source is the per-platform clock capability. Implementations hold no
// mutable state of their own and are safe for concurrent use.
type Source interface {
	// Name identifies the implementation ("posix", "darwin", "stub",
	// "fake").
	Name() string

	// Monotonic returns nanoseconds since an arbitrary, process-stable
	// reference point. Failures are not reported.
	Monotonic() uint64

	// MonotonicChecked is Monotonic with the OS error surfaced.
	MonotonicChecked() (uint64, error)

	// Realtime returns the wall clock as seconds and nanoseconds since
	// the Unix epoch. Failures are not reported.
	Realtime() Timespec

	// RealtimeChecked is Realtime with the OS error surfaced.
	RealtimeChecked() (Timespec, error)

	// Nanosleep issues one blocking sleep for the relative request.
	// On signal interruption it returns the unslept remainder and
	// ErrInterrupted. On any other failure it returns the remainder it
	// can vouch for (at worst the whole request) and the error.
	Nanosleep(request Timespec) (Timespec, error)
}

// Platform returns the Source selected for the build target.
func Platform() Source { return platform }

// MonotonicNow returns the OS monotonic counter in nanoseconds. The
// reference point is arbitrary but fixed for the life of the process,
// and a later call never returns less than an earlier one.
//
// MonotonicNow wraps the OS call directly: it does not allocate, does
// not consult any other part of this package, and does not report
// failure. It is safe to call from profiling hot paths.
func MonotonicNow() uint64 { return monotonicNow() }

// MonotonicNowChecked is MonotonicNow with the OS error surfaced.
func MonotonicNowChecked() (uint64, error) { return monotonicNowChecked() }
