// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ostime bridges operating-system time facilities to a small,
// portable set of primitives: a monotonic nanosecond counter, wall-clock
// readers that produce broken-down UTC and local instants, an
// interruptible sleep, and conversions from a nanosecond [Duration] to
// the representations OS blocking and polling calls expect.
//
// # Platform sources
//
// Every OS interaction goes through a [Source]. The implementation is
// selected at build time:
//
//   - posix (linux, freebsd, netbsd, openbsd): clock_gettime(2) with
//     CLOCK_MONOTONIC and CLOCK_REALTIME, nanosleep(2) for sleeping.
//   - darwin: CLOCK_UPTIME_RAW (the mach absolute time base) for the
//     monotonic counter, CLOCK_REALTIME for wall time, and select(2)
//     timeouts for sleeping.
//   - stub (everything else): unchecked reads return zero values and
//     checked reads return [ErrUnsupported]. Sleep falls back to the Go
//     runtime timer.
//
// [Platform] returns the selected source. Tests substitute a [Fake].
//
// # Checked and unchecked reads
//
// [MonotonicNow] is a direct, unchecked wrap of the OS counter. It does
// not allocate, does not report errors, and calls nothing else in this
// package; profiling hot paths depend on that. Callers off the hot path
// that want to know whether the read actually succeeded use
// [MonotonicNowChecked] or [Source.RealtimeChecked].
//
// # Wall clock
//
// [Reader] pairs a Source with a *time.Location. The location is the
// local-time configuration input: it is read-only and consulted on each
// conversion, never cached by this package. The package-level [UTCNow],
// [LocalNow] and [ToLocal] use [Platform] and time.Local.
//
// An [Instant] whose reading failed (including every read on the stub
// source) is the zero Instant. Its Month is 0, which no real reading
// produces, so [Instant.IsUnsupported] can tell it apart from the Unix
// epoch.
//
// # Sleep
//
// [Sleep] blocks the calling goroutine's thread in the OS sleep call and
// reissues the call with the kernel-reported remainder whenever a signal
// interrupts it. Any other failure ends the sleep early; the unslept
// remainder is returned instead of being discarded.
//
// Leap seconds are not handled.
package ostime
