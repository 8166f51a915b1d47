// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ostime

import "fmt"

const nanosPerSecond = int64(Second)

// Timespec mirrors the OS (seconds, nanoseconds) pair used both for
// relative waits and absolute clock readings. A Timespec is normalized
// when Nsec is in [0, 1e9); OS calls reject anything else.
type Timespec struct {
	Sec  int64 `json:"sec"`
	Nsec int64 `json:"nsec"`
}

// ZeroTimespec returns (0, 0): the Unix epoch as an absolute time, or
// "no wait" as a relative one.
func ZeroTimespec() Timespec { return Timespec{} }

// NsecToTimespec splits a nanosecond count into a normalized Timespec.
func NsecToTimespec(nsec int64) Timespec {
	t := Timespec{Sec: nsec / nanosPerSecond, Nsec: nsec % nanosPerSecond}
	t.Normalize()
	return t
}

// Normalize carries Nsec overflow into Sec (and borrows for negative
// Nsec) so that Nsec ends up in [0, 1e9).
func (t *Timespec) Normalize() {
	t.Sec += t.Nsec / nanosPerSecond
	t.Nsec %= nanosPerSecond
	if t.Nsec < 0 {
		t.Nsec += nanosPerSecond
		t.Sec--
	}
}

// Valid reports whether t is normalized.
func (t Timespec) Valid() bool {
	return t.Nsec >= 0 && t.Nsec < nanosPerSecond
}

// Nano returns t as a nanosecond count. Values past roughly 292 years
// overflow.
func (t Timespec) Nano() int64 {
	return t.Sec*nanosPerSecond + t.Nsec
}

// Add returns t offset by d, normalized.
func (t Timespec) Add(d Duration) Timespec {
	seconds, nanoseconds := d.Split()
	result := Timespec{Sec: t.Sec + seconds, Nsec: t.Nsec + nanoseconds}
	result.Normalize()
	return result
}

func (t Timespec) String() string {
	return fmt.Sprintf("%d.%09ds", t.Sec, t.Nsec)
}
