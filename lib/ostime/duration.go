// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ostime

import (
	"fmt"
	"math"
	"time"
)

// Duration is a signed count of nanoseconds. Negative values mean "in
// the past" or "do not block".
type Duration int64

const (
	Nanosecond  Duration = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
)

// maxTimeoutMillis is the largest timeout poll(2) and friends accept as
// a 32-bit millisecond count.
const maxTimeoutMillis = math.MaxInt32

// FromStd converts a time.Duration. Both are nanosecond counts.
func FromStd(d time.Duration) Duration { return Duration(d) }

// Std converts d to a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// ParseDuration parses a Go duration string such as "1.5s" or "-100ns".
func ParseDuration(s string) (Duration, error) {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", s, err)
	}
	return Duration(parsed), nil
}

// Split returns d as whole seconds and a nanosecond remainder. Both
// parts truncate toward zero and carry the sign of d.
func (d Duration) Split() (seconds, nanoseconds int64) {
	return int64(d / Second), int64(d % Second)
}

// Timespec returns d as a relative (seconds, nanoseconds) pair, the
// form nanosleep(2) takes. The pair is not normalized: a negative d
// yields negative fields.
func (d Duration) Timespec() Timespec {
	seconds, nanoseconds := d.Split()
	return Timespec{Sec: seconds, Nsec: nanoseconds}
}

// Milliseconds converts d to the millisecond timeout convention of
// poll(2), epoll_wait(2) and similar calls:
//
//   - d <= 0 returns 0 (do not block). A deliberately non-blocking
//     request and an accidental negative duration are not told apart.
//   - d larger than math.MaxInt32 milliseconds returns -1 (wait
//     indefinitely).
//   - otherwise d truncated to whole milliseconds.
func (d Duration) Milliseconds() int32 {
	switch {
	case d <= 0:
		return 0
	case d > maxTimeoutMillis*Millisecond:
		return -1
	}
	return int32(d / Millisecond)
}

// AbsoluteTimespec returns the realtime deadline d from now, normalized,
// for calls that take an absolute time (pthread_cond_timedwait,
// sem_timedwait, mq_timedreceive).
func (d Duration) AbsoluteTimespec() Timespec {
	return d.AbsoluteTimespecFrom(Platform())
}

// AbsoluteTimespecFrom is AbsoluteTimespec against an explicit source.
func (d Duration) AbsoluteTimespecFrom(source Source) Timespec {
	return source.Realtime().Add(d)
}
