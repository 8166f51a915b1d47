// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ostime

import "sync"

// Fake is a deterministic Source for tests. Its clocks move only when
// Advance is called or when Nanosleep "sleeps". Nanosleep can be
// scripted to report signal interruptions or hard failures, and every
// request is recorded.
//
// Fake is safe for concurrent use by multiple goroutines.
type Fake struct {
	mu          sync.Mutex
	monotonic   uint64
	realtime    Timespec
	unsupported bool

	// interruptions counts pending scripted EINTRs; each lets
	// interruptAfter of the request elapse first.
	interruptions  int
	interruptAfter Duration

	// failure, when set, fails the next Nanosleep after failAfter.
	failure   error
	failAfter Duration

	requests []Timespec
}

// NewFake returns a Fake whose realtime clock reads realtime and whose
// monotonic clock starts at zero.
func NewFake(realtime Timespec) *Fake {
	realtime.Normalize()
	return &Fake{realtime: realtime}
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Monotonic() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.monotonic
}

func (f *Fake) MonotonicChecked() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unsupported {
		return 0, ErrUnsupported
	}
	return f.monotonic, nil
}

func (f *Fake) Realtime() Timespec {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unsupported {
		return Timespec{}
	}
	return f.realtime
}

func (f *Fake) RealtimeChecked() (Timespec, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unsupported {
		return Timespec{}, ErrUnsupported
	}
	return f.realtime, nil
}

// Nanosleep advances both clocks instead of blocking.
func (f *Fake) Nanosleep(request Timespec) (Timespec, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, request)
	requested := Duration(request.Nano())

	if f.failure != nil {
		err := f.failure
		slept := min(f.failAfter, requested)
		f.failure = nil
		f.advanceLocked(slept)
		return (requested - slept).Timespec(), err
	}

	if f.interruptions > 0 {
		f.interruptions--
		slept := min(f.interruptAfter, requested)
		f.advanceLocked(slept)
		return (requested - slept).Timespec(), ErrInterrupted
	}

	f.advanceLocked(requested)
	return Timespec{}, nil
}

// Advance moves both clocks forward by d. Negative d moves only the
// realtime clock backward, the way a wall-clock adjustment would; the
// monotonic clock never decreases.
func (f *Fake) Advance(d Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.advanceLocked(d)
}

func (f *Fake) advanceLocked(d Duration) {
	f.realtime = f.realtime.Add(d)
	if d > 0 {
		f.monotonic += uint64(d)
	}
}

// SetRealtime steps the realtime clock to realtime.
func (f *Fake) SetRealtime(realtime Timespec) {
	realtime.Normalize()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.realtime = realtime
}

// SetUnsupported makes checked reads fail with ErrUnsupported and
// unchecked reads return zero, like the stub source.
func (f *Fake) SetUnsupported(unsupported bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsupported = unsupported
}

// Interrupt scripts the next n Nanosleep calls to return ErrInterrupted
// after after of each request has elapsed.
func (f *Fake) Interrupt(n int, after Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interruptions = n
	f.interruptAfter = after
}

// Fail scripts the next Nanosleep call to return err after after of the
// request has elapsed. Failure takes precedence over pending
// interruptions.
func (f *Fake) Fail(err error, after Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failure = err
	f.failAfter = after
}

// Requests returns a copy of every Nanosleep request so far.
func (f *Fake) Requests() []Timespec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Timespec(nil), f.requests...)
}
