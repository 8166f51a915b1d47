// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ostime

import (
	"errors"
	"sync"
	"testing"
)

func TestMonotonicNowNeverDecreases(t *testing.T) {
	previous := MonotonicNow()
	for i := 0; i < 100_000; i++ {
		current := MonotonicNow()
		if current < previous {
			t.Fatalf("call %d: %d < previous %d", i, current, previous)
		}
		previous = current
	}
}

func TestMonotonicNowConcurrent(t *testing.T) {
	var waitGroup sync.WaitGroup
	failures := make(chan string, 8)
	for worker := 0; worker < 8; worker++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			previous := MonotonicNow()
			for i := 0; i < 10_000; i++ {
				current := MonotonicNow()
				if current < previous {
					failures <- "monotonic clock went backward"
					return
				}
				previous = current
			}
		}()
	}
	waitGroup.Wait()
	close(failures)
	for failure := range failures {
		t.Error(failure)
	}
}

func TestMonotonicNowChecked(t *testing.T) {
	value, err := MonotonicNowChecked()
	if Platform().Name() == "stub" {
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("stub MonotonicNowChecked error = %v, want ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("MonotonicNowChecked: %v", err)
	}
	if later := MonotonicNow(); later < value {
		t.Errorf("unchecked read %d is behind checked read %d", later, value)
	}
}

func TestFakeMonotonicIgnoresBackwardSteps(t *testing.T) {
	source := NewFake(Timespec{Sec: 100})
	source.Advance(5 * Second)
	source.Advance(-3 * Second)
	if got := source.Monotonic(); got != uint64(5*Second) {
		t.Errorf("Monotonic() = %d, want %d", got, uint64(5*Second))
	}
	if got, want := source.Realtime(), (Timespec{Sec: 102}); got != want {
		t.Errorf("Realtime() = %v, want %v", got, want)
	}
}

func BenchmarkMonotonicNow(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		MonotonicNow()
	}
}
