// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type sampleReading struct {
	Source    string    `json:"source"`
	Monotonic uint64    `json:"monotonic_ns"`
	Wall      time.Time `json:"wall"`
}

func TestMarshalTimeAsEpochTag(t *testing.T) {
	wall := time.Date(2026, 3, 14, 1, 59, 26, 535897000, time.UTC)
	data, err := Marshal(sampleReading{Source: "fake", Monotonic: 42, Wall: wall})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, "1(1773453566") {
		t.Errorf("expected tag 1 epoch time in %s", diagnostic)
	}

	var decoded sampleReading
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Source != "fake" || decoded.Monotonic != 42 {
		t.Errorf("decoded = %+v", decoded)
	}
	if drift := decoded.Wall.Sub(wall); drift < -time.Microsecond || drift > time.Microsecond {
		t.Errorf("wall time drifted by %v through CBOR", drift)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	reading := map[string]any{"source": "posix", "monotonic_ns": uint64(7), "a": 1}

	first, err := Marshal(reading)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Marshal(reading)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("encoding %d differs: %x vs %x", i, again, first)
		}
	}
}

func TestEncoderWritesSequence(t *testing.T) {
	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for i := uint64(0); i < 3; i++ {
		if err := encoder.Encode(sampleReading{Monotonic: i}); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	data := buffer.Bytes()
	for i := uint64(0); i < 3; i++ {
		var decoded sampleReading
		rest, err := decMode.UnmarshalFirst(data, &decoded)
		if err != nil {
			t.Fatalf("item %d: %v", i, err)
		}
		if decoded.Monotonic != i {
			t.Errorf("item %d monotonic = %d", i, decoded.Monotonic)
		}
		data = rest
	}
	if len(data) != 0 {
		t.Errorf("%d trailing bytes", len(data))
	}
}

func TestUnmarshalIntoAnyUsesStringKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"offset_ns": int64(-5)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := decoded.(map[string]any); !ok {
		t.Errorf("decoded %T, want map[string]any", decoded)
	}
}
