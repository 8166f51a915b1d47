// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR configuration used for machine-readable
// clock readings.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same reading always produces identical bytes. time.Time values are
// written as tag 1 epoch times with microsecond precision, matching the
// resolution of wall-clock instants.
//
//	data, err := codec.Marshal(reading)
//	encoder := codec.NewEncoder(os.Stdout)
//
// This package depends on no other ostime packages.
package codec
