// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Ostime inspects the host's clocks through lib/ostime.
//
// Subcommands print one reading per line (text), one JSON object per
// reading, or a CBOR sequence, selected by --format:
//
//	ostime now [--utc]         current wall-clock instant
//	ostime mono [--count N]    monotonic readings and their deltas
//	ostime sleep <duration>    interruptible sleep, reporting elapsed time
//	ostime timeout <duration>  millisecond and absolute-deadline forms
//	ostime probe               checked reads of every clock
//	ostime drift               local realtime offset against an NTP server
//	ostime version
//
// Configuration comes from --config, then OSTIME_CONFIG, then built-in
// defaults. OSTIME_DEBUG=1 forces debug logging.
package main
