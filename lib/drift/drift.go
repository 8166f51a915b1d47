// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package drift measures how far a realtime clock has wandered from an
// NTP server. It reads the local side through an [ostime.Source], so
// the same probe works against the platform clock and against a fake.
package drift

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/beevik/ntp"

	"github.com/bureau-foundation/ostime/lib/ostime"
)

// Querier performs one NTP exchange. ntp.QueryWithOptions satisfies it.
type Querier func(host string, options ntp.QueryOptions) (*ntp.Response, error)

// Report is the outcome of one probe.
type Report struct {
	Server string `json:"server"`

	// Local is the source's realtime reading taken when the reply
	// arrived.
	Local ostime.Timespec `json:"local"`

	// ServerTime is the server's estimate of the current time at
	// arrival: its transmit timestamp plus half the round trip.
	ServerTime time.Time `json:"server_time"`

	// Offset is ServerTime minus Local. Positive means the local clock
	// is behind.
	Offset time.Duration `json:"offset_ns"`

	// SystemOffset is the offset computed by the NTP client against
	// the Go runtime's wall clock, for comparison.
	SystemOffset time.Duration `json:"system_offset_ns"`

	RTT     time.Duration `json:"rtt_ns"`
	Stratum uint8         `json:"stratum"`

	// Healthy is false when |Offset| exceeds the probe's limit.
	Healthy bool `json:"healthy"`
}

// Prober runs drift probes.
type Prober struct {
	source    ostime.Source
	query     Querier
	timeout   time.Duration
	maxOffset time.Duration
	logger    *slog.Logger
}

// NewProber returns a Prober reading the local clock from source and
// querying with ntp.QueryWithOptions.
func NewProber(source ostime.Source, timeout, maxOffset time.Duration, logger *slog.Logger) *Prober {
	return &Prober{
		source:    source,
		query:     ntp.QueryWithOptions,
		timeout:   timeout,
		maxOffset: maxOffset,
		logger:    logger,
	}
}

// SetQuerier replaces the NTP client, for tests.
func (p *Prober) SetQuerier(query Querier) { p.query = query }

// Probe queries server once and compares its time to the local source.
// The response is validated (stratum, leap indicator, dispersion)
// before any offset is reported.
func (p *Prober) Probe(server string) (Report, error) {
	p.logger.Debug("querying NTP server", "server", server, "timeout", p.timeout)

	response, err := p.query(server, ntp.QueryOptions{Timeout: p.timeout})
	if err != nil {
		return Report{}, fmt.Errorf("querying %s: %w", server, err)
	}
	local, err := p.source.RealtimeChecked()
	if err != nil {
		return Report{}, fmt.Errorf("reading local realtime clock: %w", err)
	}
	if err := response.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid response from %s: %w", server, err)
	}

	serverTime := response.Time.Add(response.RTT / 2)
	localTime := time.Unix(local.Sec, local.Nsec)
	offset := serverTime.Sub(localTime)

	report := Report{
		Server:       server,
		Local:        local,
		ServerTime:   serverTime,
		Offset:       offset,
		SystemOffset: response.ClockOffset,
		RTT:          response.RTT,
		Stratum:      response.Stratum,
		Healthy:      offset.Abs() <= p.maxOffset,
	}
	p.logger.Debug("NTP probe complete",
		"server", server,
		"offset", offset,
		"rtt", response.RTT,
		"stratum", response.Stratum,
	)
	return report, nil
}
