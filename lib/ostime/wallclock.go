// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ostime

import (
	"fmt"
	"time"
)

// BrokenDownTime is the nine-field calendar decomposition used by the C
// library's struct tm. Month is 0-based and Year counts from 1900.
type BrokenDownTime struct {
	Sec   int // 0-60
	Min   int // 0-59
	Hour  int // 0-23
	Mday  int // 1-31
	Mon   int // 0-11
	Year  int // years since 1900
	Wday  int // 0-6, Sunday = 0
	Yday  int // 0-365
	Isdst int // >0 daylight saving in effect, 0 not, <0 unknown
}

// Instant is a point in calendar time with microsecond resolution,
// expressed either in UTC or in local terms. Instants are produced by a
// [Reader] and never change afterwards.
//
// The zero Instant is the "unsupported" sentinel returned when the
// realtime clock could not be read. It is distinguishable from the Unix
// epoch because its Month is 0.
type Instant struct {
	year        int
	month       int
	day         int
	hour        int
	minute      int
	second      int
	microsecond int

	// unix is the epoch-seconds value the fields were derived from.
	unix int64

	// offset is seconds east of UTC in effect for the fields.
	offset int

	local bool
}

func (i Instant) Year() int        { return i.year }
func (i Instant) Month() int       { return i.month }
func (i Instant) Day() int         { return i.day }
func (i Instant) Hour() int        { return i.hour }
func (i Instant) Minute() int      { return i.minute }
func (i Instant) Second() int      { return i.second }
func (i Instant) Microsecond() int { return i.microsecond }

// Unix returns the epoch seconds the instant was decomposed from.
func (i Instant) Unix() int64 { return i.unix }

// Offset returns the UTC offset, in seconds, of the instant's fields.
func (i Instant) Offset() int { return i.offset }

// IsLocal reports whether the fields are in local rather than UTC terms.
func (i Instant) IsLocal() bool { return i.local }

// IsUnsupported reports whether i is the sentinel for a failed or
// unavailable clock read.
func (i Instant) IsUnsupported() bool { return i.month == 0 }

// Time converts i to a time.Time in a fixed zone matching its offset.
// The unsupported sentinel converts to the zero time.Time.
func (i Instant) Time() time.Time {
	if i.IsUnsupported() {
		return time.Time{}
	}
	t := time.Unix(i.unix, int64(i.microsecond)*int64(Microsecond))
	if !i.local {
		return t.UTC()
	}
	return t.In(time.FixedZone("", i.offset))
}

// String formats i as RFC 3339 with microseconds.
func (i Instant) String() string {
	if i.IsUnsupported() {
		return "unsupported"
	}
	zone := "Z"
	if i.local {
		sign := byte('+')
		offset := i.offset
		if offset < 0 {
			sign = '-'
			offset = -offset
		}
		zone = fmt.Sprintf("%c%02d:%02d", sign, offset/3600, offset%3600/60)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06d%s",
		i.year, i.month, i.day, i.hour, i.minute, i.second, i.microsecond, zone)
}

func newInstant(fields BrokenDownTime, unix int64, microsecond, offset int, local bool) Instant {
	return Instant{
		year:        fields.Year + 1900,
		month:       fields.Mon + 1,
		day:         fields.Mday,
		hour:        fields.Hour,
		minute:      fields.Min,
		second:      fields.Sec,
		microsecond: microsecond,
		unix:        unix,
		offset:      offset,
		local:       local,
	}
}

// DecomposeUTC splits epoch seconds into UTC calendar fields (gmtime).
func DecomposeUTC(unix int64) BrokenDownTime {
	return decompose(time.Unix(unix, 0).UTC())
}

// FromBrokenDownUTC converts UTC calendar fields back to epoch seconds
// without applying any zone offset (timegm). Wday, Yday and Isdst are
// ignored; out-of-range fields are normalized. It exactly inverts
// DecomposeUTC.
func FromBrokenDownUTC(fields BrokenDownTime) int64 {
	return time.Date(fields.Year+1900, time.Month(fields.Mon+1), fields.Mday,
		fields.Hour, fields.Min, fields.Sec, 0, time.UTC).Unix()
}

func decompose(t time.Time) BrokenDownTime {
	isdst := 0
	if t.IsDST() {
		isdst = 1
	}
	return BrokenDownTime{
		Sec:   t.Second(),
		Min:   t.Minute(),
		Hour:  t.Hour(),
		Mday:  t.Day(),
		Mon:   int(t.Month()) - 1,
		Year:  t.Year() - 1900,
		Wday:  int(t.Weekday()),
		Yday:  t.YearDay() - 1,
		Isdst: isdst,
	}
}

// Reader produces Instants from a Source's realtime clock. Local
// conversions use the configured location, which plays the role of the
// process timezone setting. Reader holds no mutable state.
type Reader struct {
	source   Source
	location *time.Location
}

// NewReader returns a Reader over source in location. A nil source
// selects [Platform]; a nil location selects time.Local.
func NewReader(source Source, location *time.Location) *Reader {
	if source == nil {
		source = Platform()
	}
	if location == nil {
		location = time.Local
	}
	return &Reader{source: source, location: location}
}

// Location returns the zone used for local conversions.
func (r *Reader) Location() *time.Location { return r.location }

// UTCNow reads the realtime clock and returns it as a UTC Instant. The
// nanosecond remainder is truncated to microseconds. A failed read
// returns the unsupported sentinel.
func (r *Reader) UTCNow() Instant {
	instant, _ := r.UTCNowChecked()
	return instant
}

// UTCNowChecked is UTCNow with the read error surfaced.
func (r *Reader) UTCNowChecked() (Instant, error) {
	now, err := r.readRealtime()
	if err != nil {
		return Instant{}, err
	}
	return newInstant(DecomposeUTC(now.Sec), now.Sec, int(now.Nsec/int64(Microsecond)), 0, false), nil
}

// LocalNow reads the realtime clock and returns it decomposed in the
// reader's location. A failed read returns the unsupported sentinel.
func (r *Reader) LocalNow() Instant {
	instant, _ := r.LocalNowChecked()
	return instant
}

// LocalNowChecked is LocalNow with the read error surfaced.
func (r *Reader) LocalNowChecked() (Instant, error) {
	now, err := r.readRealtime()
	if err != nil {
		return Instant{}, err
	}
	return r.localInstant(now.Sec, int(now.Nsec/int64(Microsecond))), nil
}

// ToLocal re-derives the local representation of instant from its
// epoch seconds, keeping its microsecond fraction. The unsupported
// sentinel is returned unchanged.
func (r *Reader) ToLocal(instant Instant) Instant {
	if instant.IsUnsupported() {
		return instant
	}
	return r.localInstant(instant.unix, instant.microsecond)
}

// DecomposeLocal splits epoch seconds into calendar fields in the
// reader's location (localtime).
func (r *Reader) DecomposeLocal(unix int64) BrokenDownTime {
	return decompose(time.Unix(unix, 0).In(r.location))
}

func (r *Reader) localInstant(unix int64, microsecond int) Instant {
	t := time.Unix(unix, 0).In(r.location)
	_, offset := t.Zone()
	return newInstant(decompose(t), unix, microsecond, offset, true)
}

func (r *Reader) readRealtime() (Timespec, error) {
	now, err := r.source.RealtimeChecked()
	if err != nil {
		return Timespec{}, fmt.Errorf("reading realtime clock from %s source: %w", r.source.Name(), err)
	}
	now.Normalize()
	return now, nil
}

// UTCNow reads the platform realtime clock as a UTC Instant.
func UTCNow() Instant { return NewReader(nil, nil).UTCNow() }

// LocalNow reads the platform realtime clock as a local Instant in
// time.Local.
func LocalNow() Instant { return NewReader(nil, nil).LocalNow() }

// ToLocal converts instant to time.Local.
func ToLocal(instant Instant) Instant { return NewReader(nil, nil).ToLocal(instant) }
