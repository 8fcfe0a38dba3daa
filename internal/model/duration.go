package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Duration is an activity time span resolved to whole-millisecond precision.
// It is persisted as an integer millisecond count, so sub-millisecond detail
// does not survive a round trip through storage. That truncation is part of
// the storage contract and is kept as-is.
type Duration time.Duration

// DurationOf truncates a time.Duration to millisecond precision.
func DurationOf(d time.Duration) Duration {
	return Duration(d.Truncate(time.Millisecond))
}

// ParseDuration parses time.Duration notation ("12h50m20s") and truncates
// the result to millisecond precision.
func ParseDuration(s string) (Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return DurationOf(d), nil
}

// DurationOfMillis builds a Duration from a millisecond count.
func DurationOfMillis(ms int64) Duration {
	return Duration(time.Duration(ms) * time.Millisecond)
}

// Millis returns the span as whole milliseconds.
func (d Duration) Millis() int64 { return time.Duration(d).Milliseconds() }

// Std returns the span as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Components splits the span into hours, minutes, seconds and the remaining
// nanoseconds (always a whole number of milliseconds after storage).
func (d Duration) Components() (hours, minutes, seconds int, nanoseconds int64) {
	ms := d.Millis()
	hours = int(ms / (60 * 60 * 1000))
	ms -= int64(hours) * 60 * 60 * 1000
	minutes = int(ms / (60 * 1000))
	ms -= int64(minutes) * 60 * 1000
	seconds = int(ms / 1000)
	ms -= int64(seconds) * 1000
	nanoseconds = ms * int64(time.Millisecond)
	return hours, minutes, seconds, nanoseconds
}

func (d Duration) String() string {
	return time.Duration(d).Truncate(time.Millisecond).String()
}

// MarshalJSON renders the span in time.Duration notation, e.g. "12h50m20s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts either a duration string ("12h50m20s") or a plain
// millisecond count.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = DurationOf(parsed)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = DurationOfMillis(ms)
	return nil
}

// Value implements driver.Valuer, persisting the millisecond count.
func (d Duration) Value() (driver.Value, error) { return d.Millis(), nil }

// Scan implements sql.Scanner.
func (d *Duration) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*d = DurationOfMillis(v)
		return nil
	case []byte:
		ms, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Duration: %w", v, err)
		}
		*d = DurationOfMillis(ms)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Duration", src)
	}
}
