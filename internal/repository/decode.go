package repository

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// bigint columns: two's complement reinterpretation, negatives wrap.
func wrapInt64(v int64) uint64 {
	return uint64(v)
}

// int columns: sign-extend to 64 bits, then reinterpret.
func wrapInt32(v int32) uint64 {
	return uint64(int64(v))
}

// double columns: round half away from zero, then saturate into the
// unsigned range. NaN and negatives decode to 0.
func roundToUint64(v float64) uint64 {
	r := math.Round(v)
	switch {
	case math.IsNaN(r), r <= 0:
		return 0
	case r >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(r)
}

const (
	rfc3339Seconds = "2006-01-02T15:04:05-07:00"
	rfc3339Millis  = "2006-01-02T15:04:05.000-07:00"
	rfc3339Micros  = "2006-01-02T15:04:05.000000-07:00"
	rfc3339Nanos   = "2006-01-02T15:04:05.000000000-07:00"
)

// formatRFC3339 renders t in UTC with a numeric offset ("+00:00", never "Z").
// Sub-second precision is printed only when present, in groups of three
// digits.
func formatRFC3339(t time.Time) string {
	t = t.UTC()
	ns := t.Nanosecond()
	switch {
	case ns == 0:
		return t.Format(rfc3339Seconds)
	case ns%int(time.Millisecond) == 0:
		return t.Format(rfc3339Millis)
	case ns%int(time.Microsecond) == 0:
		return t.Format(rfc3339Micros)
	}
	return t.Format(rfc3339Nanos)
}

// Textual DATETIME values are read as UTC when they carry no offset.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised datetime %q", s)
}

// rfc3339Time scans a DATETIME column straight into the RFC 3339 text
// returned to callers.
type rfc3339Time string

func (t *rfc3339Time) Scan(src interface{}) error {
	var tm time.Time
	switch src := src.(type) {
	case time.Time:
		tm = src
	case []byte:
		parsed, err := parseDateTime(string(src))
		if err != nil {
			return err
		}
		tm = parsed
	case string:
		parsed, err := parseDateTime(src)
		if err != nil {
			return err
		}
		tm = parsed
	case nil:
		return errors.New("datetime is NULL")
	default:
		return fmt.Errorf("expected time.Time, []byte or string, got %T", src)
	}

	*t = rfc3339Time(formatRFC3339(tm))
	return nil
}

func (t rfc3339Time) String() string {
	return string(t)
}
