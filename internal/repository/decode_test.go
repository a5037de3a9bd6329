package repository

import (
	"math"
	"testing"
	"time"
)

func TestWrapInt64(t *testing.T) {
	cases := []struct {
		input    int64
		expected uint64
	}{
		{0, 0},
		{10, 10},
		{-1, math.MaxUint64},
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64, 1 << 63},
	}

	for _, c := range cases {
		if got := wrapInt64(c.input); got != c.expected {
			t.Errorf("wrapInt64(%d): expected %d got %d", c.input, c.expected, got)
		}
	}
}

func TestWrapInt32(t *testing.T) {
	cases := []struct {
		input    int32
		expected uint64
	}{
		{0, 0},
		{72000, 72000},
		{math.MaxInt32, math.MaxInt32},
		// sign extension, not a 32-bit wrap
		{-1, math.MaxUint64},
		{math.MinInt32, math.MaxUint64 - math.MaxInt32},
	}

	for _, c := range cases {
		if got := wrapInt32(c.input); got != c.expected {
			t.Errorf("wrapInt32(%d): expected %d got %d", c.input, c.expected, got)
		}
	}
}

func TestRoundToUint64(t *testing.T) {
	cases := []struct {
		input    float64
		expected uint64
	}{
		{12.4, 12},
		{12.6, 13},
		// half away from zero
		{12.5, 13},
		{13.5, 14},
		{0.5, 1},
		{-0.4, 0},
		// negatives saturate at zero
		{-0.6, 0},
		{-1, 0},
		{-12.5, 0},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxUint64},
		{1 << 63, 1 << 63},
		{1 << 64, math.MaxUint64},
		{math.Inf(-1), 0},
	}

	for _, c := range cases {
		if got := roundToUint64(c.input); got != c.expected {
			t.Errorf("roundToUint64(%v): expected %d got %d", c.input, c.expected, got)
		}
	}
}

func TestFormatRFC3339(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	cases := []struct {
		input    time.Time
		expected string
	}{
		{time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC), "2023-05-01T10:00:00+00:00"},
		{time.Date(2023, 5, 1, 19, 0, 0, 0, jst), "2023-05-01T10:00:00+00:00"},
		{time.Date(2023, 5, 1, 10, 0, 0, 123000000, time.UTC), "2023-05-01T10:00:00.123+00:00"},
		{time.Date(2023, 5, 1, 10, 0, 0, 123456000, time.UTC), "2023-05-01T10:00:00.123456+00:00"},
		{time.Date(2023, 5, 1, 10, 0, 0, 123456789, time.UTC), "2023-05-01T10:00:00.123456789+00:00"},
	}

	for k, c := range cases {
		if got := formatRFC3339(c.input); got != c.expected {
			t.Errorf("case #%d: expected %s got %s", k, c.expected, got)
		}
	}
}

func TestRFC3339TimeScan(t *testing.T) {
	cases := []struct {
		name     string
		src      interface{}
		expected string
	}{
		{"time", time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC), "2023-05-01T10:00:00+00:00"},
		{"datetime bytes", []byte("2023-05-01 10:00:00"), "2023-05-01T10:00:00+00:00"},
		{"datetime string", "2023-05-01 10:00:00", "2023-05-01T10:00:00+00:00"},
		{"fractional datetime", "2023-05-01 10:00:00.5", "2023-05-01T10:00:00.500+00:00"},
		{"rfc3339 with offset", "2023-05-01T19:00:00+09:00", "2023-05-01T10:00:00+00:00"},
		{"rfc3339 zulu", "2023-05-01T10:00:00Z", "2023-05-01T10:00:00+00:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got rfc3339Time
			if err := got.Scan(c.src); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if got.String() != c.expected {
				t.Errorf("expected %s got %s", c.expected, got)
			}
		})
	}
}

func TestRFC3339TimeScanRejects(t *testing.T) {
	for _, src := range []interface{}{nil, int64(1682935200), "yesterday", []byte("")} {
		var got rfc3339Time
		if err := got.Scan(src); err == nil {
			t.Errorf("scan %#v: expected error, got %q", src, got)
		}
	}
}
