package types

import (
	"math"
	"time"
)

// TimedSample is one forecast observation. Absent values are NaN and an
// unparseable timestamp is the zero time.
type TimedSample struct {
	Time        time.Time
	Temperature float64
	WindSpeed   float64
	Code        int
}

// Plottable reports whether the sample can be placed on a chart
func (s TimedSample) Plottable() bool {
	return !s.Time.IsZero() && IsFinite(s.Temperature)
}

// DailySample is a TimedSample carrying the day's temperature range
type DailySample struct {
	TimedSample
	TempMax float64
	TempMin float64
}

// Timestamp layouts accepted from upstream, tried in order
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp converts an upstream time value into an instant. Numbers are
// unix seconds, or unix milliseconds when >= 1e12. Strings without an offset are
// read in loc. Returns the zero time when the value cannot be interpreted.
func ParseTimestamp(raw any, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	switch v := raw.(type) {
	case int64:
		return fromUnixNumber(float64(v))
	case int:
		return fromUnixNumber(float64(v))
	case float64:
		return fromUnixNumber(v)
	case string:
		for _, layout := range timestampLayouts {
			if t, err := time.ParseInLocation(layout, v, loc); err == nil {
				return t
			}
		}
	}

	return time.Time{}
}

func fromUnixNumber(v float64) time.Time {
	if !IsFinite(v) {
		return time.Time{}
	}
	if v >= 1e12 {
		return time.UnixMilli(int64(v))
	}
	return time.Unix(int64(v), 0)
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round rounds half-up, so -2.5 becomes -2
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// RoundOrZero rounds finite values and maps absent values to zero
func RoundOrZero(v float64) int {
	if !IsFinite(v) {
		return 0
	}
	return Round(v)
}

// ValueOrNaN dereferences an optional upstream value
func ValueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
