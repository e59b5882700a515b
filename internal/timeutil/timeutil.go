// Package timeutil provides time formatting utilities.
package timeutil

import (
	"time"

	"github.com/sgaunet/millisecond/pkg/duration"
)

// FormatDuration formats a duration into a compact human-readable string,
// merging seconds and milliseconds.
//
// Examples:
//   - 0s for a zero duration
//   - 1m 23.500s for 83.5 seconds
//   - 8h for an 8-hour duration
//   - -1.200s for negative durations
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d < 0 {
		// -d overflows for math.MinInt64; the unsigned conversion still yields its magnitude.
		return "-" + duration.FromNanos(uint64(-d)).ShortString()
	}
	return duration.FromNanos(uint64(d)).ShortString()
}

// Since is FormatDuration(time.Since(start)).
func Since(start time.Time) string {
	return FormatDuration(time.Since(start))
}
