package timecodec

import (
	"math"
	"time"
)

// The store persists timestamps as seconds since the Cocoa reference date
// (2001-01-01T00:00:00Z), not the Unix epoch.
const cocoaEpochOffsetSeconds = 978307200

// FromCocoaSeconds converts a store timestamp to a time.Time in the local zone.
func FromCocoaSeconds(sec float64) time.Time {
	ms := (sec + cocoaEpochOffsetSeconds) * 1000
	return time.UnixMilli(int64(math.Round(ms)))
}

// ToCocoaSeconds is the inverse of FromCocoaSeconds.
func ToCocoaSeconds(t time.Time) float64 {
	return float64(t.UnixMilli())/1000 - cocoaEpochOffsetSeconds
}

// LocalDateKey formats t as a zero-padded YYYY-MM-DD key in the local
// timezone. Used as the grouping/partition key for per-day views, so it has
// to stay stable across DST boundaries within the same calendar day.
func LocalDateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// WindowStartSeconds returns the store timestamp for midnight UTC, daysAgo
// days before now. Computed in UTC so the fetch window does not drift when
// the service runs in different timezones.
func WindowStartSeconds(daysAgo int) float64 {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := midnight.AddDate(0, 0, -daysAgo)
	return ToCocoaSeconds(start)
}
