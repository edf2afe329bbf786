// Package timeutil provides utility functions for working with time values.
package timeutil

import (
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

// keyLayout is fixed width so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// CeilSeconds rounds d up to a whole number of seconds. Negative durations
// yield zero.
func CeilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int((d + time.Second - 1) / time.Second)
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromStr parses a natural language or absolute date such as "2 hours ago",
// "yesterday" or "2025-03-01 14:00" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// ToKey converts a time value to a database key for Bolt. Keys are in UTC.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
