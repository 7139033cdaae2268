// Package timeclock holds the pure time-entry arithmetic: parsing
// partially-typed 12-hour clock text, keystroke-level validation, and
// keeping {start, end, duration} mutually consistent. Nothing in this
// package performs I/O or touches shared state.
package timeclock

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClockTime is a time of day in 24-hour form.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// Hour12 returns the hour on the 12-hour clock (1-12).
func (c ClockTime) Hour12() int {
	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	return h
}

// IsPM reports whether the time falls in the afternoon block.
func (c ClockTime) IsPM() bool {
	return c.Hour >= 12
}

// Display renders the canonical 12-hour form, e.g. "9:05 AM".
func (c ClockTime) Display() string {
	suffix := "AM"
	if c.IsPM() {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", c.Hour12(), c.Minute, suffix)
}

// On anchors the clock time to a civil date, producing an absolute instant
// in the entry's local frame (represented as UTC).
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, time.UTC)
}

// FromTime extracts the clock time of an absolute instant.
func FromTime(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// FormatClock renders an absolute instant as its 12-hour display string.
func FormatClock(t time.Time) string {
	return FromTime(t).Display()
}

var secondsPerHour = decimal.NewFromInt(3600)

// FormatDurationHours renders a duration in seconds as hours with two
// decimals and an "h" suffix, e.g. 28800 -> "8.00h".
func FormatDurationHours(seconds int64) string {
	hours := decimal.NewFromInt(seconds).Div(secondsPerHour)
	return hours.StringFixed(2) + "h"
}
