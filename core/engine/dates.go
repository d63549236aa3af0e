// Package engine - Calendar date helpers
package engine

import "time"

const dateLayout = "2006-01-02"

// dateOnly truncates a timestamp to its calendar date in UTC
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// isWeekend reports whether the night is a Friday or Saturday
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Friday || wd == time.Saturday
}
