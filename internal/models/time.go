package models

import "time"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayRangeOf returns the closed range covering t's whole calendar day:
// [startOfDay, startOfDay + 1 day - 1ns]. The next day is computed with
// AddDate so the range stays correct across DST transitions.
func DayRangeOf(t time.Time) DateRange {
	start := StartOfDay(t)
	return DateRange{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}
