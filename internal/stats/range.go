// Package stats aggregates the diary's flat event log into daily summaries,
// weekly statistics and per-day trend series.
package stats

import (
	"time"

	"mealdiary/internal/models"
)

// RangeKind is a named or custom date-interval selector.
type RangeKind string

const (
	RangeToday     RangeKind = "today"
	RangeLast7     RangeKind = "last7"
	RangeThisWeek  RangeKind = "this_week"
	RangeThisMonth RangeKind = "this_month"
	RangeCustom    RangeKind = "custom"
)

// Resolve turns a range selector into a concrete closed range relative to
// now, in now's location. Weeks start on Monday. Custom passes through
// untouched.
func Resolve(kind RangeKind, custom models.DateRange, now time.Time) models.DateRange {
	today := models.StartOfDay(now)

	switch kind {
	case RangeToday:
		return models.DayRangeOf(now)
	case RangeLast7:
		// 7 calendar days inclusive, ending today
		return models.DateRange{
			Start: today.AddDate(0, 0, -6),
			End:   today.AddDate(0, 0, 1).Add(-time.Nanosecond),
		}
	case RangeThisWeek:
		offset := int(now.Weekday()-time.Monday+7) % 7
		weekStart := today.AddDate(0, 0, -offset)
		return models.DateRange{
			Start: weekStart,
			End:   weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond),
		}
	case RangeThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return models.DateRange{
			Start: monthStart,
			End:   monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond),
		}
	case RangeCustom:
		return custom
	default:
		return models.DayRangeOf(now)
	}
}
