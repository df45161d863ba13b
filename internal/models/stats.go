package models

import "time"

// DateRange is a closed interval of instants, inclusive on both ends.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range, inclusive of both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// DailySummary aggregates one calendar day of meals. Derived, never stored.
type DailySummary struct {
	Date           time.Time
	TotalMeals     int
	AvgSatiety     float64
	AvgEnergy      float64
	FavoriteFlavor *FlavorTag
}

// WeeklyStats aggregates the meals and snacks of a date range.
// FlavorRatios carries an explicit entry for every flavor tag, including
// zero-count tags. ReasonRatios is keyed by occurring reasons only.
type WeeklyStats struct {
	Range        DateRange
	MealCount    int
	SnackCount   int
	AvgSatiety   float64
	AvgEnergy    float64
	AvgHunger    float64
	FlavorRatios map[FlavorTag]float64
	ReasonRatios map[SnackReason]float64
}

// TrendPoint is one calendar day's mean value on a trend chart. Days with
// zero events carry value 0.
type TrendPoint struct {
	Day   time.Time
	Value float64
}
