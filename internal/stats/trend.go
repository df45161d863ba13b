package stats

import (
	"time"

	"mealdiary/internal/models"
	"mealdiary/internal/storage"
)

// SatietyTrend emits one point per calendar day of r with that day's mean
// satiety level. Days without meals carry value 0.
func SatietyTrend(store *storage.Store, r models.DateRange) []models.TrendPoint {
	return trend(r, func(day time.Time) float64 {
		meals := store.MealsOn(day)
		if len(meals) == 0 {
			return 0
		}
		sum := 0
		for _, m := range meals {
			sum += m.SatietyLevel
		}
		return float64(sum) / float64(len(meals))
	})
}

// EnergyTrend emits one point per calendar day of r with that day's mean
// energy score. Days without meals carry value 0.
func EnergyTrend(store *storage.Store, r models.DateRange) []models.TrendPoint {
	return trend(r, func(day time.Time) float64 {
		meals := store.MealsOn(day)
		if len(meals) == 0 {
			return 0
		}
		sum := 0
		for _, m := range meals {
			sum += m.EnergyAfter.Score()
		}
		return float64(sum) / float64(len(meals))
	})
}

// HungerTrend emits one point per calendar day of r with that day's mean
// snack hunger level. Days without snacks carry value 0.
func HungerTrend(store *storage.Store, r models.DateRange) []models.TrendPoint {
	return trend(r, func(day time.Time) float64 {
		snacks := store.SnacksOn(day)
		if len(snacks) == 0 {
			return 0
		}
		sum := 0
		for _, sn := range snacks {
			sum += sn.HungerLevel
		}
		return float64(sum) / float64(len(snacks))
	})
}

// trend walks every calendar day from range start to range end inclusive.
// Stepping with AddDate keeps day boundaries correct across DST transitions,
// where fixed 24h increments would skip or duplicate a day.
func trend(r models.DateRange, value func(day time.Time) float64) []models.TrendPoint {
	var points []models.TrendPoint
	for day := models.StartOfDay(r.Start); !day.After(r.End); day = day.AddDate(0, 0, 1) {
		points = append(points, models.TrendPoint{Day: day, Value: value(day)})
	}
	return points
}
