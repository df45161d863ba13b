package stats

import (
	"time"

	"mealdiary/internal/models"
	"mealdiary/internal/storage"
)

// Weekly aggregates the meals and snacks of the resolved range. The flavor
// ratio map always carries all five tags, zero-count tags with an explicit 0
// ratio. The reason ratio map holds occurring reasons only, with a
// max(1, total) denominator so an empty week yields 0 rather than NaN.
func Weekly(store *storage.Store, kind RangeKind, custom models.DateRange, now time.Time) models.WeeklyStats {
	r := Resolve(kind, custom, now)
	meals := store.MealsInRange(r)
	snacks := store.SnacksInRange(r)

	ws := models.WeeklyStats{
		Range:        r,
		MealCount:    len(meals),
		SnackCount:   len(snacks),
		FlavorRatios: make(map[models.FlavorTag]float64, len(models.AllFlavorTags)),
		ReasonRatios: make(map[models.SnackReason]float64),
	}

	if len(meals) > 0 {
		var satietySum, energySum int
		for _, m := range meals {
			satietySum += m.SatietyLevel
			energySum += m.EnergyAfter.Score()
		}
		ws.AvgSatiety = float64(satietySum) / float64(len(meals))
		ws.AvgEnergy = float64(energySum) / float64(len(meals))
	}

	if len(snacks) > 0 {
		hungerSum := 0
		for _, sn := range snacks {
			hungerSum += sn.HungerLevel
		}
		ws.AvgHunger = float64(hungerSum) / float64(len(snacks))
	}

	flavorCounts := make(map[models.FlavorTag]int)
	totalTags := 0
	for _, m := range meals {
		for _, tag := range m.FlavorTags {
			flavorCounts[tag]++
			totalTags++
		}
	}
	for _, tag := range models.AllFlavorTags {
		if totalTags == 0 {
			ws.FlavorRatios[tag] = 0
		} else {
			ws.FlavorRatios[tag] = float64(flavorCounts[tag]) / float64(totalTags)
		}
	}

	reasonCounts := make(map[models.SnackReason]int)
	for _, sn := range snacks {
		reasonCounts[sn.Reason]++
	}
	totalReasons := len(snacks)
	if totalReasons < 1 {
		totalReasons = 1
	}
	for reason, count := range reasonCounts {
		ws.ReasonRatios[reason] = float64(count) / float64(totalReasons)
	}

	return ws
}
