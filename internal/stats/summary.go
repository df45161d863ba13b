package stats

import (
	"time"

	"mealdiary/internal/models"
	"mealdiary/internal/storage"
)

// DailySummary aggregates one calendar day of meals from the store.
// Averages are 0 when the day has no meals; FavoriteFlavor is nil when no
// flavor tag occurs at all.
func DailySummary(store *storage.Store, day time.Time) models.DailySummary {
	meals := store.MealsOn(day)

	summary := models.DailySummary{
		Date:       models.StartOfDay(day),
		TotalMeals: len(meals),
	}
	if len(meals) == 0 {
		return summary
	}

	var satietySum, energySum int
	for _, m := range meals {
		satietySum += m.SatietyLevel
		energySum += m.EnergyAfter.Score()
	}
	summary.AvgSatiety = float64(satietySum) / float64(len(meals))
	summary.AvgEnergy = float64(energySum) / float64(len(meals))
	summary.FavoriteFlavor = favoriteFlavor(meals)

	return summary
}

// favoriteFlavor returns the most frequent tag across the meals' flavor
// sets. Ties go to the first maximal tag in canonical enumeration order.
func favoriteFlavor(meals []models.MealEntry) *models.FlavorTag {
	counts := make(map[models.FlavorTag]int)
	for _, m := range meals {
		for _, tag := range m.FlavorTags {
			counts[tag]++
		}
	}

	var best *models.FlavorTag
	bestCount := 0
	for _, tag := range models.AllFlavorTags {
		if counts[tag] > bestCount {
			t := tag
			best = &t
			bestCount = counts[tag]
		}
	}
	return best
}
