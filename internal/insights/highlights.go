package insights

import (
	"sort"
	"strings"

	"mealdiary/internal/constants"
	"mealdiary/internal/models"
	"mealdiary/internal/query"
)

// NameCount pairs a meal name with its frequency.
type NameCount struct {
	Name  string
	Count int
}

// ReasonRank is one snack reason's count and share.
type ReasonRank struct {
	Reason models.SnackReason
	Count  int
	Ratio  float64
}

// TopEnergizingMeals ranks the names of meals that left the eater with high
// energy, most frequent first, capped at five.
func TopEnergizingMeals(meals []models.MealEntry) []NameCount {
	return topMealNames(meals, func(m models.MealEntry) bool {
		return m.EnergyAfter == models.EnergyHigh
	})
}

// TopHeavyMeals ranks the names of filling meals that still left the eater
// low on energy, most frequent first, capped at five.
func TopHeavyMeals(meals []models.MealEntry) []NameCount {
	return topMealNames(meals, func(m models.MealEntry) bool {
		return m.SatietyLevel >= 4 && m.EnergyAfter == models.EnergyLow
	})
}

// topMealNames groups matching meals by trimmed, non-empty name and ranks
// by frequency. Sorting is stable, so equal counts keep first-encountered
// order.
func topMealNames(meals []models.MealEntry, keep func(models.MealEntry) bool) []NameCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range meals {
		if !keep(m) {
			continue
		}
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	ranked := make([]NameCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, NameCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > constants.TopMealNames {
		ranked = ranked[:constants.TopMealNames]
	}
	return ranked
}

// RankSnackReasons computes count and share for every reason in canonical
// enumeration order, then sorts descending by count. The sort is stable, so
// ties keep canonical order. The denominator is max(1, total) to stay
// division-safe on an empty log.
func RankSnackReasons(snacks []models.SnackEvent) []ReasonRank {
	counts := make(map[models.SnackReason]int)
	for _, sn := range snacks {
		counts[sn.Reason]++
	}

	total := len(snacks)
	if total < 1 {
		total = 1
	}

	ranked := make([]ReasonRank, 0, len(models.AllSnackReasons))
	for _, reason := range models.AllSnackReasons {
		ranked = append(ranked, ReasonRank{
			Reason: reason,
			Count:  counts[reason],
			Ratio:  float64(counts[reason]) / float64(total),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// BalanceText summarizes flavor variety for display.
func BalanceText(d query.FlavorDistribution) string {
	switch active := d.ActiveTags(); {
	case active == 0:
		return "No data"
	case active < 3:
		return "Low variety"
	case active == 3:
		return "Balanced"
	default:
		return "Rich variety"
	}
}
