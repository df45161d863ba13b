package query

import (
	"sort"
	"strings"

	"mealdiary/internal/models"
)

type MealSortKey string

const (
	SortByTimeAsc     MealSortKey = "time_asc"
	SortByTimeDesc    MealSortKey = "time_desc"
	SortBySatietyDesc MealSortKey = "satiety_desc"
	SortByEnergyDesc  MealSortKey = "energy_desc"
	SortByName        MealSortKey = "name"
)

type SnackSortKey string

const (
	SortSnacksByTimeAsc    SnackSortKey = "time_asc"
	SortSnacksByTimeDesc   SnackSortKey = "time_desc"
	SortSnacksByHungerDesc SnackSortKey = "hunger_desc"
)

// SortMeals returns a stably sorted copy of items. Satiety and energy sorts
// break ties by later date first; name sorts case-insensitively ascending.
func SortMeals(items []models.MealEntry, key MealSortKey) []models.MealEntry {
	out := make([]models.MealEntry, len(items))
	copy(out, items)

	switch key {
	case SortByTimeDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	case SortBySatietyDesc:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].SatietyLevel != out[j].SatietyLevel {
				return out[i].SatietyLevel > out[j].SatietyLevel
			}
			return out[i].Date.After(out[j].Date)
		})
	case SortByEnergyDesc:
		sort.SliceStable(out, func(i, j int) bool {
			si, sj := out[i].EnergyAfter.Score(), out[j].EnergyAfter.Score()
			if si != sj {
				return si > sj
			}
			return out[i].Date.After(out[j].Date)
		})
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	default: // SortByTimeAsc
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	}
	return out
}

// SortSnacks returns a stably sorted copy of items.
func SortSnacks(items []models.SnackEvent, key SnackSortKey) []models.SnackEvent {
	out := make([]models.SnackEvent, len(items))
	copy(out, items)

	switch key {
	case SortSnacksByTimeDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	case SortSnacksByHungerDesc:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].HungerLevel != out[j].HungerLevel {
				return out[i].HungerLevel > out[j].HungerLevel
			}
			return out[i].Date.After(out[j].Date)
		})
	default: // SortSnacksByTimeAsc
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	}
	return out
}
