package query

import (
	"sort"
	"time"

	"mealdiary/internal/models"
)

// MealDayGroup is one calendar day's bucket of meals.
type MealDayGroup struct {
	Day   time.Time
	Meals []models.MealEntry
}

// SnackDayGroup is one calendar day's bucket of snacks.
type SnackDayGroup struct {
	Day    time.Time
	Snacks []models.SnackEvent
}

// GroupMealsByDay buckets meals by calendar start-of-day. Buckets come back
// sorted ascending by day, each bucket's items ascending by time.
func GroupMealsByDay(meals []models.MealEntry) []MealDayGroup {
	buckets := make(map[time.Time][]models.MealEntry)
	for _, m := range meals {
		day := models.StartOfDay(m.Date)
		buckets[day] = append(buckets[day], m)
	}

	groups := make([]MealDayGroup, 0, len(buckets))
	for day, items := range buckets {
		groups = append(groups, MealDayGroup{Day: day, Meals: SortMeals(items, SortByTimeAsc)})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.Before(groups[j].Day)
	})
	return groups
}

// GroupSnacksByDay buckets snacks by calendar start-of-day with the same
// ordering guarantees as GroupMealsByDay.
func GroupSnacksByDay(snacks []models.SnackEvent) []SnackDayGroup {
	buckets := make(map[time.Time][]models.SnackEvent)
	for _, sn := range snacks {
		day := models.StartOfDay(sn.Date)
		buckets[day] = append(buckets[day], sn)
	}

	groups := make([]SnackDayGroup, 0, len(buckets))
	for day, items := range buckets {
		groups = append(groups, SnackDayGroup{Day: day, Snacks: SortSnacks(items, SortSnacksByTimeAsc)})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.Before(groups[j].Day)
	})
	return groups
}
