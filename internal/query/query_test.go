package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdiary/internal/models"
	"mealdiary/internal/stats"
)

var now = time.Date(2026, 8, 19, 14, 0, 0, 0, time.UTC)

func sampleMeals() []models.MealEntry {
	day := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	return []models.MealEntry{
		{
			ID: "m1", Date: day.Add(8 * time.Hour), Name: "Oatmeal", Type: models.MealTypeBreakfast,
			SatietyLevel: 3, EnergyAfter: models.EnergyMedium,
			FlavorTags: []models.FlavorTag{models.FlavorSweet},
		},
		{
			ID: "m2", Date: day.Add(13 * time.Hour), Name: "Ramen", Type: models.MealTypeLunch,
			SatietyLevel: 4, EnergyAfter: models.EnergyHigh,
			FlavorTags: []models.FlavorTag{models.FlavorSalty, models.FlavorSpicy},
			Notes:      "extra chili",
		},
		{
			ID: "m3", Date: day.Add(-30 * time.Hour), Name: "Old Pizza", Type: models.MealTypeDinner,
			SatietyLevel: 5, EnergyAfter: models.EnergyLow,
			FlavorTags: []models.FlavorTag{models.FlavorSalty},
		},
	}
}

func TestFilterMealsRange(t *testing.T) {
	got := FilterMeals(sampleMeals(), MealFilters{Range: stats.RangeToday}, now)
	require.Len(t, got, 2)
	assert.Equal(t, "Oatmeal", got[0].Name)
	assert.Equal(t, "Ramen", got[1].Name)
}

func TestFilterMealsPredicatesAreANDed(t *testing.T) {
	f := MealFilters{
		Range:      stats.RangeLast7,
		Flavors:    []models.FlavorTag{models.FlavorSalty},
		MinSatiety: 4,
		EnergyIn:   []models.EnergyLevel{models.EnergyHigh},
	}
	got := FilterMeals(sampleMeals(), f, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Ramen", got[0].Name)
}

func TestFilterMealsByType(t *testing.T) {
	f := MealFilters{Range: stats.RangeLast7, Types: []models.MealType{models.MealTypeBreakfast, models.MealTypeDinner}}
	got := FilterMeals(sampleMeals(), f, now)
	require.Len(t, got, 2)
	assert.Equal(t, "Oatmeal", got[0].Name)
	assert.Equal(t, "Old Pizza", got[1].Name)
}

func TestFilterMealsSearchCoversNameAndNotes(t *testing.T) {
	f := MealFilters{Range: stats.RangeLast7, Search: "CHILI"}
	got := FilterMeals(sampleMeals(), f, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Ramen", got[0].Name)

	f.Search = "pizza"
	got = FilterMeals(sampleMeals(), f, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Old Pizza", got[0].Name)

	f.Search = "tacos"
	assert.Empty(t, FilterMeals(sampleMeals(), f, now))
}

func TestFilterSnacks(t *testing.T) {
	day := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	snacks := []models.SnackEvent{
		{ID: "s1", Date: day.Add(10 * time.Hour), Reason: models.ReasonStress, HungerLevel: 2, Note: "meeting ran long"},
		{ID: "s2", Date: day.Add(16 * time.Hour), Reason: models.ReasonHunger, HungerLevel: 4},
		{ID: "s3", Date: day.AddDate(0, 0, -10), Reason: models.ReasonStress, HungerLevel: 5},
	}

	got := FilterSnacks(snacks, SnackFilters{Range: stats.RangeLast7, Reasons: []models.SnackReason{models.ReasonStress}}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)

	got = FilterSnacks(snacks, SnackFilters{Range: stats.RangeLast7, MinHunger: 3}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "s2", got[0].ID)

	got = FilterSnacks(snacks, SnackFilters{Range: stats.RangeLast7, Search: "meeting"}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
}

func TestSortMeals(t *testing.T) {
	meals := sampleMeals()

	desc := SortMeals(meals, SortByTimeDesc)
	assert.Equal(t, "Ramen", desc[0].Name)
	assert.Equal(t, "Old Pizza", desc[2].Name)

	bySatiety := SortMeals(meals, SortBySatietyDesc)
	assert.Equal(t, "Old Pizza", bySatiety[0].Name)
	assert.Equal(t, "Ramen", bySatiety[1].Name)

	byEnergy := SortMeals(meals, SortByEnergyDesc)
	assert.Equal(t, "Ramen", byEnergy[0].Name)
	assert.Equal(t, "Old Pizza", byEnergy[2].Name)

	byName := SortMeals(meals, SortByName)
	assert.Equal(t, "Oatmeal", byName[0].Name)
	assert.Equal(t, "Old Pizza", byName[1].Name)
	assert.Equal(t, "Ramen", byName[2].Name)

	// input order is untouched
	assert.Equal(t, "Oatmeal", meals[0].Name)
}

func TestSortMealsSatietyTieBreaksLaterFirst(t *testing.T) {
	day := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	meals := []models.MealEntry{
		{ID: "early", Date: day.Add(8 * time.Hour), SatietyLevel: 3},
		{ID: "late", Date: day.Add(20 * time.Hour), SatietyLevel: 3},
	}
	got := SortMeals(meals, SortBySatietyDesc)
	assert.Equal(t, "late", got[0].ID)
}

func TestSortSnacks(t *testing.T) {
	day := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	snacks := []models.SnackEvent{
		{ID: "s1", Date: day.Add(10 * time.Hour), HungerLevel: 2},
		{ID: "s2", Date: day.Add(16 * time.Hour), HungerLevel: 4},
	}

	byHunger := SortSnacks(snacks, SortSnacksByHungerDesc)
	assert.Equal(t, "s2", byHunger[0].ID)

	desc := SortSnacks(snacks, SortSnacksByTimeDesc)
	assert.Equal(t, "s2", desc[0].ID)
}

func TestGroupMealsByDay(t *testing.T) {
	groups := GroupMealsByDay(sampleMeals())
	require.Len(t, groups, 2)

	assert.True(t, groups[0].Day.Before(groups[1].Day))
	require.Len(t, groups[0].Meals, 1)
	assert.Equal(t, "Old Pizza", groups[0].Meals[0].Name)

	require.Len(t, groups[1].Meals, 2)
	assert.Equal(t, "Oatmeal", groups[1].Meals[0].Name)
	assert.Equal(t, "Ramen", groups[1].Meals[1].Name)
}

func TestGroupSnacksByDay(t *testing.T) {
	day := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	snacks := []models.SnackEvent{
		{ID: "s2", Date: day.Add(16 * time.Hour)},
		{ID: "s1", Date: day.Add(10 * time.Hour)},
		{ID: "s0", Date: day.AddDate(0, 0, -1).Add(12 * time.Hour)},
	}

	groups := GroupSnacksByDay(snacks)
	require.Len(t, groups, 2)
	assert.Equal(t, "s0", groups[0].Snacks[0].ID)
	assert.Equal(t, "s1", groups[1].Snacks[0].ID)
	assert.Equal(t, "s2", groups[1].Snacks[1].ID)
}

func TestDistribution(t *testing.T) {
	d := Distribution(sampleMeals())
	assert.Equal(t, 2, d.Count(models.FlavorSalty))
	assert.Equal(t, 1, d.Count(models.FlavorSweet))
	assert.Equal(t, 1, d.Count(models.FlavorSpicy))
	assert.Equal(t, 4, d.Total())
	assert.Equal(t, 3, d.ActiveTags())
	assert.InDelta(t, 0.5, d.Ratio(models.FlavorSalty), 1e-9)
	assert.Zero(t, d.Ratio(models.FlavorBitter))
}

func TestDistributionEmptyIsZeroSafe(t *testing.T) {
	d := Distribution(nil)
	assert.Zero(t, d.Total())
	assert.Zero(t, d.ActiveTags())
	assert.Zero(t, d.Ratio(models.FlavorSweet))
}

func TestDistributionDeduplicatesPerMeal(t *testing.T) {
	meals := []models.MealEntry{{
		ID: "m1", Date: now,
		FlavorTags: []models.FlavorTag{models.FlavorSweet, models.FlavorSweet},
	}}
	d := Distribution(meals)
	assert.Equal(t, 1, d.Count(models.FlavorSweet))
	assert.Equal(t, 1, d.Total())
}

func TestDaypartOf(t *testing.T) {
	cases := map[int]Daypart{
		5: Morning, 11: Morning,
		12: Afternoon, 16: Afternoon,
		17: Evening, 21: Evening,
		22: Night, 2: Night, 4: Night,
	}
	for hour, want := range cases {
		assert.Equal(t, want, DaypartOf(hour), "hour %d", hour)
	}
}

func TestEnergyByDaypart(t *testing.T) {
	day := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	meals := []models.MealEntry{
		{Date: day.Add(8 * time.Hour), EnergyAfter: models.EnergyHigh},
		{Date: day.Add(9 * time.Hour), EnergyAfter: models.EnergyLow},
		{Date: day.Add(19 * time.Hour), EnergyAfter: models.EnergyMedium},
	}

	byPart := EnergyByDaypart(meals)
	assert.InDelta(t, 2.0, byPart[Morning], 1e-9)
	assert.InDelta(t, 2.0, byPart[Evening], 1e-9)
	assert.Zero(t, byPart[Afternoon])
	assert.Zero(t, byPart[Night])
	assert.Len(t, byPart, len(AllDayparts))
}
