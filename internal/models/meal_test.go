package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, ClampLevel(0))
	assert.Equal(t, 1, ClampLevel(-3))
	assert.Equal(t, 3, ClampLevel(3))
	assert.Equal(t, 5, ClampLevel(5))
	assert.Equal(t, 5, ClampLevel(9))
}

func TestEnergyScore(t *testing.T) {
	assert.Equal(t, 1, EnergyLow.Score())
	assert.Equal(t, 2, EnergyMedium.Score())
	assert.Equal(t, 3, EnergyHigh.Score())
	assert.Equal(t, 0, EnergyLevel("bogus").Score())
}

func TestMealNormalize(t *testing.T) {
	m := MealEntry{
		Name:         "  Ramen  ",
		SatietyLevel: 12,
		FlavorTags:   []FlavorTag{FlavorSpicy, FlavorSweet, FlavorSpicy},
		Notes:        "   ",
	}
	m.Normalize()

	assert.Equal(t, "Ramen", m.Name)
	assert.Equal(t, 5, m.SatietyLevel)
	assert.Equal(t, []FlavorTag{FlavorSweet, FlavorSpicy}, m.FlavorTags)
	assert.Equal(t, "", m.Notes)
}

func TestNormalizeFlavorTags(t *testing.T) {
	assert.Nil(t, NormalizeFlavorTags(nil))
	assert.Nil(t, NormalizeFlavorTags([]FlavorTag{}))

	got := NormalizeFlavorTags([]FlavorTag{FlavorBitter, FlavorSalty, FlavorBitter})
	assert.Equal(t, []FlavorTag{FlavorSalty, FlavorBitter}, got)
}

func TestSnackNormalize(t *testing.T) {
	s := SnackEvent{HungerLevel: -1, Note: " \t"}
	s.Normalize()
	assert.Equal(t, 1, s.HungerLevel)
	assert.Equal(t, "", s.Note)
}

func TestDayRangeOf(t *testing.T) {
	at := time.Date(2026, 8, 19, 13, 45, 12, 0, time.UTC)
	r := DayRangeOf(at)

	assert.Equal(t, time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC), r.Start)
	assert.True(t, r.Contains(at))
	assert.True(t, r.Contains(time.Date(2026, 8, 19, 23, 59, 59, 999999999, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 8, 18, 23, 59, 59, 0, time.UTC)))
}

func TestDateRangeContainsInclusive(t *testing.T) {
	r := DateRange{
		Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.End.Add(time.Nanosecond)))
}
