package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdiary/internal/models"
	"mealdiary/internal/stats"
)

var now = time.Date(2026, 8, 19, 14, 30, 0, 0, time.UTC)

func TestParseMealType(t *testing.T) {
	mt, err := ParseMealType(" Lunch ")
	require.NoError(t, err)
	assert.Equal(t, models.MealTypeLunch, mt)

	_, err = ParseMealType("brunch")
	assert.Error(t, err)
}

func TestParseEnergy(t *testing.T) {
	e, err := ParseEnergy("HIGH")
	require.NoError(t, err)
	assert.Equal(t, models.EnergyHigh, e)

	_, err = ParseEnergy("turbo")
	assert.Error(t, err)
}

func TestParseFlavors(t *testing.T) {
	tags, err := ParseFlavors("spicy, sweet ,spicy")
	require.NoError(t, err)
	assert.Equal(t, []models.FlavorTag{models.FlavorSweet, models.FlavorSpicy}, tags)

	_, err = ParseFlavors("umami")
	assert.Error(t, err)

	tags, err = ParseFlavors("  ")
	require.NoError(t, err)
	assert.Nil(t, tags)
}

func TestParseReason(t *testing.T) {
	r, err := ParseReason("sweet")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonCraveSweet, r)

	r, err = ParseReason("Stress")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonStress, r)

	_, err = ParseReason("boredom")
	assert.Error(t, err)
}

func TestParseRangeKind(t *testing.T) {
	for input, want := range map[string]stats.RangeKind{
		"today": stats.RangeToday,
		"last7": stats.RangeLast7,
		"7d":    stats.RangeLast7,
		"week":  stats.RangeThisWeek,
		"month": stats.RangeThisMonth,
	} {
		kind, err := ParseRangeKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, kind)
	}

	_, err := ParseRangeKind("fortnight")
	assert.Error(t, err)
}

func TestParseWhen(t *testing.T) {
	got, err := ParseWhen("", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(now))

	got, err = ParseWhen("2026-08-10", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseWhen("2026-08-10 07:45", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 10, 7, 45, 0, 0, time.UTC), got)

	_, err = ParseWhen("10.08.2026", now)
	assert.Error(t, err)
}

func TestCustomRangeIncludesWholeEndDay(t *testing.T) {
	r, err := CustomRange("2026-08-10", "2026-08-12", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), r.Start)
	assert.True(t, r.Contains(time.Date(2026, 8, 12, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)))
}
