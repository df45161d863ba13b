package query

import "mealdiary/internal/models"

// Daypart is a time-of-day bucket for energy breakdowns.
type Daypart string

const (
	Morning   Daypart = "morning"   // 05:00–11:59
	Afternoon Daypart = "afternoon" // 12:00–16:59
	Evening   Daypart = "evening"   // 17:00–21:59
	Night     Daypart = "night"     // 22:00–04:59
)

// AllDayparts lists the buckets in display order.
var AllDayparts = []Daypart{Morning, Afternoon, Evening, Night}

// DaypartOf maps an hour of day onto its bucket.
func DaypartOf(hour int) Daypart {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// EnergyByDaypart returns the mean energy score of all meals falling into
// each time-of-day bucket, 0 for empty buckets. Meals are bucketed by the
// hour of their date and averaged across energy levels; the result is a
// true blend, not a per-level constant.
func EnergyByDaypart(meals []models.MealEntry) map[Daypart]float64 {
	sums := make(map[Daypart]int)
	counts := make(map[Daypart]int)
	for _, m := range meals {
		part := DaypartOf(m.Date.Hour())
		sums[part] += m.EnergyAfter.Score()
		counts[part]++
	}

	out := make(map[Daypart]float64, len(AllDayparts))
	for _, part := range AllDayparts {
		if counts[part] == 0 {
			out[part] = 0
			continue
		}
		out[part] = float64(sums[part]) / float64(counts[part])
	}
	return out
}
