package query

import "mealdiary/internal/models"

// FlavorDistribution counts, per flavor tag, the meals whose tag set
// contains it. A meal never double-counts a tag, even if it was stored with
// duplicates before normalization.
type FlavorDistribution struct {
	counts map[models.FlavorTag]int
	total  int
}

// Distribution tallies the flavor tags of the given meals.
func Distribution(meals []models.MealEntry) FlavorDistribution {
	d := FlavorDistribution{counts: make(map[models.FlavorTag]int)}
	for _, m := range meals {
		for _, tag := range models.NormalizeFlavorTags(m.FlavorTags) {
			d.counts[tag]++
			d.total++
		}
	}
	return d
}

// Count returns the number of meals carrying the tag.
func (d FlavorDistribution) Count(tag models.FlavorTag) int {
	return d.counts[tag]
}

// Ratio returns the tag's share of all tag occurrences, 0 on empty input.
func (d FlavorDistribution) Ratio(tag models.FlavorTag) float64 {
	if d.total == 0 {
		return 0
	}
	return float64(d.counts[tag]) / float64(d.total)
}

// Total returns the sum of all tag occurrences.
func (d FlavorDistribution) Total() int {
	return d.total
}

// ActiveTags returns how many distinct tags have a nonzero count.
func (d FlavorDistribution) ActiveTags() int {
	active := 0
	for _, tag := range models.AllFlavorTags {
		if d.counts[tag] > 0 {
			active++
		}
	}
	return active
}
