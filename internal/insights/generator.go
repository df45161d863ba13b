// Package insights turns weekly statistics into short textual observations.
package insights

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealdiary/internal/models"
)

const (
	// Average energy outside this band triggers an energy insight.
	lowEnergyThreshold  = 1.5
	highEnergyThreshold = 2.5

	// Average satiety outside this band triggers a satiety insight.
	lightSatietyThreshold = 2.0
	heavySatietyThreshold = 4.0

	// Fewer distinct flavors than this triggers the variety insight.
	minFlavorVariety = 3
)

// Generate evaluates the rule list in fixed order against one week of
// statistics. Each rule independently appends at most one insight, so a
// week yields between zero and five. Insights are ephemeral: callers
// regenerate them on every recompute.
func Generate(weekly models.WeeklyStats, now time.Time) []models.InsightItem {
	var items []models.InsightItem

	add := func(category models.InsightCategory, title, description string) {
		items = append(items, models.InsightItem{
			ID:          uuid.New().String(),
			Date:        now,
			Title:       title,
			Description: description,
			Category:    category,
		})
	}

	if tag, ok := topFlavor(weekly.FlavorRatios); ok {
		add(models.CategoryFlavor, "Flavor of the Week",
			fmt.Sprintf("%s flavors showed up most often in your meals this week.", titleCase(string(tag))))
	}

	if weekly.AvgEnergy < lowEnergyThreshold {
		add(models.CategoryEnergy, "Low Energy",
			"Your meals mostly left you low on energy this week.")
	} else if weekly.AvgEnergy > highEnergyThreshold {
		add(models.CategoryEnergy, "High Energy",
			"Your meals kept your energy up this week.")
	}

	if weekly.AvgSatiety < lightSatietyThreshold {
		add(models.CategorySatiety, "Light meals",
			"You rarely felt full after eating this week.")
	} else if weekly.AvgSatiety > heavySatietyThreshold {
		add(models.CategorySatiety, "Heavy eating",
			"Most meals left you very full this week.")
	}

	if reason, ok := topReason(weekly.ReasonRatios); ok {
		add(models.CategoryHabits, "Snack Trigger",
			fmt.Sprintf("Most of your snacking was driven by %s this week.", describeReason(reason)))
	}

	if activeFlavors(weekly.FlavorRatios) < minFlavorVariety {
		add(models.CategoryBalance, "Limited Variety",
			"Your meals covered only a few flavors this week. Mixing in more can keep things balanced.")
	}

	return items
}

// topFlavor returns the tag with the highest nonzero ratio, ties broken by
// canonical enumeration order.
func topFlavor(ratios map[models.FlavorTag]float64) (models.FlavorTag, bool) {
	var best models.FlavorTag
	bestRatio := 0.0
	for _, tag := range models.AllFlavorTags {
		if ratios[tag] > bestRatio {
			best = tag
			bestRatio = ratios[tag]
		}
	}
	return best, bestRatio > 0
}

// topReason mirrors topFlavor over snack reasons.
func topReason(ratios map[models.SnackReason]float64) (models.SnackReason, bool) {
	var best models.SnackReason
	bestRatio := 0.0
	for _, reason := range models.AllSnackReasons {
		if ratios[reason] > bestRatio {
			best = reason
			bestRatio = ratios[reason]
		}
	}
	return best, bestRatio > 0
}

func activeFlavors(ratios map[models.FlavorTag]float64) int {
	active := 0
	for _, tag := range models.AllFlavorTags {
		if ratios[tag] > 0 {
			active++
		}
	}
	return active
}

func describeReason(reason models.SnackReason) string {
	switch reason {
	case models.ReasonHunger:
		return "real hunger"
	case models.ReasonStress:
		return "stress"
	case models.ReasonRoutine:
		return "routine"
	case models.ReasonCraveSweet:
		return "sweet cravings"
	default:
		return string(reason)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
