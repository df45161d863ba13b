package models

import "time"

type InsightCategory string

const (
	CategoryBalance InsightCategory = "balance"
	CategoryEnergy  InsightCategory = "energy"
	CategorySatiety InsightCategory = "satiety"
	CategoryHabits  InsightCategory = "habits"
	CategoryFlavor  InsightCategory = "flavor"
)

// InsightItem is a generated textual observation about a week of eating.
// Insights are ephemeral: they are regenerated on every recompute and are
// never part of the generation path as durable state, though the store can
// hold them for display.
type InsightItem struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    InsightCategory `json:"category"`
}
