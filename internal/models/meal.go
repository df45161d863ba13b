package models

import (
	"strings"
	"time"

	"mealdiary/internal/constants"
)

type MealType string

const (
	MealTypeMeal      MealType = "meal"
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// AllMealTypes lists every meal type in canonical order.
var AllMealTypes = []MealType{MealTypeMeal, MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// AllEnergyLevels lists every energy level in canonical order.
var AllEnergyLevels = []EnergyLevel{EnergyLow, EnergyMedium, EnergyHigh}

// Score maps an energy level onto the numeric scale used by averages and
// trend charts (low=1, medium=2, high=3). Unknown values score 0.
func (e EnergyLevel) Score() int {
	switch e {
	case EnergyLow:
		return 1
	case EnergyMedium:
		return 2
	case EnergyHigh:
		return 3
	default:
		return 0
	}
}

type FlavorTag string

const (
	FlavorSweet  FlavorTag = "sweet"
	FlavorSalty  FlavorTag = "salty"
	FlavorSpicy  FlavorTag = "spicy"
	FlavorSour   FlavorTag = "sour"
	FlavorBitter FlavorTag = "bitter"
)

// AllFlavorTags lists every flavor tag in canonical enumeration order.
// Most-frequent lookups break ties by taking the first maximal element in
// this order, which keeps results deterministic.
var AllFlavorTags = []FlavorTag{FlavorSweet, FlavorSalty, FlavorSpicy, FlavorSour, FlavorBitter}

// ClampLevel forces a satiety or hunger level into [1,5].
func ClampLevel(level int) int {
	if level < constants.MinLevel {
		return constants.MinLevel
	}
	if level > constants.MaxLevel {
		return constants.MaxLevel
	}
	return level
}

// MealEntry is one meal or snack consumption record.
type MealEntry struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date"`
	Name         string      `json:"name"`
	Type         MealType    `json:"type"`
	SatietyLevel int         `json:"satiety_level"`
	EnergyAfter  EnergyLevel `json:"energy_after"`
	FlavorTags   []FlavorTag `json:"flavor_tags,omitempty"`
	Notes        string      `json:"notes,omitempty"`
}

// Normalize enforces the entry invariants: trimmed name, satiety clamped to
// [1,5], flavor tags deduplicated into canonical order, empty notes treated
// as absent. Every construction and mutation path must pass through here.
func (m *MealEntry) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.SatietyLevel = ClampLevel(m.SatietyLevel)
	m.FlavorTags = NormalizeFlavorTags(m.FlavorTags)
	if strings.TrimSpace(m.Notes) == "" {
		m.Notes = ""
	}
}

// HasFlavor reports whether the entry carries the given flavor tag.
func (m *MealEntry) HasFlavor(tag FlavorTag) bool {
	for _, t := range m.FlavorTags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeFlavorTags collapses duplicates and orders tags canonically.
// A nil result means no tags.
func NormalizeFlavorTags(tags []FlavorTag) []FlavorTag {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[FlavorTag]bool, len(tags))
	for _, t := range tags {
		seen[t] = true
	}
	var out []FlavorTag
	for _, t := range AllFlavorTags {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}
