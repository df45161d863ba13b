// Package query computes filtered, sorted and grouped views over the diary
// collections. Everything here is a pure function of its inputs.
package query

import (
	"strings"
	"time"

	"mealdiary/internal/models"
	"mealdiary/internal/stats"
)

// MealFilters describes an ANDed set of meal predicates. Zero values
// deactivate a predicate: empty slices match everything, MinSatiety 0 is
// off, blank search is off.
type MealFilters struct {
	Range      stats.RangeKind
	Custom     models.DateRange
	Flavors    []models.FlavorTag
	Types      []models.MealType
	MinSatiety int
	EnergyIn   []models.EnergyLevel
	Search     string
}

// SnackFilters is the snack-side counterpart, filtering on reason and
// hunger instead of type/flavor/satiety/energy.
type SnackFilters struct {
	Range     stats.RangeKind
	Custom    models.DateRange
	Reasons   []models.SnackReason
	MinHunger int
	Search    string
}

// FilterMeals keeps the entries passing every active predicate. The range
// selector resolves relative to now.
func FilterMeals(source []models.MealEntry, f MealFilters, now time.Time) []models.MealEntry {
	r := stats.Resolve(f.Range, f.Custom, now)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.MealEntry
	for _, m := range source {
		if !r.Contains(m.Date) {
			continue
		}
		if len(f.Flavors) > 0 && !anyFlavorMatches(m, f.Flavors) {
			continue
		}
		if len(f.Types) > 0 && !containsType(f.Types, m.Type) {
			continue
		}
		if f.MinSatiety > 0 && m.SatietyLevel < f.MinSatiety {
			continue
		}
		if len(f.EnergyIn) > 0 && !containsEnergy(f.EnergyIn, m.EnergyAfter) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Name+m.Notes), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterSnacks keeps the events passing every active predicate.
func FilterSnacks(source []models.SnackEvent, f SnackFilters, now time.Time) []models.SnackEvent {
	r := stats.Resolve(f.Range, f.Custom, now)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.SnackEvent
	for _, sn := range source {
		if !r.Contains(sn.Date) {
			continue
		}
		if len(f.Reasons) > 0 && !containsReason(f.Reasons, sn.Reason) {
			continue
		}
		if f.MinHunger > 0 && sn.HungerLevel < f.MinHunger {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(sn.Note), search) {
			continue
		}
		out = append(out, sn)
	}
	return out
}

func anyFlavorMatches(m models.MealEntry, flavors []models.FlavorTag) bool {
	for _, tag := range flavors {
		if m.HasFlavor(tag) {
			return true
		}
	}
	return false
}

func containsType(types []models.MealType, t models.MealType) bool {
	for _, mt := range types {
		if mt == t {
			return true
		}
	}
	return false
}

func containsEnergy(levels []models.EnergyLevel, e models.EnergyLevel) bool {
	for _, l := range levels {
		if l == e {
			return true
		}
	}
	return false
}

func containsReason(reasons []models.SnackReason, r models.SnackReason) bool {
	for _, sr := range reasons {
		if sr == r {
			return true
		}
	}
	return false
}
