package cli

import (
	"fmt"
	"strings"
	"time"

	"mealdiary/internal/constants"
	"mealdiary/internal/models"
	"mealdiary/internal/stats"
	"mealdiary/internal/storage"
)

// Context is handed to every command's Run method.
type Context struct {
	Store    *storage.Store
	Backend  storage.Backend
	DataPath string
	Debug    bool
}

// ParseMealType parses a meal type argument.
func ParseMealType(s string) (models.MealType, error) {
	t := models.MealType(strings.ToLower(strings.TrimSpace(s)))
	for _, mt := range models.AllMealTypes {
		if t == mt {
			return mt, nil
		}
	}
	return "", fmt.Errorf("invalid meal type: %s", s)
}

// ParseEnergy parses an energy level argument.
func ParseEnergy(s string) (models.EnergyLevel, error) {
	e := models.EnergyLevel(strings.ToLower(strings.TrimSpace(s)))
	for _, el := range models.AllEnergyLevels {
		if e == el {
			return el, nil
		}
	}
	return "", fmt.Errorf("invalid energy level: %s", s)
}

// ParseFlavors parses a comma-separated list of flavor tags.
func ParseFlavors(s string) ([]models.FlavorTag, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var tags []models.FlavorTag
	for _, part := range strings.Split(s, ",") {
		tag := models.FlavorTag(strings.ToLower(strings.TrimSpace(part)))
		found := false
		for _, ft := range models.AllFlavorTags {
			if tag == ft {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("invalid flavor tag: %s", part)
		}
		tags = append(tags, tag)
	}
	return models.NormalizeFlavorTags(tags), nil
}

// ParseReason parses a snack reason argument. "sweet" is accepted as a
// shorthand for crave_sweet.
func ParseReason(s string) (models.SnackReason, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "sweet" {
		return models.ReasonCraveSweet, nil
	}
	r := models.SnackReason(normalized)
	for _, sr := range models.AllSnackReasons {
		if r == sr {
			return sr, nil
		}
	}
	return "", fmt.Errorf("invalid snack reason: %s", s)
}

// ParseRangeKind parses a named range selector.
func ParseRangeKind(s string) (stats.RangeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return stats.RangeToday, nil
	case "last7", "7d":
		return stats.RangeLast7, nil
	case "week":
		return stats.RangeThisWeek, nil
	case "month":
		return stats.RangeThisMonth, nil
	default:
		return "", fmt.Errorf("invalid range: %s (expected today|last7|week|month)", s)
	}
}

// ParseWhen parses an event timestamp. An empty string means now; a bare
// date lands at midnight; "YYYY-MM-DD HH:MM" is accepted for full control.
func ParseWhen(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if t, err := time.ParseInLocation(constants.DateFormat+" "+constants.TimeFormat, s, now.Location()); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
	}
	return t, nil
}

// CustomRange builds a custom closed range from bare from/to dates, where
// the to day is included in full.
func CustomRange(from, to string, now time.Time) (models.DateRange, error) {
	start, err := ParseWhen(from, now)
	if err != nil {
		return models.DateRange{}, err
	}
	end, err := ParseWhen(to, now)
	if err != nil {
		return models.DateRange{}, err
	}
	return models.DateRange{Start: models.StartOfDay(start), End: models.DayRangeOf(end).End}, nil
}
