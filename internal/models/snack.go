package models

import (
	"strings"
	"time"
)

type SnackReason string

const (
	ReasonHunger     SnackReason = "hunger"
	ReasonStress     SnackReason = "stress"
	ReasonRoutine    SnackReason = "routine"
	ReasonCraveSweet SnackReason = "crave_sweet"
)

// AllSnackReasons lists every snack reason in canonical enumeration order,
// used for deterministic tie-breaking on most-frequent lookups.
var AllSnackReasons = []SnackReason{ReasonHunger, ReasonStress, ReasonRoutine, ReasonCraveSweet}

// SnackEvent is one snack / impulse-eating record.
type SnackEvent struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	Reason      SnackReason `json:"reason"`
	HungerLevel int         `json:"hunger_level"`
	Note        string      `json:"note,omitempty"`
}

// Normalize clamps the hunger level and drops whitespace-only notes.
func (s *SnackEvent) Normalize() {
	s.HungerLevel = ClampLevel(s.HungerLevel)
	if strings.TrimSpace(s.Note) == "" {
		s.Note = ""
	}
}
