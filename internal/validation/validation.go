// Package validation stages meal and snack drafts and checks them before
// they are committed to the store.
package validation

import (
	"fmt"
	"strings"
	"time"

	"mealdiary/internal/constants"
	"mealdiary/internal/models"
	"mealdiary/internal/storage"
)

// ErrorKind classifies a draft validation failure.
type ErrorKind string

const (
	ErrEmptyName       ErrorKind = "empty_name"
	ErrLevelOutOfRange ErrorKind = "level_out_of_range"
	ErrNotEditing      ErrorKind = "not_editing"
	ErrRecordNotFound  ErrorKind = "record_not_found"
)

// Error is a caller-correctable validation failure, surfaced synchronously
// by add/update paths.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// MealDraft stages a meal entry before commit. Drafts are validated, not
// clamped: out-of-range input is rejected here, while the model's own
// normalization clamps whatever reaches the store.
type MealDraft struct {
	Date    time.Time
	Name    string
	Type    models.MealType
	Satiety int
	Energy  models.EnergyLevel
	Flavors []models.FlavorTag
	Notes   string
}

// Validate checks the draft's fields.
func (d *MealDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &Error{Kind: ErrEmptyName, Message: "meal name must not be empty"}
	}
	if d.Satiety < constants.MinLevel || d.Satiety > constants.MaxLevel {
		return &Error{
			Kind:    ErrLevelOutOfRange,
			Message: fmt.Sprintf("satiety level must be between %d and %d", constants.MinLevel, constants.MaxLevel),
		}
	}
	return nil
}

// Entry materializes the draft as a normalized entry without an id; the
// store assigns one on add.
func (d *MealDraft) Entry() models.MealEntry {
	entry := models.MealEntry{
		Date:         d.Date,
		Name:         d.Name,
		Type:         d.Type,
		SatietyLevel: d.Satiety,
		EnergyAfter:  d.Energy,
		FlavorTags:   d.Flavors,
		Notes:        d.Notes,
	}
	entry.Normalize()
	return entry
}

// SnackDraft stages a snack event before commit.
type SnackDraft struct {
	Date   time.Time
	Reason models.SnackReason
	Hunger int
	Note   string
}

// Validate checks the draft's fields.
func (d *SnackDraft) Validate() error {
	if d.Hunger < constants.MinLevel || d.Hunger > constants.MaxLevel {
		return &Error{
			Kind:    ErrLevelOutOfRange,
			Message: fmt.Sprintf("hunger level must be between %d and %d", constants.MinLevel, constants.MaxLevel),
		}
	}
	return nil
}

// Event materializes the draft as a normalized event without an id.
func (d *SnackDraft) Event() models.SnackEvent {
	event := models.SnackEvent{
		Date:        d.Date,
		Reason:      d.Reason,
		HungerLevel: d.Hunger,
		Note:        d.Note,
	}
	event.Normalize()
	return event
}

// MealEditor tracks an edit session over one stored entry.
type MealEditor struct {
	draft     MealDraft
	editingID string
}

// Begin loads a stored entry into the editor.
func (e *MealEditor) Begin(entry models.MealEntry) {
	e.editingID = entry.ID
	e.draft = MealDraft{
		Date:    entry.Date,
		Name:    entry.Name,
		Type:    entry.Type,
		Satiety: entry.SatietyLevel,
		Energy:  entry.EnergyAfter,
		Flavors: entry.FlavorTags,
		Notes:   entry.Notes,
	}
}

// Draft exposes the staged fields for editing.
func (e *MealEditor) Draft() *MealDraft {
	return &e.draft
}

// Editing reports whether a session is active.
func (e *MealEditor) Editing() bool {
	return e.editingID != ""
}

// Commit validates the staged draft and replaces the record it was loaded
// from. The session ends on success.
func (e *MealEditor) Commit(store *storage.Store) (models.MealEntry, error) {
	if !e.Editing() {
		return models.MealEntry{}, &Error{Kind: ErrNotEditing, Message: "no meal is being edited"}
	}
	if err := e.draft.Validate(); err != nil {
		return models.MealEntry{}, err
	}

	entry := e.draft.Entry()
	entry.ID = e.editingID
	if !store.UpdateMeal(entry) {
		return models.MealEntry{}, &Error{
			Kind:    ErrRecordNotFound,
			Message: fmt.Sprintf("meal not found: %s", e.editingID),
		}
	}

	e.editingID = ""
	e.draft = MealDraft{}
	return entry, nil
}
