// Package storage holds the canonical diary collections in memory and
// mirrors them through a pluggable document backend. All derived views
// (summaries, stats, trends, insights) are recomputed from these
// collections; the store is the only component that accepts writes.
package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mealdiary/internal/constants"
	"mealdiary/internal/logger"
	"mealdiary/internal/models"
)

// Store is the single source of truth for meals, snacks and insights.
// It is designed for one logical owner: a mutex serializes access, and the
// debounced autosave is the only asynchronous path. Every mutation bumps a
// revision counter so callers can invalidate memoized derived state.
type Store struct {
	mu      sync.Mutex
	backend Backend

	meals    []models.MealEntry
	snacks   []models.SnackEvent
	insights []models.InsightItem

	revision      uint64
	autosaveDelay time.Duration
	saveTimer     *time.Timer
}

// Open loads the store from its backend. A missing document initializes
// empty collections and writes an initial empty document. An unreadable
// document resets to empty in-memory state without failing: accepting the
// data loss is preferable to refusing to start over a corrupt file.
func Open(backend Backend) (*Store, error) {
	s := &Store{
		backend:       backend,
		autosaveDelay: constants.AutosaveDelay,
		meals:         []models.MealEntry{},
		snacks:        []models.SnackEvent{},
		insights:      []models.InsightItem{},
	}

	doc, err := backend.Load()
	switch {
	case err == nil:
		s.adopt(doc)
	case errors.Is(err, ErrNotInitialized):
		if err := s.backend.Save(s.document()); err != nil {
			return nil, err
		}
	default:
		logger.Warn("Diary document unreadable, resetting to empty", "path", backend.Path(), "error", err)
	}

	return s, nil
}

// Close flushes any pending autosave and releases the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	var saveErr error
	if s.saveTimer != nil {
		saveErr = s.saveLocked()
	}
	s.mu.Unlock()

	if err := s.backend.Close(); err != nil {
		return err
	}
	return saveErr
}

// Path returns the backend's document location.
func (s *Store) Path() string {
	return s.backend.Path()
}

// Revision returns a counter that increases on every mutation.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// AddMeal inserts a normalized copy of the entry. A colliding or missing id
// is replaced with a fresh one so an add can never overwrite an existing
// record. Returns the stored entry.
func (s *Store) AddMeal(entry models.MealEntry) models.MealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.Normalize()
	if entry.ID == "" || s.mealIndex(entry.ID) >= 0 {
		entry.ID = uuid.New().String()
	}
	s.meals = append(s.meals, entry)
	sortMealsByDate(s.meals)
	s.touchLocked()
	return entry
}

// UpdateMeal replaces the record with the entry's id. No-op returning false
// when the id is unknown.
func (s *Store) UpdateMeal(entry models.MealEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.mealIndex(entry.ID)
	if idx < 0 {
		return false
	}
	entry.Normalize()
	s.meals[idx] = entry
	sortMealsByDate(s.meals)
	s.touchLocked()
	return true
}

// RemoveMeal deletes by id. No-op returning false when the id is unknown.
func (s *Store) RemoveMeal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.mealIndex(id)
	if idx < 0 {
		return false
	}
	s.meals = append(s.meals[:idx], s.meals[idx+1:]...)
	s.touchLocked()
	return true
}

// AddSnack mirrors AddMeal for snack events.
func (s *Store) AddSnack(event models.SnackEvent) models.SnackEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.Normalize()
	if event.ID == "" || s.snackIndex(event.ID) >= 0 {
		event.ID = uuid.New().String()
	}
	s.snacks = append(s.snacks, event)
	sortSnacksByDate(s.snacks)
	s.touchLocked()
	return event
}

// UpdateSnack mirrors UpdateMeal for snack events.
func (s *Store) UpdateSnack(event models.SnackEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.snackIndex(event.ID)
	if idx < 0 {
		return false
	}
	event.Normalize()
	s.snacks[idx] = event
	sortSnacksByDate(s.snacks)
	s.touchLocked()
	return true
}

// RemoveSnack mirrors RemoveMeal for snack events.
func (s *Store) RemoveSnack(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.snackIndex(id)
	if idx < 0 {
		return false
	}
	s.snacks = append(s.snacks[:idx], s.snacks[idx+1:]...)
	s.touchLocked()
	return true
}

// AddInsight stores a generated insight. Insights sort newest first.
func (s *Store) AddInsight(item models.InsightItem) models.InsightItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" || s.insightIndex(item.ID) >= 0 {
		item.ID = uuid.New().String()
	}
	s.insights = append(s.insights, item)
	sortInsightsByDateDesc(s.insights)
	s.touchLocked()
	return item
}

// RemoveInsight deletes by id. No-op returning false when the id is unknown.
func (s *Store) RemoveInsight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.insightIndex(id)
	if idx < 0 {
		return false
	}
	s.insights = append(s.insights[:idx], s.insights[idx+1:]...)
	s.touchLocked()
	return true
}

// Meals returns a copy of all meals, sorted ascending by date.
func (s *Store) Meals() []models.MealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MealEntry, len(s.meals))
	copy(out, s.meals)
	return out
}

// Snacks returns a copy of all snacks, sorted ascending by date.
func (s *Store) Snacks() []models.SnackEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SnackEvent, len(s.snacks))
	copy(out, s.snacks)
	return out
}

// Insights returns a copy of all insights, sorted descending by date.
func (s *Store) Insights() []models.InsightItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.InsightItem, len(s.insights))
	copy(out, s.insights)
	return out
}

// MealsInRange returns meals whose date falls within r, inclusive both ends.
func (s *Store) MealsInRange(r models.DateRange) []models.MealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.MealEntry
	for _, m := range s.meals {
		if r.Contains(m.Date) {
			out = append(out, m)
		}
	}
	return out
}

// MealsOn returns the meals of day's calendar day.
func (s *Store) MealsOn(day time.Time) []models.MealEntry {
	return s.MealsInRange(models.DayRangeOf(day))
}

// SnacksInRange returns snacks whose date falls within r, inclusive both ends.
func (s *Store) SnacksInRange(r models.DateRange) []models.SnackEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.SnackEvent
	for _, sn := range s.snacks {
		if r.Contains(sn.Date) {
			out = append(out, sn)
		}
	}
	return out
}

// SnacksOn returns the snacks of day's calendar day.
func (s *Store) SnacksOn(day time.Time) []models.SnackEvent {
	return s.SnacksInRange(models.DayRangeOf(day))
}

// ExportData serializes the full store deterministically: identical
// in-memory state always produces byte-identical output.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := EncodeDocument(s.document())
	if err != nil {
		return nil, &StoreError{Kind: EncodeFailed, Err: err}
	}
	return data, nil
}

// Import replaces or merges the collections from an exported document and
// saves synchronously before returning. Merge mode only appends records
// whose id is not already present; existing records are never overwritten.
func (s *Store) Import(data []byte, replace bool) error {
	doc, err := DecodeDocument(data)
	if err != nil {
		return &StoreError{Kind: DecodeFailed, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if replace {
		s.meals = doc.Meals
		s.snacks = doc.Snacks
		s.insights = doc.Insights
	} else {
		for _, m := range doc.Meals {
			if s.mealIndex(m.ID) < 0 {
				s.meals = append(s.meals, m)
			}
		}
		for _, sn := range doc.Snacks {
			if s.snackIndex(sn.ID) < 0 {
				s.snacks = append(s.snacks, sn)
			}
		}
		for _, in := range doc.Insights {
			if s.insightIndex(in.ID) < 0 {
				s.insights = append(s.insights, in)
			}
		}
	}

	sortMealsByDate(s.meals)
	sortSnacksByDate(s.snacks)
	sortInsightsByDateDesc(s.insights)
	s.revision++
	return s.saveLocked()
}

// WipeAll clears every collection and persists immediately.
func (s *Store) WipeAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meals = []models.MealEntry{}
	s.snacks = []models.SnackEvent{}
	s.insights = []models.InsightItem{}
	s.revision++
	return s.saveLocked()
}

// SaveNow flushes synchronously, superseding any pending autosave. Callers
// needing guaranteed durability use this instead of relying on the debounce.
func (s *Store) SaveNow() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) adopt(doc *Document) {
	s.meals = doc.Meals
	s.snacks = doc.Snacks
	s.insights = doc.Insights
	sortMealsByDate(s.meals)
	sortSnacksByDate(s.snacks)
	sortInsightsByDateDesc(s.insights)
}

// touchLocked records a mutation: bump the revision and (re)arm the
// debounced autosave. A newer trigger supersedes a pending one rather than
// queueing behind it.
func (s *Store) touchLocked() {
	s.revision++
	if s.saveTimer == nil {
		s.saveTimer = time.AfterFunc(s.autosaveDelay, s.autosave)
	} else {
		s.saveTimer.Reset(s.autosaveDelay)
	}
}

// autosave is best-effort: failures are logged and swallowed, and will be
// retried implicitly by the next mutation's debounce cycle.
func (s *Store) autosave() {
	if err := s.SaveNow(); err != nil {
		logger.Warn("Autosave failed", "path", s.backend.Path(), "error", err)
	}
}

func (s *Store) saveLocked() error {
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	return s.backend.Save(s.document())
}

// document snapshots the collections into a persistable document. The
// payload is always re-derived from current state, which makes superseded
// in-flight autosaves harmless.
func (s *Store) document() *Document {
	doc := NewDocument()
	doc.Meals = append(doc.Meals, s.meals...)
	doc.Snacks = append(doc.Snacks, s.snacks...)
	doc.Insights = append(doc.Insights, s.insights...)
	return doc
}

func (s *Store) mealIndex(id string) int {
	for i, m := range s.meals {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snackIndex(id string) int {
	for i, sn := range s.snacks {
		if sn.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) insightIndex(id string) int {
	for i, in := range s.insights {
		if in.ID == id {
			return i
		}
	}
	return -1
}

func sortMealsByDate(items []models.MealEntry) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}

func sortSnacksByDate(items []models.SnackEvent) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}

func sortInsightsByDateDesc(items []models.InsightItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}
