package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdiary/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diary.json")
	s, err := Open(NewJSONBackend(path))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func mealAt(name string, at time.Time) models.MealEntry {
	return models.MealEntry{
		Date:         at,
		Name:         name,
		Type:         models.MealTypeLunch,
		SatietyLevel: 3,
		EnergyAfter:  models.EnergyMedium,
	}
}

func TestOpenWritesInitialDocument(t *testing.T) {
	_, path := newTestStore(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Meals)
	assert.Empty(t, doc.Snacks)
	assert.Empty(t, doc.Insights)
}

func TestOpenResetsUnreadableDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diary.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := Open(NewJSONBackend(path))
	require.NoError(t, err)
	defer s.Close()

	assert.Empty(t, s.Meals())
	assert.Empty(t, s.Snacks())
}

func TestAddMealAssignsIDAndSorts(t *testing.T) {
	s, _ := newTestStore(t)
	base := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	later := s.AddMeal(mealAt("Dinner", base.Add(6*time.Hour)))
	earlier := s.AddMeal(mealAt("Breakfast", base.Add(-4*time.Hour)))

	require.NotEmpty(t, later.ID)
	require.NotEmpty(t, earlier.ID)
	assert.NotEqual(t, later.ID, earlier.ID)

	all := s.Meals()
	require.Len(t, all, 2)
	assert.Equal(t, "Breakfast", all[0].Name)
	assert.Equal(t, "Dinner", all[1].Name)
}

func TestAddMealCollidingIDGetsFreshOne(t *testing.T) {
	s, _ := newTestStore(t)
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	first := s.AddMeal(mealAt("Soup", at))

	dup := mealAt("Chips", at.Add(time.Hour))
	dup.ID = first.ID
	second := s.AddMeal(dup)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, s.Meals(), 2)
}

func TestUpdateAndRemoveMeal(t *testing.T) {
	s, _ := newTestStore(t)
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	stored := s.AddMeal(mealAt("Soup", at))

	stored.Name = "Miso Soup"
	assert.True(t, s.UpdateMeal(stored))
	assert.Equal(t, "Miso Soup", s.Meals()[0].Name)

	missing := mealAt("Ghost", at)
	missing.ID = "nope"
	assert.False(t, s.UpdateMeal(missing))

	assert.True(t, s.RemoveMeal(stored.ID))
	assert.False(t, s.RemoveMeal(stored.ID))
	assert.Empty(t, s.Meals())
}

func TestSnackLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	at := time.Date(2026, 8, 19, 15, 0, 0, 0, time.UTC)

	ev := s.AddSnack(models.SnackEvent{Date: at, Reason: models.ReasonStress, HungerLevel: 9})
	require.NotEmpty(t, ev.ID)
	assert.Equal(t, 5, ev.HungerLevel)

	ev.Note = "long day"
	assert.True(t, s.UpdateSnack(ev))
	assert.Equal(t, "long day", s.Snacks()[0].Note)

	assert.True(t, s.RemoveSnack(ev.ID))
	assert.False(t, s.RemoveSnack(ev.ID))
}

func TestRangeQueries(t *testing.T) {
	s, _ := newTestStore(t)
	day := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)

	s.AddMeal(mealAt("Inside", day.Add(8*time.Hour)))
	s.AddMeal(mealAt("Outside", day.AddDate(0, 0, 2)))
	s.AddSnack(models.SnackEvent{Date: day.Add(16 * time.Hour), Reason: models.ReasonHunger, HungerLevel: 3})

	meals := s.MealsOn(day.Add(3 * time.Hour))
	require.Len(t, meals, 1)
	assert.Equal(t, "Inside", meals[0].Name)

	snacks := s.SnacksOn(day)
	assert.Len(t, snacks, 1)

	r := models.DateRange{Start: day, End: day.AddDate(0, 0, 3)}
	assert.Len(t, s.MealsInRange(r), 2)
}

func TestExportDeterministic(t *testing.T) {
	s, _ := newTestStore(t)
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	s.AddMeal(mealAt("Soup", at))
	s.AddSnack(models.SnackEvent{Date: at, Reason: models.ReasonRoutine, HungerLevel: 2})

	first, err := s.ExportData()
	require.NoError(t, err)
	second, err := s.ExportData()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestImportReplaceRoundTrip(t *testing.T) {
	src, _ := newTestStore(t)
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	src.AddMeal(mealAt("Soup", at))
	src.AddMeal(mealAt("Chips", at.Add(time.Hour)))
	src.AddSnack(models.SnackEvent{Date: at, Reason: models.ReasonCraveSweet, HungerLevel: 2})

	exported, err := src.ExportData()
	require.NoError(t, err)

	dst, _ := newTestStore(t)
	dst.AddMeal(mealAt("Leftover", at))
	require.NoError(t, dst.Import(exported, true))

	reExported, err := dst.ExportData()
	require.NoError(t, err)
	assert.Equal(t, exported, reExported)
}

func TestImportMergeAppendsNovelIDs(t *testing.T) {
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	src, _ := newTestStore(t)
	src.AddMeal(mealAt("Imported", at))
	exported, err := src.ExportData()
	require.NoError(t, err)

	dst, _ := newTestStore(t)
	dst.AddMeal(mealAt("Local", at.Add(time.Hour)))
	require.NoError(t, dst.Import(exported, false))

	all := dst.Meals()
	require.Len(t, all, 2)
	assert.Equal(t, "Imported", all[0].Name)
	assert.Equal(t, "Local", all[1].Name)
}

func TestImportMergeNeverOverwrites(t *testing.T) {
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	src, _ := newTestStore(t)
	original := src.AddMeal(mealAt("Original", at))
	exported, err := src.ExportData()
	require.NoError(t, err)

	dst, _ := newTestStore(t)
	require.NoError(t, dst.Import(exported, true))

	// mutate the record locally, then merge the old export back in
	renamed := original
	renamed.Name = "Renamed"
	require.True(t, dst.UpdateMeal(renamed))
	require.NoError(t, dst.Import(exported, false))

	all := dst.Meals()
	require.Len(t, all, 1)
	assert.Equal(t, "Renamed", all[0].Name)
}

func TestImportRejectsGarbage(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Import([]byte("not a document"), true)

	var serr *StoreError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, DecodeFailed, serr.Kind)
}

func TestWipeAll(t *testing.T) {
	s, path := newTestStore(t)
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	s.AddMeal(mealAt("Soup", at))
	s.AddSnack(models.SnackEvent{Date: at, Reason: models.ReasonHunger, HungerLevel: 3})

	require.NoError(t, s.WipeAll())
	assert.Empty(t, s.Meals())
	assert.Empty(t, s.Snacks())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Meals)
}

func TestRevisionBumpsOnMutation(t *testing.T) {
	s, _ := newTestStore(t)
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	before := s.Revision()
	stored := s.AddMeal(mealAt("Soup", at))
	assert.Greater(t, s.Revision(), before)

	mid := s.Revision()
	s.RemoveMeal(stored.ID)
	assert.Greater(t, s.Revision(), mid)
}

func TestDebouncedAutosave(t *testing.T) {
	s, path := newTestStore(t)
	s.autosaveDelay = 100 * time.Millisecond
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	s.AddMeal(mealAt("Soup", at))
	s.AddMeal(mealAt("Chips", at.Add(time.Hour)))

	// before the quiet period ends the file still holds the initial document
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Meals)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		doc, err := DecodeDocument(data)
		return err == nil && len(doc.Meals) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSaveNowSupersedesPendingAutosave(t *testing.T) {
	s, path := newTestStore(t)
	s.autosaveDelay = time.Hour
	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	s.AddMeal(mealAt("Soup", at))
	require.NoError(t, s.SaveNow())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Len(t, doc.Meals, 1)
}

func TestCloseFlushesPendingChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diary.json")
	s, err := Open(NewJSONBackend(path))
	require.NoError(t, err)
	s.autosaveDelay = time.Hour

	at := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	s.AddMeal(mealAt("Soup", at))
	require.NoError(t, s.Close())

	reopened, err := Open(NewJSONBackend(path))
	require.NoError(t, err)
	defer reopened.Close()
	assert.Len(t, reopened.Meals(), 1)
}
