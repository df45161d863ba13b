package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mealdiary/internal/constants"
	"mealdiary/internal/models"
)

// SQLiteBackend mirrors the document into a SQLite database instead of a
// JSON file. Saves rewrite the tables wholesale inside one transaction; the
// document is small enough that incremental updates are not worth the
// bookkeeping.
type SQLiteBackend struct {
	path string
	db   *sql.DB
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS meals (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	satiety_level INTEGER NOT NULL,
	energy_after TEXT NOT NULL,
	flavor_tags TEXT,
	notes TEXT
);

CREATE TABLE IF NOT EXISTS snacks (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	reason TEXT NOT NULL,
	hunger_level INTEGER NOT NULL,
	note TEXT
);

CREATE TABLE IF NOT EXISTS insights (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL
);
`

func (b *SQLiteBackend) open() (*sql.DB, error) {
	if b.db != nil {
		return b.db, nil
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	b.db = db
	return db, nil
}

func (b *SQLiteBackend) Load() (*Document, error) {
	db, err := b.open()
	if err != nil {
		return nil, &StoreError{Kind: ReadFailed, Err: err}
	}

	var version int
	if err := db.QueryRow("SELECT version FROM meta LIMIT 1").Scan(&version); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotInitialized
		}
		return nil, &StoreError{Kind: ReadFailed, Err: err}
	}
	if version != constants.SchemaVersion {
		return nil, &StoreError{Kind: DecodeFailed, Err: fmt.Errorf("unsupported diary document version: %d", version)}
	}

	doc := NewDocument()
	if err := b.loadMeals(db, doc); err != nil {
		return nil, &StoreError{Kind: DecodeFailed, Err: err}
	}
	if err := b.loadSnacks(db, doc); err != nil {
		return nil, &StoreError{Kind: DecodeFailed, Err: err}
	}
	if err := b.loadInsights(db, doc); err != nil {
		return nil, &StoreError{Kind: DecodeFailed, Err: err}
	}
	return doc, nil
}

func (b *SQLiteBackend) loadMeals(db *sql.DB, doc *Document) error {
	rows, err := db.Query("SELECT id, date, name, type, satiety_level, energy_after, flavor_tags, notes FROM meals")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var m models.MealEntry
		var date, mealType, energy string
		var flavors, notes sql.NullString
		if err := rows.Scan(&m.ID, &date, &m.Name, &mealType, &m.SatietyLevel, &energy, &flavors, &notes); err != nil {
			return err
		}
		if m.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return fmt.Errorf("invalid meal date %q: %w", date, err)
		}
		m.Type = models.MealType(mealType)
		m.EnergyAfter = models.EnergyLevel(energy)
		if flavors.Valid && flavors.String != "" {
			if err := json.Unmarshal([]byte(flavors.String), &m.FlavorTags); err != nil {
				return fmt.Errorf("invalid flavor tags for meal %s: %w", m.ID, err)
			}
		}
		if notes.Valid {
			m.Notes = notes.String
		}
		doc.Meals = append(doc.Meals, m)
	}
	return rows.Err()
}

func (b *SQLiteBackend) loadSnacks(db *sql.DB, doc *Document) error {
	rows, err := db.Query("SELECT id, date, reason, hunger_level, note FROM snacks")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.SnackEvent
		var date, reason string
		var note sql.NullString
		if err := rows.Scan(&s.ID, &date, &reason, &s.HungerLevel, &note); err != nil {
			return err
		}
		if s.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return fmt.Errorf("invalid snack date %q: %w", date, err)
		}
		s.Reason = models.SnackReason(reason)
		if note.Valid {
			s.Note = note.String
		}
		doc.Snacks = append(doc.Snacks, s)
	}
	return rows.Err()
}

func (b *SQLiteBackend) loadInsights(db *sql.DB, doc *Document) error {
	rows, err := db.Query("SELECT id, date, title, description, category FROM insights")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var in models.InsightItem
		var date, category string
		if err := rows.Scan(&in.ID, &date, &in.Title, &in.Description, &category); err != nil {
			return err
		}
		if in.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return fmt.Errorf("invalid insight date %q: %w", date, err)
		}
		in.Category = models.InsightCategory(category)
		doc.Insights = append(doc.Insights, in)
	}
	return rows.Err()
}

func (b *SQLiteBackend) Save(doc *Document) error {
	db, err := b.open()
	if err != nil {
		return &StoreError{Kind: WriteFailed, Err: err}
	}

	tx, err := db.Begin()
	if err != nil {
		return &StoreError{Kind: WriteFailed, Err: err}
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM meta", "DELETE FROM meals", "DELETE FROM snacks", "DELETE FROM insights"} {
		if _, err := tx.Exec(stmt); err != nil {
			return &StoreError{Kind: WriteFailed, Err: err}
		}
	}

	if _, err := tx.Exec("INSERT INTO meta (version) VALUES (?)", doc.Version); err != nil {
		return &StoreError{Kind: WriteFailed, Err: err}
	}

	for _, m := range doc.Meals {
		flavors, err := json.Marshal(m.FlavorTags)
		if err != nil {
			return &StoreError{Kind: EncodeFailed, Err: err}
		}
		_, err = tx.Exec(
			"INSERT INTO meals (id, date, name, type, satiety_level, energy_after, flavor_tags, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			m.ID, m.Date.Format(time.RFC3339Nano), m.Name, string(m.Type), m.SatietyLevel, string(m.EnergyAfter), string(flavors), m.Notes,
		)
		if err != nil {
			return &StoreError{Kind: WriteFailed, Err: err}
		}
	}

	for _, s := range doc.Snacks {
		_, err := tx.Exec(
			"INSERT INTO snacks (id, date, reason, hunger_level, note) VALUES (?, ?, ?, ?, ?)",
			s.ID, s.Date.Format(time.RFC3339Nano), string(s.Reason), s.HungerLevel, s.Note,
		)
		if err != nil {
			return &StoreError{Kind: WriteFailed, Err: err}
		}
	}

	for _, in := range doc.Insights {
		_, err := tx.Exec(
			"INSERT INTO insights (id, date, title, description, category) VALUES (?, ?, ?, ?, ?)",
			in.ID, in.Date.Format(time.RFC3339Nano), in.Title, in.Description, string(in.Category),
		)
		if err != nil {
			return &StoreError{Kind: WriteFailed, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Kind: WriteFailed, Err: err}
	}
	return nil
}

func (b *SQLiteBackend) Path() string {
	return b.path
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
