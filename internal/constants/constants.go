package constants

import "time"

const (
	AppName           = "mealdiary"
	DefaultConfigPath = "~/.config/mealdiary/mealdiary.json"
	Version           = "v0.2.0"

	// SchemaVersion is the version stamp written into every persisted
	// document. Documents carrying any other version fail decode.
	SchemaVersion = 1

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// AutosaveDelay is the quiet period after the last mutation before the
	// store flushes to disk. Bursts of edits inside the window coalesce
	// into a single write.
	AutosaveDelay = 600 * time.Millisecond

	// Satiety and hunger levels are clamped to this range everywhere.
	MinLevel = 1
	MaxLevel = 5

	// Highlight lists (top energizing / heavy meals) are capped at this size.
	TopMealNames = 5
)
