package storage

import (
	"encoding/json"
	"fmt"

	"mealdiary/internal/constants"
	"mealdiary/internal/models"
)

// StoreErrorKind classifies failures on the synchronous save path.
type StoreErrorKind string

const (
	EncodeFailed StoreErrorKind = "encode_failed"
	DecodeFailed StoreErrorKind = "decode_failed"
	WriteFailed  StoreErrorKind = "write_failed"
	ReadFailed   StoreErrorKind = "read_failed"
)

// StoreError is surfaced by export, import, wipe and explicit save. The
// debounced autosave path never returns one; its failures are logged and
// swallowed.
type StoreError struct {
	Kind StoreErrorKind
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Document is the persisted shape of the store. Fields are declared in
// alphabetical order so encoding/json emits keys alphabetically, which keeps
// exports of identical state byte-identical.
type Document struct {
	Insights []models.InsightItem `json:"insights"`
	Meals    []models.MealEntry   `json:"meals"`
	Snacks   []models.SnackEvent  `json:"snacks"`
	Version  int                  `json:"version"`
}

// NewDocument returns an empty document stamped with the current schema
// version. Collections are non-nil so they serialize as [] rather than null.
func NewDocument() *Document {
	return &Document{
		Insights: []models.InsightItem{},
		Meals:    []models.MealEntry{},
		Snacks:   []models.SnackEvent{},
		Version:  constants.SchemaVersion,
	}
}

// EncodeDocument serializes a document deterministically.
func EncodeDocument(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize diary document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a persisted document and checks its version stamp.
// There is no migration logic: anything but the current version fails.
func DecodeDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse diary document: %w", err)
	}
	if doc.Version != constants.SchemaVersion {
		return nil, fmt.Errorf("unsupported diary document version: %d", doc.Version)
	}
	if doc.Insights == nil {
		doc.Insights = []models.InsightItem{}
	}
	if doc.Meals == nil {
		doc.Meals = []models.MealEntry{}
	}
	if doc.Snacks == nil {
		doc.Snacks = []models.SnackEvent{}
	}
	return doc, nil
}
