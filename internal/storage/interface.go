package storage

import "errors"

// ErrNotInitialized signals that no diary document exists yet at the
// backend's location.
var ErrNotInitialized = errors.New("storage not initialized")

// Backend persists the diary document as a whole. The store above it owns
// all semantics (ids, sort order, debounce, import/export); a backend only
// loads and saves complete documents.
type Backend interface {
	Load() (*Document, error)
	Save(*Document) error
	Path() string
	Close() error
}
