package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// JSONBackend mirrors the document into a single JSON file.
type JSONBackend struct {
	path string
}

func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

func (b *JSONBackend) Load() (*Document, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, &StoreError{Kind: ReadFailed, Err: err}
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, &StoreError{Kind: DecodeFailed, Err: err}
	}
	return doc, nil
}

func (b *JSONBackend) Save(doc *Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return &StoreError{Kind: EncodeFailed, Err: err}
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &StoreError{Kind: WriteFailed, Err: fmt.Errorf("failed to create config directory: %w", err)}
	}

	// Whole-file overwrite must be atomic: write a sibling temp file and
	// rename it over the document.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return &StoreError{Kind: WriteFailed, Err: err}
	}
	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return &StoreError{Kind: WriteFailed, Err: err}
	}
	return nil
}

func (b *JSONBackend) Path() string {
	return b.path
}

func (b *JSONBackend) Close() error {
	return nil
}
