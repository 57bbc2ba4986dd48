// Package storage persists entity collections as JSON array files. It knows
// nothing about the business rules; each service owns one Store bound to its
// collection file.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store reads and writes a whole collection of records at a fixed path.
type Store[T any] struct {
	path string
}

// NewStore returns a store bound to the given file path. The file is not
// touched until the first Load or Save.
func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the file path the store is bound to.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the full collection. A missing file or unparseable content
// yields an empty collection, so a fresh environment starts clean instead of
// failing on startup.
func (s *Store[T]) Load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Save replaces the file with the given collection. The data is written to a
// temp file first and moved into place with rename, so a crash mid-write
// cannot corrupt the previous snapshot.
func (s *Store[T]) Save(records []T) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
