// Package store persists restore records as a JSON file per packages directory.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RestoreStore = (*Store)(nil)

// Store implements ports.RestoreStore. Each packages root gets its own file,
// loaded on first use.
type Store struct {
	mu    sync.Mutex
	roots map[string]map[string]domain.RestoreRecord
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{roots: make(map[string]map[string]domain.RestoreRecord)}
}

func recordKey(name string) string {
	return strings.ToLower(name)
}

// Get returns the record for name under root.
func (s *Store) Get(root, name string) (*domain.RestoreRecord, error) {
	s.mu.Lock()
	records, err := s.load(root)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	rec, ok := records[recordKey(name)]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}
	if _, err := os.Stat(rec.Directory); err != nil {
		return nil, nil //nolint:nilerr // A missing directory means the package needs restoring.
	}
	return &rec, nil
}

// Put records rec under root and rewrites the root's file.
func (s *Store) Put(root string, rec domain.RestoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(root)
	if err != nil {
		return err
	}
	records[recordKey(rec.Name)] = rec
	return s.save(root, records)
}

// load returns the cached records of root, reading its file on first use.
// Callers hold the lock.
func (s *Store) load(root string) (map[string]domain.RestoreRecord, error) {
	root = filepath.Clean(root)
	if records, ok := s.roots[root]; ok {
		return records, nil
	}

	records := make(map[string]domain.RestoreRecord)
	path := filepath.Join(root, domain.RestoreFileName)

	//nolint:gosec // Path is derived from the solution's packages directory
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read restore records"), "path", path)
	case len(data) > 0:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal restore records"), "path", path)
		}
	}

	s.roots[root] = records
	return records, nil
}

func (s *Store) save(root string, records map[string]domain.RestoreRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal restore records")
	}

	if err := os.MkdirAll(root, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create packages directory")
	}

	path := filepath.Join(root, domain.RestoreFileName)
	//nolint:gosec // Path is derived from the solution's packages directory
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write restore records"), "path", path)
	}
	return nil
}
