// Package store persists the playback status between sessions.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is where the status is kept relative to the working directory.
const DefaultPath = ".nodal/status.json"

var _ ports.StatusStore = (*Store)(nil)

// Store implements ports.StatusStore using a JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a StatusStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load returns the saved status, or nil if the file does not exist yet.
func (s *Store) Load() (*domain.PlaybackStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read status store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	status := domain.DefaultPlaybackStatus()
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal status store"), "path", s.path)
	}
	return &status, nil
}

// Save writes status to disk, replacing any previous content.
func (s *Store) Save(status domain.PlaybackStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal status store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for status store")
	}

	// Write to a sibling file first so a crash never leaves a truncated status.
	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write status store")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.Wrap(err, "failed to replace status store")
	}
	return nil
}
