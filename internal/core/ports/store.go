package ports

import "go.trai.ch/nodal/internal/core/domain"

// StatusStore persists the playback status between sessions.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StatusStore interface {
	// Load returns the saved status.
	// Returns nil, nil if nothing was saved yet.
	Load() (*domain.PlaybackStatus, error)

	// Save stores the status.
	Save(status domain.PlaybackStatus) error
}
