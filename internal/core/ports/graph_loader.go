package ports

import "go.trai.ch/nodal/internal/core/domain"

// GraphLoader defines the interface for loading a project document.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	// Load reads the project at path and returns its nodes and playback settings.
	Load(path string) (*domain.Project, error)
}
