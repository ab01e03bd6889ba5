// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/nodal/internal/core/domain"
)

// NodeSystem is the contract shared by both node-execution domains. Each system owns
// its nodes, their parameters and input wiring, and the objects its nodes produce.
type NodeSystem interface {
	// OwnsType reports whether the system can create nodes of nodeType.
	OwnsType(nodeType string) bool
	// OwnsNode reports whether the system holds a node called name.
	OwnsNode(name domain.NodeName) bool
	// CreateNode adds a node of nodeType under name.
	CreateNode(nodeType string, name domain.NodeName) error
	// InitNode runs the one-time initialization of a node after creation.
	InitNode(name domain.NodeName) error
	// Evaluate computes the outputs of a node and stores them as objects.
	Evaluate(ctx context.Context, name domain.NodeName) error
	// SetInput wires input key of node name to the output src.
	SetInput(name domain.NodeName, key string, src domain.OutputRef) error
	// SetParam sets parameter key of node name.
	SetParam(name domain.NodeName, key string, value any) error
	// GetObject returns the object stored under ref in this system's representation.
	GetObject(ref domain.OutputRef) (any, error)
	// SetObject stores value under ref in this system's representation.
	SetObject(ref domain.OutputRef, value any) error
	// Descriptors lists the node types this system provides.
	Descriptors() []domain.Descriptor
}

// ManagedDomain is the managed node system. It tracks the dependencies of its own
// nodes internally, so the resolver evaluates managed nodes directly.
//
//go:generate go run go.uber.org/mock/mockgen -source=node_system.go -destination=mocks/mock_node_system.go -package=mocks
type ManagedDomain interface {
	NodeSystem
}

// NativeDomain is the native node system. Its nodes declare their upstream
// requirements, which the resolver materializes before evaluation.
type NativeDomain interface {
	NodeSystem
	// Requirements returns, in order, the outputs node name consumes.
	Requirements(name domain.NodeName) ([]domain.OutputRef, error)
}
