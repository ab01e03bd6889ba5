package ports

import (
	"context"

	"go.trai.ch/nodal/internal/core/domain"
)

// ObjectBridge copies computed objects between the two node systems.
// Both operations are side-effecting; any failure wraps domain.ErrBridgeFailure.
//
//go:generate go run go.uber.org/mock/mockgen -source=bridge.go -destination=mocks/mock_bridge.go -package=mocks
type ObjectBridge interface {
	// PullFromNative materializes the native object at ref in the managed system.
	PullFromNative(ctx context.Context, ref domain.OutputRef) error
	// PushToNative materializes the managed object at ref in the native system.
	PushToNative(ctx context.Context, ref domain.OutputRef) error
}

// Converter translates a single object between the two systems' representations.
type Converter interface {
	// ToManaged converts a native object into its managed representation.
	ToManaged(ref domain.OutputRef, native any) (any, error)
	// ToNative converts a managed object into its native representation.
	ToNative(ref domain.OutputRef, managed any) (any, error)
}
