package inmem

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/core/ports"
)

const (
	// ManagedNodeID is the unique identifier for the managed system Graft node.
	ManagedNodeID graft.ID = "adapter.inmem.managed"
	// ManagedDomainNodeID exposes the managed system as a ports.ManagedDomain.
	ManagedDomainNodeID graft.ID = "adapter.inmem.managed_domain"
	// NativeNodeID is the unique identifier for the native system Graft node.
	NativeNodeID graft.ID = "adapter.inmem.native"
	// NativeDomainNodeID exposes the native system as a ports.NativeDomain.
	NativeDomainNodeID graft.ID = "adapter.inmem.native_domain"
)

func init() {
	graft.Register(graft.Node[*Managed]{
		ID:        ManagedNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Managed, error) {
			return NewManaged(), nil
		},
	})

	graft.Register(graft.Node[ports.ManagedDomain]{
		ID:        ManagedDomainNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ManagedNodeID},
		Run: func(ctx context.Context) (ports.ManagedDomain, error) {
			m, err := graft.Dep[*Managed](ctx)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	})

	graft.Register(graft.Node[*Native]{
		ID:        NativeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Native, error) {
			return NewNative(), nil
		},
	})

	graft.Register(graft.Node[ports.NativeDomain]{
		ID:        NativeDomainNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NativeNodeID},
		Run: func(ctx context.Context) (ports.NativeDomain, error) {
			n, err := graft.Dep[*Native](ctx)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
	})
}
