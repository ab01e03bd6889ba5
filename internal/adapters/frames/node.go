package frames

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodal/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/nodal/internal/core/ports"
)

const (
	// DirectoryNodeID is the unique identifier for the directory Graft node.
	DirectoryNodeID graft.ID = "adapter.frames.directory"
	// SourceNodeID exposes the directory as a ports.FrameSource.
	SourceNodeID graft.ID = "adapter.frames.source"
)

func init() {
	graft.Register(graft.Node[*Directory]{
		ID:        DirectoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Directory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDirectory(log), nil
		},
	})

	graft.Register(graft.Node[ports.FrameSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{DirectoryNodeID},
		Run: func(ctx context.Context) (ports.FrameSource, error) {
			d, err := graft.Dep[*Directory](ctx)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
	})
}
