package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachekey/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherFactoryNodeID is the unique identifier for the hasher factory Graft node.
	HasherFactoryNodeID graft.ID = "adapter.fs.hasher_factory"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.HasherFactory]{
		ID:        HasherFactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.HasherFactory, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(walker), nil
		},
	})
}
