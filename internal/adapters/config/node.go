package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachekey/internal/adapters/logger"
	"go.trai.ch/cachekey/internal/core/ports"
)

// NodeID is the unique identifier for the job loader Graft node.
const NodeID graft.ID = "adapter.job_loader"

func init() {
	graft.Register(graft.Node[ports.JobLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.JobLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
