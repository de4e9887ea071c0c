package transform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachekey/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the descriptor builder Graft node.
const NodeID graft.ID = "engine.transform.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.MetricsNodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			metrics, err := graft.Dep[*telemetry.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(metrics), nil
		},
	})
}
