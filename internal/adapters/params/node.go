package params

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachekey/internal/core/ports"
)

// NodeID is the unique identifier for the parameter loader Graft node.
const NodeID graft.ID = "adapter.params_loader"

func init() {
	graft.Register(graft.Node[ports.ParameterLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ParameterLoader, error) {
			return NewLoader(), nil
		},
	})
}
