package output

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachekey/internal/core/ports"
)

// NodeID is the unique identifier for the job writer Graft node.
const NodeID graft.ID = "adapter.job_writer"

func init() {
	graft.Register(graft.Node[ports.JobWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JobWriter, error) {
			return NewWriter(), nil
		},
	})
}
