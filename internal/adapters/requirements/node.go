package requirements

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/populate/internal/core/ports"
)

// NodeID is the unique identifier for the requirements loader Graft node.
const NodeID graft.ID = "adapter.requirements"

func init() {
	graft.Register(graft.Node[ports.RequirementsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RequirementsLoader, error) {
			return NewLoader(), nil
		},
	})
}
