package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/populate/internal/core/ports"
)

// NodeID is the unique identifier for the downloader factory Graft node.
const NodeID graft.ID = "adapter.downloader"

func init() {
	graft.Register(graft.Node[ports.DownloaderFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DownloaderFactory, error) {
			return NewFactory(), nil
		},
	})
}
