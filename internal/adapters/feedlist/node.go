package feedlist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/otpsync/internal/core/ports"
)

// NodeID is the unique identifier for the feed list loader Graft node.
const NodeID graft.ID = "adapter.feed_list_loader"

func init() {
	graft.Register(graft.Node[ports.FeedListLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FeedListLoader, error) {
			return NewLoader(), nil
		},
	})
}
