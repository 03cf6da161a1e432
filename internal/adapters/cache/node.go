package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/otpsync/internal/core/ports"
)

// NodeID is the unique identifier for the feed store Graft node.
const NodeID graft.ID = "adapter.feed_store"

func init() {
	graft.Register(graft.Node[ports.FeedStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FeedStore, error) {
			return NewStore(), nil
		},
	})
}
