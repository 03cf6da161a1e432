package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/otpsync/internal/core/ports"
)

const (
	// FetcherNodeID is the unique identifier for the fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.fetcher"
	// ProberNodeID is the unique identifier for the prober Graft node.
	ProberNodeID graft.ID = "adapter.prober"
)

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fetcher, error) {
			return NewFetcher(), nil
		},
	})

	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prober, error) {
			return NewProber(), nil
		},
	})
}
