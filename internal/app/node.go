package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/otpsync/internal/adapters/cache"
	"go.trai.ch/otpsync/internal/adapters/feedlist"
	"go.trai.ch/otpsync/internal/adapters/fetch"
	"go.trai.ch/otpsync/internal/adapters/logger"
	"go.trai.ch/otpsync/internal/adapters/shell"
	"go.trai.ch/otpsync/internal/adapters/watcher"
	"go.trai.ch/otpsync/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			feedlist.NodeID,
			fetch.FetcherNodeID,
			fetch.ProberNodeID,
			cache.NodeID,
			shell.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.FeedListLoader](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.FeedStore](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, fetcher, prober, store, executor, fileWatcher, log),
				Logger: log,
			}, nil
		},
	})
}
