package feedsync

import (
	"context"
	"sync"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Options are the run-scoped settings for one sync pass.
type Options struct {
	// BaseDir is the root of the graph cache layout.
	BaseDir string
	// ForceRebuild queues every in-filter graph for rebuild regardless
	// of content freshness.
	ForceRebuild bool
	// OnlyGraph, when set, restricts processing to feeds of a single
	// graph. Used to bootstrap a newly added feed without touching the
	// rest.
	OnlyGraph string
	// Parallelism bounds concurrent feed processing. Values below 1
	// are treated as sequential.
	Parallelism int
}

// Synchronizer iterates the feed list, applies the change detector per
// feed and accumulates the set of graphs requiring rebuild. One feed's
// failure never stops processing of subsequent feeds.
type Synchronizer struct {
	detector *Detector
	store    ports.FeedStore
	logger   ports.Logger
}

// NewSynchronizer creates a Synchronizer with the given collaborators.
func NewSynchronizer(fetcher ports.Fetcher, prober ports.Prober, store ports.FeedStore, logger ports.Logger) *Synchronizer {
	return &Synchronizer{
		detector: NewDetector(fetcher, prober, store, logger),
		store:    store,
		logger:   logger,
	}
}

// Sync processes all feed specs and returns the set of graphs whose
// data changed together with the run outcome. The returned set is
// complete before any caller may start rebuilding: with parallel
// processing the group wait is the rendezvous barrier, and writes to a
// graph's cache directory are serialized across feeds of that graph.
func (s *Synchronizer) Sync(ctx context.Context, specs []domain.FeedSpec, opts Options) (*domain.UpdatedGraphSet, domain.RunResult) {
	set := domain.NewUpdatedGraphSet()
	var res domain.RunResult

	if opts.Parallelism > 1 {
		s.syncParallel(ctx, specs, opts, set, &res)
		return set, res
	}

	for i := range specs {
		if ctx.Err() != nil {
			res.Fail()
			break
		}
		s.syncOne(ctx, specs[i], opts, set, &res)
	}

	return set, res
}

func (s *Synchronizer) syncParallel(
	ctx context.Context,
	specs []domain.FeedSpec,
	opts Options,
	set *domain.UpdatedGraphSet,
	res *domain.RunResult,
) {
	// One lock per graph: multiple feeds may target the same cache
	// directory and their writes must not interleave.
	graphLocks := make(map[string]*sync.Mutex, len(specs))
	for i := range specs {
		if _, ok := graphLocks[specs[i].Graph]; !ok {
			graphLocks[specs[i].Graph] = &sync.Mutex{}
		}
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for i := range specs {
		spec := specs[i]
		g.Go(func() error {
			if ctx.Err() != nil {
				mu.Lock()
				res.Fail()
				mu.Unlock()
				return nil
			}

			lock := graphLocks[spec.Graph]
			lock.Lock()
			defer lock.Unlock()

			var local domain.RunResult
			localSet := domain.NewUpdatedGraphSet()
			s.syncOne(ctx, spec, opts, localSet, &local)

			mu.Lock()
			defer mu.Unlock()
			res.Merge(local)
			for _, graph := range localSet.Names() {
				set.Add(graph)
			}
			return nil
		})
	}

	// Failures are folded into res per feed, so the only wait error
	// would be a context cancellation already recorded above.
	_ = g.Wait()
}

// syncOne processes a single feed row. Errors are isolated here: they
// flag the result and the caller moves on to the next feed.
func (s *Synchronizer) syncOne(
	ctx context.Context,
	spec domain.FeedSpec,
	opts Options,
	set *domain.UpdatedGraphSet,
	res *domain.RunResult,
) {
	if opts.OnlyGraph != "" && spec.Graph != opts.OnlyGraph {
		return
	}

	s.logger.Info("processing feed " + spec.Feed + " for graph " + spec.Graph)

	if err := s.store.EnsureGraphDir(opts.BaseDir, spec.Graph); err != nil {
		s.logger.Error(err)
		res.Fail()
		return
	}

	out, err := s.detector.Detect(ctx, spec, opts.BaseDir, opts.ForceRebuild)
	if err != nil {
		// Already logged by the detector.
		res.Fail()
	}
	if out.Mark {
		set.Add(spec.Graph)
	}
}
