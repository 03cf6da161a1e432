// Package app implements the application layer for otpsync.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/otpsync/internal/adapters/watcher"
	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"go.trai.ch/otpsync/internal/engine/feedsync"
	"go.trai.ch/otpsync/internal/engine/rebuild"
)

// Options is the fully resolved settings bundle for a run. It is
// assembled by the CLI layer with flag > config file > default
// precedence before the core is invoked.
type Options struct {
	// BaseDir is the root directory for graph data.
	BaseDir string
	// FeedList is the path to the CSV feed list.
	FeedList string
	// Command is the external rebuild executable.
	Command string
	// LogDir is where per-graph rebuild logs are written.
	LogDir string
	// ForceRebuild queues every in-filter graph regardless of freshness.
	ForceRebuild bool
	// KeepFailedGraphs preserves graph directories after failed builds.
	KeepFailedGraphs bool
	// OnlyGraph restricts the run to feeds of a single graph.
	OnlyGraph string
	// Parallelism bounds concurrent feed processing.
	Parallelism int
	// Watch re-runs the cycle whenever the feed list changes.
	Watch bool
	// DebounceWindow is the quiet window applied to feed list edits in
	// watch mode. Zero means the watcher default.
	DebounceWindow time.Duration
	// HTTPTimeout overrides the default transport timeout for fetches
	// and probes. Zero keeps the built-in default.
	HTTPTimeout time.Duration
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		BaseDir:     "/var/otp",
		FeedList:    "/etc/gtfs-feeds.conf",
		LogDir:      ".",
		Parallelism: 1,
	}
}

// App wires the feed synchronizer and rebuild orchestrator behind a
// single Run entry point.
type App struct {
	loader   ports.FeedListLoader
	fetcher  ports.Fetcher
	prober   ports.Prober
	store    ports.FeedStore
	executor ports.Executor
	watcher  ports.Watcher
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.FeedListLoader,
	fetcher ports.Fetcher,
	prober ports.Prober,
	store ports.FeedStore,
	executor ports.Executor,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		loader:   loader,
		fetcher:  fetcher,
		prober:   prober,
		store:    store,
		executor: executor,
		watcher:  watcher,
		logger:   logger,
	}
}

// Run executes the sync+rebuild cycle, or keeps re-running it in watch
// mode. It returns domain.ErrRunHadFailures when any feed or graph
// failed, and the context error on interrupt.
func (a *App) Run(ctx context.Context, opts Options) error {
	if opts.Command == "" {
		return domain.ErrMissingCommand
	}

	if opts.Watch {
		return a.watch(ctx, opts)
	}
	return a.runOnce(ctx, opts)
}

// runOnce performs one complete cycle: every sync decision across all
// feeds completes before any rebuild is triggered, because several
// feeds can target the same graph and each graph builds once with the
// final merged state.
func (a *App) runOnce(ctx context.Context, opts Options) error {
	specs, malformed, err := a.loader.Load(opts.FeedList)
	if err != nil {
		return err
	}

	var res domain.RunResult
	for _, recordErr := range malformed {
		a.logger.Error(recordErr)
		res.Fail()
	}

	// Timeout resolution stays on the ports so injected
	// implementations remain in charge of their own transports.
	fetcher := a.fetcher.WithTimeout(opts.HTTPTimeout)
	prober := a.prober.WithTimeout(opts.HTTPTimeout)

	synchronizer := feedsync.NewSynchronizer(fetcher, prober, a.store, a.logger)
	set, syncRes := synchronizer.Sync(ctx, specs, feedsync.Options{
		BaseDir:      opts.BaseDir,
		ForceRebuild: opts.ForceRebuild,
		OnlyGraph:    opts.OnlyGraph,
		Parallelism:  opts.Parallelism,
	})
	res.Merge(syncRes)

	orchestrator := rebuild.NewOrchestrator(a.executor, a.store, a.logger)
	res.Merge(orchestrator.RebuildAll(ctx, set, rebuild.Options{
		BaseDir:          opts.BaseDir,
		LogDir:           opts.LogDir,
		Command:          opts.Command,
		KeepFailedGraphs: opts.KeepFailedGraphs,
	}))

	if err := ctx.Err(); err != nil {
		return err
	}
	return res.Err()
}

// watch runs one cycle immediately, then re-runs on every debounced
// edit of the feed list. Individual cycle failures are logged and
// watching continues; only context cancellation ends the loop.
func (a *App) watch(ctx context.Context, opts Options) error {
	if err := a.cycle(ctx, opts); err != nil {
		return err
	}

	window := opts.DebounceWindow
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	runCh := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(window, func() {
		select {
		case runCh <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	if err := a.watcher.Start(ctx, opts.FeedList); err != nil {
		return err
	}
	defer a.watcher.Stop() //nolint:errcheck // Best effort close in defer

	go func() {
		for range a.watcher.Events() {
			debouncer.Trigger()
		}
	}()

	a.logger.Info("watching feed list " + opts.FeedList)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-runCh:
			a.logger.Info("feed list changed, re-running sync")
			if err := a.cycle(ctx, opts); err != nil {
				return err
			}
		}
	}
}

// cycle runs one sync+rebuild pass inside watch mode. Run failures are
// logged rather than terminating the watch loop; cancellation is the
// only propagated error.
func (a *App) cycle(ctx context.Context, opts Options) error {
	if err := a.runOnce(ctx, opts); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(err, domain.ErrRunHadFailures) {
			return err
		}
		a.logger.Error(err)
	}
	return nil
}
