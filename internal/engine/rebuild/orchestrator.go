// Package rebuild triggers the external build command for updated graphs.
package rebuild

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options are the run-scoped settings for the rebuild phase.
type Options struct {
	// BaseDir is the root of the graph cache layout.
	BaseDir string
	// LogDir is where per-graph rebuild logs are written.
	LogDir string
	// Command is the external rebuild executable.
	Command string
	// KeepFailedGraphs preserves a graph's cache directory after a
	// failed rebuild instead of deleting it.
	KeepFailedGraphs bool
}

// Orchestrator consumes the updated graph set produced by the
// synchronizer and invokes the rebuild command once per graph.
type Orchestrator struct {
	executor ports.Executor
	store    ports.FeedStore
	logger   ports.Logger
}

// NewOrchestrator creates an Orchestrator with the given collaborators.
func NewOrchestrator(executor ports.Executor, store ports.FeedStore, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		executor: executor,
		store:    store,
		logger:   logger,
	}
}

// RebuildAll rebuilds every graph in the set, in sorted order. A
// failed build flags the run and, unless KeepFailedGraphs is set,
// deletes the graph's cache directory so a half-built graph is never
// mistaken for a healthy one. Remaining graphs still build.
func (o *Orchestrator) RebuildAll(ctx context.Context, set *domain.UpdatedGraphSet, opts Options) domain.RunResult {
	var res domain.RunResult

	if set.Len() == 0 {
		o.logger.Info("no graphs need rebuilding")
		return res
	}

	for _, graph := range set.Names() {
		if ctx.Err() != nil {
			res.Fail()
			break
		}

		if err := o.rebuild(ctx, graph, opts); err != nil {
			o.logger.Error(err)
			res.Fail()
			// Only a failed build invalidates the cache. A local failure
			// before the command ran, like an unwritable log dir, leaves
			// the graph directory alone.
			if !errors.Is(err, domain.ErrRebuildLogCreateFailed) {
				o.cleanup(graph, opts, &res)
			}
			continue
		}
		o.logger.Info("graph " + graph + " rebuilt")
	}

	return res
}

func (o *Orchestrator) rebuild(ctx context.Context, graph string, opts Options) error {
	logPath := domain.RebuildLogPath(opts.LogDir, graph)
	logFile, err := os.Create(logPath) //nolint:gosec // Path is constructed from the configured log dir
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrRebuildLogCreateFailed.Error())
		return zerr.With(wrapped, "path", logPath)
	}
	defer logFile.Close() //nolint:errcheck // Best effort close in defer

	graphDir := domain.GraphDir(opts.BaseDir, graph)
	o.logger.Info("rebuilding graph " + graph + " from " + graphDir)

	if err := o.executor.Execute(ctx, opts.Command, graphDir, logFile); err != nil {
		return zerr.With(err, "graph", graph)
	}
	return nil
}

func (o *Orchestrator) cleanup(graph string, opts Options, res *domain.RunResult) {
	if opts.KeepFailedGraphs {
		o.logger.Warn("keeping failed graph directory for " + graph)
		return
	}

	if err := o.store.RemoveGraph(opts.BaseDir, graph); err != nil {
		o.logger.Error(err)
		res.Fail()
		return
	}
	o.logger.Warn("removed graph directory for failed build of " + graph)
}
