// Package feedsync implements feed synchronization and change detection.
package feedsync

import (
	"context"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome is the per-feed change verdict.
type Outcome struct {
	// Mark indicates the feed's graph must be rebuilt.
	Mark bool
	// Replaced indicates new content was installed into the cache.
	Replaced bool
}

// Detector decides, per feed, whether the cached copy must be
// replaced. Modification times are a fast pre-filter; the content hash
// is the sole authority for "did the content change".
type Detector struct {
	fetcher ports.Fetcher
	prober  ports.Prober
	store   ports.FeedStore
	logger  ports.Logger
}

// NewDetector creates a Detector with the given collaborators.
func NewDetector(fetcher ports.Fetcher, prober ports.Prober, store ports.FeedStore, logger ports.Logger) *Detector {
	return &Detector{
		fetcher: fetcher,
		prober:  prober,
		store:   store,
		logger:  logger,
	}
}

// Detect runs the change check for one feed and installs new content
// when the feed is stale. Failures are logged as they occur; a non-nil
// error flags the run while the Outcome stays valid (force may have
// marked the graph before the failure). A fetch failure never touches
// the existing cache.
func (d *Detector) Detect(ctx context.Context, spec domain.FeedSpec, baseDir string, force bool) (Outcome, error) {
	out := Outcome{Mark: force}
	var firstErr error
	fail := func(err error) {
		d.logger.Error(err)
		if firstErr == nil {
			firstErr = err
		}
	}

	if force {
		d.logger.Info("force rebuild set, graph " + spec.Graph + " queued unconditionally")
	}

	// The feed info snapshot acts as a cheap freshness oracle: when it
	// is unchanged the main feed check is suppressed entirely.
	if spec.FeedInfo != nil {
		upToDate, err := d.checkFeedInfo(ctx, spec, baseDir)
		if err != nil {
			fail(err)
		} else if upToDate {
			d.logger.Info("feed info for " + spec.Feed + " is unchanged, skipping")
			return out, firstErr
		}
	}

	feedPath := domain.FeedPath(baseDir, spec.Graph, spec.Feed)

	if spec.Source.Probeable() {
		if skip := d.freshByModTime(ctx, spec, feedPath, fail); skip {
			d.logger.Info("cached copy of " + spec.Feed + " is up-to-date, skipping")
			return out, firstErr
		}
	}

	d.logger.Info("downloading feed from " + spec.Source.String())
	res, err := d.fetcher.Fetch(ctx, spec.Source)
	if err != nil {
		// The feed is left untouched for this cycle.
		fail(zerr.With(err, "feed", spec.Feed))
		return out, firstErr
	}
	defer res.Close() //nolint:errcheck // Best effort close in defer

	if !d.store.Exists(feedPath) {
		// First-time ingestion.
		if err := d.store.Install(res, feedPath); err != nil {
			fail(err)
			return out, firstErr
		}
		d.logger.Info("added new feed " + spec.Feed + " for graph " + spec.Graph)
		out.Mark = true
		out.Replaced = true
		return out, firstErr
	}

	newHash, err := d.store.HashReader(res)
	if err != nil {
		fail(err)
		return out, firstErr
	}
	oldHash, err := d.store.HashFile(feedPath)
	if err != nil {
		fail(err)
		return out, firstErr
	}

	if newHash == oldHash {
		d.logger.Info("feed " + spec.Feed + " content is unchanged")
		return out, firstErr
	}

	if err := d.store.Install(res, feedPath); err != nil {
		fail(err)
		return out, firstErr
	}
	d.logger.Info("feed " + spec.Feed + " has been updated, graph " + spec.Graph + " queued for rebuild")
	out.Mark = true
	out.Replaced = true
	return out, firstErr
}

// freshByModTime is the timestamp pre-filter: it reports true when a
// cached copy exists and its modification time is not older than the
// probed remote timestamp. Probe failures are reported through fail
// and fall through to the full content comparison.
func (d *Detector) freshByModTime(ctx context.Context, spec domain.FeedSpec, feedPath string, fail func(error)) bool {
	remote, ok, err := d.prober.LastModified(ctx, spec.Source)
	if err != nil {
		fail(zerr.With(err, "feed", spec.Feed))
		return false
	}
	if !ok || !d.store.Exists(feedPath) {
		return false
	}

	local, err := d.store.ModTime(feedPath)
	if err != nil {
		fail(err)
		return false
	}

	return !local.Before(remote)
}

// checkFeedInfo fetches the companion feed info file and compares it
// with the stored snapshot. It reports true when the snapshot is
// identical; otherwise the new snapshot is stored and the main feed
// check continues.
func (d *Detector) checkFeedInfo(ctx context.Context, spec domain.FeedSpec, baseDir string) (bool, error) {
	infoPath := domain.FeedInfoPath(baseDir, spec.Graph, spec.Feed)

	d.logger.Info("checking feed info " + spec.FeedInfo.String())
	res, err := d.fetcher.Fetch(ctx, *spec.FeedInfo)
	if err != nil {
		return false, zerr.With(err, "feed", spec.Feed)
	}
	defer res.Close() //nolint:errcheck // Best effort close in defer

	if d.store.Exists(infoPath) {
		newHash, err := d.store.HashReader(res)
		if err != nil {
			return false, err
		}
		oldHash, err := d.store.HashFile(infoPath)
		if err != nil {
			return false, err
		}
		if newHash == oldHash {
			return true, nil
		}
	}

	if err := d.store.Install(res, infoPath); err != nil {
		return false, err
	}
	return false, nil
}
