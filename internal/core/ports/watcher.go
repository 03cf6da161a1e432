package ports

import (
	"context"
	"iter"
)

// WatchOp classifies a file system event.
type WatchOp int

const (
	// OpWrite indicates a file was written.
	OpWrite WatchOp = iota
	// OpCreate indicates a file was created.
	OpCreate
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent is a single file system event.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher watches a single file for changes. It drives watch mode,
// where the sync cycle re-runs whenever the feed list is edited.
type Watcher interface {
	// Start begins watching the given file. Events are delivered until
	// the context is cancelled.
	Start(ctx context.Context, path string) error

	// Events returns an iterator of events for the watched file.
	Events() iter.Seq[WatchEvent]

	// Stop stops the watcher and releases all resources.
	Stop() error
}
