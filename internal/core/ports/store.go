package ports

import (
	"io"
	"time"
)

// FeedStore manages the on-disk graph cache and provides the content
// identity check. Content hashes are the sole authority for "did the
// content change"; modification times are only a fast pre-filter.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FeedStore interface {
	// EnsureGraphDir creates the cache directory for a graph if it
	// does not exist yet.
	EnsureGraphDir(baseDir, graph string) error

	// Exists reports whether a cache path is present.
	Exists(path string) bool

	// ModTime returns the modification time of a cached file in UTC.
	ModTime(path string) (time.Time, error)

	// Install copies staged content over the cache path with
	// copy-then-rename semantics. The resource is rewound first, so it
	// may already have been consumed by a hash pass.
	Install(res TempResource, path string) error

	// HashReader computes the content digest of a stream.
	HashReader(r io.Reader) (string, error)

	// HashFile computes the content digest of a cached file.
	HashFile(path string) (string, error)

	// RemoveGraph deletes a graph's entire cache directory.
	RemoveGraph(baseDir, graph string) error
}
