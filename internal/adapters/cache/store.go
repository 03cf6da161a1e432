// Package cache manages the on-disk graph cache and content identity checks.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.FeedStore on the local filesystem using
// streamed SHA-256 digests as the content identity check.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// EnsureGraphDir creates the cache directory for a graph if it does
// not exist yet.
func (s *Store) EnsureGraphDir(baseDir, graph string) error {
	dir := domain.GraphDir(baseDir, graph)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
		return zerr.With(wrapped, "dir", dir)
	}
	return nil
}

// Exists reports whether a cache path is present.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ModTime returns the modification time of a cached file in UTC.
func (s *Store) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat cached feed"), "path", path)
	}
	return info.ModTime().UTC(), nil
}

// Install copies the staged resource over the cache path. The content
// is written to a sibling staging file and renamed into place, so a
// failed copy never leaves a truncated payload at the cache path.
func (s *Store) Install(res ports.TempResource, path string) error {
	if _, err := res.Seek(0, io.SeekStart); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	staging, err := os.CreateTemp(filepath.Dir(path), ".staging-*")
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(wrapped, "path", path)
	}

	if _, err := io.Copy(staging, res); err != nil {
		_ = staging.Close()
		_ = os.Remove(staging.Name())
		wrapped := zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(wrapped, "path", path)
	}

	if err := staging.Close(); err != nil {
		_ = os.Remove(staging.Name())
		wrapped := zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(wrapped, "path", path)
	}

	if err := os.Chmod(staging.Name(), domain.FilePerm); err != nil {
		_ = os.Remove(staging.Name())
		wrapped := zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(wrapped, "path", path)
	}

	if err := os.Rename(staging.Name(), path); err != nil {
		_ = os.Remove(staging.Name())
		wrapped := zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(wrapped, "path", path)
	}

	return nil
}

// HashReader computes the hex SHA-256 digest of a stream.
func (s *Store) HashReader(r io.Reader) (string, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", zerr.Wrap(err, domain.ErrHashFailed.Error())
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// HashFile computes the hex SHA-256 digest of a cached file.
func (s *Store) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is constructed from the trusted cache layout
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrHashFailed.Error())
		return "", zerr.With(wrapped, "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	return s.HashReader(f)
}

// RemoveGraph deletes a graph's entire cache directory. It is only
// invoked by the rebuild phase when a build failed and half-built
// state must not be mistaken for a healthy graph.
func (s *Store) RemoveGraph(baseDir, graph string) error {
	dir := domain.GraphDir(baseDir, graph)
	if err := os.RemoveAll(dir); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrCacheRemoveFailed.Error())
		return zerr.With(wrapped, "dir", dir)
	}
	return nil
}
