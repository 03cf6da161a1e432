package fetch_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otpsync/internal/adapters/fetch"
	"go.trai.ch/otpsync/internal/core/domain"
)

func mustSource(t *testing.T, raw string) domain.Source {
	t.Helper()
	src, err := domain.ParseSource(raw)
	require.NoError(t, err)
	return src
}

func TestFetcher_HTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("gtfs payload"))
	}))
	defer server.Close()

	fetcher := fetch.NewFetcher()
	res, err := fetcher.Fetch(context.Background(), mustSource(t, server.URL+"/feed.zip"))
	require.NoError(t, err)

	content, err := io.ReadAll(res)
	require.NoError(t, err)
	assert.Equal(t, "gtfs payload", string(content))

	// The resource is positioned at the start and can be re-read.
	_, err = res.Seek(0, io.SeekStart)
	require.NoError(t, err)
	again, err := io.ReadAll(res)
	require.NoError(t, err)
	assert.Equal(t, content, again)

	stagingPath := res.Path()
	require.NoError(t, res.Close())

	// Closing removes the staging file.
	_, err = os.Stat(stagingPath)
	assert.True(t, os.IsNotExist(err))
}

func TestFetcher_HTTPNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := fetch.NewFetcher()
	_, err := fetcher.Fetch(context.Background(), mustSource(t, server.URL+"/feed.zip"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_HTTPConnectionRefused(t *testing.T) {
	t.Parallel()

	// Bind and immediately close to get a port nothing listens on.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	fetcher := fetch.NewFetcher()
	_, err := fetcher.Fetch(context.Background(), mustSource(t, url+"/feed.zip"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_LocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "transit.zip")
	require.NoError(t, os.WriteFile(path, []byte("local feed"), 0o644))

	fetcher := fetch.NewFetcher()
	res, err := fetcher.Fetch(context.Background(), mustSource(t, "file://"+path))
	require.NoError(t, err)

	content, err := io.ReadAll(res)
	require.NoError(t, err)
	assert.Equal(t, "local feed", string(content))
	assert.Equal(t, path, res.Path())

	require.NoError(t, res.Close())

	// Closing a file source leaves the file in place.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFetcher_LocalFileMissing(t *testing.T) {
	t.Parallel()

	fetcher := fetch.NewFetcher()
	_, err := fetcher.Fetch(context.Background(), mustSource(t, "file://"+filepath.Join(t.TempDir(), "absent.zip")))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_WithTimeout(t *testing.T) {
	t.Parallel()

	fetcher := fetch.NewFetcher()

	// Non-positive durations keep the configured instance.
	assert.Same(t, fetcher, fetcher.WithTimeout(0))
	assert.Same(t, fetcher, fetcher.WithTimeout(-time.Second))

	bounded := fetcher.WithTimeout(45 * time.Second)
	assert.NotSame(t, fetcher, bounded)
}

func TestFetcher_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := fetch.NewFetcher()
	_, err := fetcher.Fetch(ctx, mustSource(t, server.URL+"/feed.zip"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
