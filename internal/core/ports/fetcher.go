// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
	"time"

	"go.trai.ch/otpsync/internal/core/domain"
)

// TempResource is a fetched payload staged for inspection. It can be
// read, rewound and re-read (hash first, then install). The caller owns
// the resource and must Close it on every exit path; for staged
// network fetches Close also removes the staging file.
type TempResource interface {
	io.ReadSeeker
	io.Closer

	// Path returns the filesystem location of the staged content.
	Path() string
}

// Fetcher retrieves a feed source into a temporary staging location.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch retrieves the source content. Network sources are streamed
	// into a staging file; file sources are opened in place. Any
	// non-200 HTTP status, FTP protocol error or transport failure is
	// reported as an error wrapping domain.ErrFetchFailed.
	Fetch(ctx context.Context, src domain.Source) (TempResource, error)

	// WithTimeout returns a Fetcher like this one whose transport is
	// bounded by d. A non-positive d returns the receiver unchanged.
	WithTimeout(d time.Duration) Fetcher
}
