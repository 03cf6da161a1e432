package ports

import (
	"context"
	"time"

	"go.trai.ch/otpsync/internal/core/domain"
)

// Prober obtains remote modification metadata without transferring the
// body. It applies only to http and https sources.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// LastModified issues a header-only request and parses the
	// Last-Modified response header, normalized to UTC.
	//
	// ok is false when the server answered 200 but supplied no usable
	// timestamp; that is benign and the caller falls back to a full
	// content comparison. A transport failure or non-200 status is
	// returned as an error wrapping domain.ErrProbeFailed.
	LastModified(ctx context.Context, src domain.Source) (t time.Time, ok bool, err error)

	// WithTimeout returns a Prober like this one whose transport is
	// bounded by d. A non-positive d returns the receiver unchanged.
	WithTimeout(d time.Duration) Prober
}
