package fetch

import (
	"context"
	"net/http"
	"time"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Prober implements ports.Prober with a header-only HTTP request.
type Prober struct {
	httpClient *http.Client
}

// NewProber creates a Prober with the default transport timeout.
func NewProber() *Prober {
	return NewProberWithTimeout(DefaultTimeout)
}

// NewProberWithTimeout creates a Prober with a custom transport timeout.
func NewProberWithTimeout(timeout time.Duration) *Prober {
	return &Prober{httpClient: &http.Client{Timeout: timeout}}
}

// NewProberWithClient creates a Prober with a custom http client (used for testing).
func NewProberWithClient(client *http.Client) *Prober {
	return &Prober{httpClient: client}
}

// WithTimeout returns a Prober whose transport is bounded by d. A
// non-positive d returns the receiver unchanged.
func (p *Prober) WithTimeout(d time.Duration) ports.Prober {
	if d <= 0 {
		return p
	}
	return NewProberWithTimeout(d)
}

// LastModified issues a HEAD request for the source URL, preserving
// its query component, and parses the Last-Modified header. The
// returned time is normalized to UTC; the remote header carries a zone
// while the cache mtime does not, so both sides of the comparison are
// pinned to UTC rather than compared naively.
func (p *Prober) LastModified(ctx context.Context, src domain.Source) (time.Time, bool, error) {
	if !src.Probeable() {
		err := zerr.With(domain.ErrProbeFailed, "scheme", src.Kind.String())
		return time.Time{}, false, zerr.Wrap(err, "source has no modification-time semantics")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, src.String(), nil)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrProbeFailed.Error())
		return time.Time{}, false, zerr.With(wrapped, "url", src.String())
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrProbeFailed.Error())
		return time.Time{}, false, zerr.With(wrapped, "url", src.String())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		failed := zerr.With(domain.ErrProbeFailed, "url", src.String())
		return time.Time{}, false, zerr.With(failed, "status", resp.StatusCode)
	}

	header := resp.Header.Get("Last-Modified")
	if header == "" {
		return time.Time{}, false, nil
	}

	t, err := http.ParseTime(header)
	if err != nil {
		// An unparsable header on a 200 response is treated like a
		// missing one: fall back to the full content comparison.
		return time.Time{}, false, nil
	}

	return t.UTC(), true, nil
}
