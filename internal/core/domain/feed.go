// Package domain holds the core types for feed synchronization.
package domain

import (
	"net/url"
	"strings"

	"go.trai.ch/zerr"
)

// SourceKind classifies a feed URL by its transport.
type SourceKind int

const (
	// HTTPKind covers http and https URLs. Only these carry
	// last-modified semantics and can be probed.
	HTTPKind SourceKind = iota
	// FTPKind covers ftp URLs.
	FTPKind
	// FileKind covers file URLs pointing at the local filesystem.
	FileKind
)

// String returns the kind as a scheme-like label.
func (k SourceKind) String() string {
	switch k {
	case HTTPKind:
		return "http"
	case FTPKind:
		return "ftp"
	case FileKind:
		return "file"
	default:
		return "unknown"
	}
}

// Source is a feed location with its scheme resolved once at parse
// time, so scheme branching never leaks into the sync loop.
type Source struct {
	Kind SourceKind
	URL  *url.URL
}

// ParseSource parses a raw URL and classifies its scheme.
func ParseSource(raw string) (Source, error) {
	u, err := url.Parse(raw)
	if err != nil {
		wrapped := zerr.Wrap(err, ErrInvalidFeedURL.Error())
		return Source{}, zerr.With(wrapped, "url", raw)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return Source{Kind: HTTPKind, URL: u}, nil
	case "ftp":
		return Source{Kind: FTPKind, URL: u}, nil
	case "file":
		return Source{Kind: FileKind, URL: u}, nil
	default:
		unsupported := zerr.With(ErrUnsupportedScheme, "url", raw)
		return Source{}, zerr.With(unsupported, "scheme", u.Scheme)
	}
}

// Probeable reports whether the source has last-modified semantics.
// Only http and https servers answer HEAD requests; ftp and file
// sources fall through directly to a full content fetch.
func (s Source) Probeable() bool {
	return s.Kind == HTTPKind
}

// LocalPath returns the filesystem path for file sources.
func (s Source) LocalPath() string {
	if s.URL.Path != "" {
		return s.URL.Path
	}
	return s.URL.Opaque
}

// String returns the source as a URL string.
func (s Source) String() string {
	return s.URL.String()
}

// FeedSpec is one row of the feed list. Immutable once parsed.
type FeedSpec struct {
	// Graph names the routing graph this feed belongs to.
	Graph string
	// Feed names the feed within the graph; cache files derive from it.
	Feed string
	// Source is where the feed payload is fetched from.
	Source Source
	// FeedInfo optionally points at a companion feed_info.txt used as a
	// cheap freshness oracle. Nil when the feed list row had no fourth
	// field.
	FeedInfo *Source
}
