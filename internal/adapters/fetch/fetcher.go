// Package fetch retrieves feed payloads over http, ftp and from local files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jlaffaye/ftp"
	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultTimeout bounds a single fetch or probe. The transport
	// should never hang a run indefinitely; it is overridable through
	// the run options.
	DefaultTimeout = 30 * time.Second

	ftpDefaultPort = "21"
	anonymousUser  = "anonymous"
)

// Fetcher implements ports.Fetcher with scheme dispatch decided by the
// parsed domain.Source variant.
type Fetcher struct {
	httpClient *http.Client
	ftpTimeout time.Duration
}

// NewFetcher creates a Fetcher with the default transport timeout.
func NewFetcher() *Fetcher {
	return NewFetcherWithTimeout(DefaultTimeout)
}

// NewFetcherWithTimeout creates a Fetcher with a custom transport timeout.
func NewFetcherWithTimeout(timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		ftpTimeout: timeout,
	}
}

// NewFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{
		httpClient: client,
		ftpTimeout: DefaultTimeout,
	}
}

// WithTimeout returns a Fetcher whose transports are bounded by d. A
// non-positive d returns the receiver unchanged.
func (f *Fetcher) WithTimeout(d time.Duration) ports.Fetcher {
	if d <= 0 {
		return f
	}
	return NewFetcherWithTimeout(d)
}

// Fetch retrieves the source into a temporary resource. The caller
// must Close the resource on all exit paths.
func (f *Fetcher) Fetch(ctx context.Context, src domain.Source) (ports.TempResource, error) {
	switch src.Kind {
	case domain.FileKind:
		return f.openLocal(src)
	case domain.HTTPKind:
		return f.fetchHTTP(ctx, src)
	case domain.FTPKind:
		return f.fetchFTP(ctx, src)
	default:
		return nil, zerr.With(domain.ErrUnsupportedScheme, "kind", src.Kind.String())
	}
}

// openLocal opens a file source directly. No staging copy is made;
// closing the resource leaves the file in place.
func (f *Fetcher) openLocal(src domain.Source) (ports.TempResource, error) {
	file, err := os.Open(src.LocalPath()) //nolint:gosec // Path comes from the configured feed list
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		return nil, zerr.With(wrapped, "path", src.LocalPath())
	}
	return &localFile{File: file}, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, src domain.Source) (ports.TempResource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.String(), nil)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		return nil, zerr.With(wrapped, "url", src.String())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		return nil, zerr.With(wrapped, "url", src.String())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		failed := zerr.With(domain.ErrFetchFailed, "url", src.String())
		return nil, zerr.With(failed, "status", resp.StatusCode)
	}

	return stage(resp.Body, src)
}

func (f *Fetcher) fetchFTP(ctx context.Context, src domain.Source) (ports.TempResource, error) {
	addr := src.URL.Host
	if src.URL.Port() == "" {
		addr = net.JoinHostPort(src.URL.Hostname(), ftpDefaultPort)
	}

	conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(f.ftpTimeout))
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		return nil, zerr.With(wrapped, "url", src.String())
	}
	defer conn.Quit() //nolint:errcheck // Best effort close in defer

	user, pass := ftpCredentials(src)
	if err := conn.Login(user, pass); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		return nil, zerr.With(wrapped, "url", src.String())
	}

	body, err := conn.Retr(src.URL.Path)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		return nil, zerr.With(wrapped, "url", src.String())
	}
	defer body.Close() //nolint:errcheck // Best effort close in defer

	return stage(body, src)
}

// ftpCredentials returns the credentials embedded in the URL, falling
// back to anonymous login.
func ftpCredentials(src domain.Source) (user, pass string) {
	user = anonymousUser
	pass = anonymousUser
	if src.URL.User != nil {
		user = src.URL.User.Username()
		if p, ok := src.URL.User.Password(); ok {
			pass = p
		}
	}
	return user, pass
}

// stage streams a body into a staging file named from a hash of the
// source URL, rewound to the start.
func stage(r io.Reader, src domain.Source) (*stagedFile, error) {
	pattern := fmt.Sprintf("otpsync-%016x-*", xxhash.Sum64String(src.String()))
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		wrapped := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		return nil, zerr.With(wrapped, "url", src.String())
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	return &stagedFile{File: tmp}, nil
}

// stagedFile is a TempResource backed by a staging file that is
// removed on Close.
type stagedFile struct {
	*os.File
}

// Path returns the staging file location.
func (s *stagedFile) Path() string {
	return s.Name()
}

// Close closes and removes the staging file.
func (s *stagedFile) Close() error {
	closeErr := s.File.Close()
	if err := os.Remove(s.Name()); err != nil && closeErr == nil {
		return err
	}
	return closeErr
}

// localFile is a TempResource backed by a read-only handle on a local
// file. Close leaves the file in place.
type localFile struct {
	*os.File
}

// Path returns the local file location.
func (l *localFile) Path() string {
	return l.Name()
}
