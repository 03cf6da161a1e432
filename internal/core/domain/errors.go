package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidFeedURL is returned when a feed URL cannot be parsed.
	ErrInvalidFeedURL = zerr.New("invalid feed URL")

	// ErrUnsupportedScheme is returned when a feed URL uses a scheme other than http, https, ftp or file.
	ErrUnsupportedScheme = zerr.New("unsupported URL scheme")

	// ErrMalformedFeedSpec is returned when a feed list record does not have 3 or 4 fields.
	ErrMalformedFeedSpec = zerr.New("malformed feed spec")

	// ErrFeedListReadFailed is returned when the feed list file cannot be opened or read.
	ErrFeedListReadFailed = zerr.New("failed to read feed list")

	// ErrFetchFailed is returned when a feed payload cannot be retrieved.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrProbeFailed is returned when the last-modified probe fails at the transport level.
	ErrProbeFailed = zerr.New("last-modified probe failed")

	// ErrCacheDirCreateFailed is returned when a graph cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create graph cache directory")

	// ErrCacheWriteFailed is returned when a fetched payload cannot be installed into the cache.
	ErrCacheWriteFailed = zerr.New("failed to update cached feed")

	// ErrCacheRemoveFailed is returned when a graph cache directory cannot be deleted.
	ErrCacheRemoveFailed = zerr.New("failed to remove graph cache directory")

	// ErrHashFailed is returned when content hashing fails.
	ErrHashFailed = zerr.New("failed to hash content")

	// ErrRebuildFailed is returned when the external rebuild command exits non-zero.
	ErrRebuildFailed = zerr.New("graph rebuild failed")

	// ErrRebuildLogCreateFailed is returned when the per-graph rebuild log file cannot be created.
	ErrRebuildLogCreateFailed = zerr.New("failed to create rebuild log file")

	// ErrMissingCommand is returned when no rebuild command is configured.
	ErrMissingCommand = zerr.New("no rebuild command configured")

	// ErrConfigReadFailed is returned when the options file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the options file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrRunHadFailures is the aggregate error surfaced as the process
	// exit status when any feed or graph failed during a run.
	ErrRunHadFailures = zerr.New("run completed with failures")
)
