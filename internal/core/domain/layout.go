package domain

import "path/filepath"

const (
	// GraphsDirName is the directory under the base dir holding one
	// cache directory per graph.
	GraphsDirName = "graphs"

	// FeedSuffix is the filename suffix for cached feed payloads.
	FeedSuffix = ".zip"

	// FeedInfoSuffix is the filename suffix for cached feed info snapshots.
	FeedInfoSuffix = "_feed_info.txt"

	// RebuildLogPrefix is the filename prefix for per-graph rebuild logs.
	RebuildLogPrefix = "otp-build-"

	// ConfigFileName is the name of the optional options file.
	ConfigFileName = "otpsync.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// GraphDir returns the cache directory for a graph.
func GraphDir(baseDir, graph string) string {
	return filepath.Join(baseDir, GraphsDirName, graph)
}

// FeedPath returns the cache path for a feed payload.
func FeedPath(baseDir, graph, feed string) string {
	return filepath.Join(GraphDir(baseDir, graph), feed+FeedSuffix)
}

// FeedInfoPath returns the cache path for a feed info snapshot.
func FeedInfoPath(baseDir, graph, feed string) string {
	return filepath.Join(GraphDir(baseDir, graph), feed+FeedInfoSuffix)
}

// RebuildLogPath returns the log file path for a graph rebuild.
func RebuildLogPath(logDir, graph string) string {
	return filepath.Join(logDir, RebuildLogPrefix+graph+".log")
}
