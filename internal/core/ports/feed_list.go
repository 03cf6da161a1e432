package ports

import "go.trai.ch/otpsync/internal/core/domain"

// FeedListLoader parses the feed list file.
//
//go:generate mockgen -source=feed_list.go -destination=mocks/mock_feed_list.go -package=mocks
type FeedListLoader interface {
	// Load reads the feed list at path. Blank lines and lines whose
	// first field begins with '#' are ignored. Records that are not 3
	// or 4 fields wide, or whose fields fail validation, are skipped
	// and reported in malformed; the remaining records still parse.
	// err is non-nil only when the file itself cannot be read.
	Load(path string) (specs []domain.FeedSpec, malformed []error, err error)
}
