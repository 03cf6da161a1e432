// Package feedlist parses the CSV feed list.
package feedlist

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.FeedListLoader for comma-separated feed lists.
type Loader struct{}

// NewLoader creates a new feed list Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the feed list at path. Records are 3 fields
// (graph, feed, feed URL) or 4 fields (plus feed info URL); lines
// starting with '#' and blank lines are ignored. A record with any
// other field count, an empty graph or feed name, or an unparsable URL
// is reported in malformed and skipped; parsing continues with the
// next record.
func (l *Loader) Load(path string) ([]domain.FeedSpec, []error, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from resolved run options
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrFeedListReadFailed.Error())
		return nil, nil, zerr.With(wrapped, "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	reader := csv.NewReader(f)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	var specs []domain.FeedSpec
	var malformed []error

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			badRecord := zerr.Wrap(err, domain.ErrMalformedFeedSpec.Error())
			malformed = append(malformed, badRecord)
			continue
		}

		spec, err := parseRecord(record)
		if err != nil {
			malformed = append(malformed, err)
			continue
		}
		specs = append(specs, spec)
	}

	return specs, malformed, nil
}

func parseRecord(record []string) (domain.FeedSpec, error) {
	if len(record) < 3 || len(record) > 4 {
		err := zerr.With(domain.ErrMalformedFeedSpec, "record", strings.Join(record, ","))
		return domain.FeedSpec{}, zerr.With(err, "fields", len(record))
	}

	graph := record[0]
	feed := record[1]
	if graph == "" || feed == "" {
		err := zerr.With(domain.ErrMalformedFeedSpec, "record", strings.Join(record, ","))
		return domain.FeedSpec{}, zerr.Wrap(err, "graph and feed names must be non-empty")
	}

	source, err := domain.ParseSource(record[2])
	if err != nil {
		return domain.FeedSpec{}, zerr.With(err, "feed", feed)
	}

	spec := domain.FeedSpec{
		Graph:  graph,
		Feed:   feed,
		Source: source,
	}

	if len(record) == 4 {
		info, err := domain.ParseSource(record[3])
		if err != nil {
			return domain.FeedSpec{}, zerr.With(err, "feed", feed)
		}
		spec.FeedInfo = &info
	}

	return spec, nil
}
