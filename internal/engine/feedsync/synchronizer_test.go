package feedsync_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otpsync/internal/adapters/cache"
	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports"
	"go.trai.ch/otpsync/internal/core/ports/mocks"
	"go.trai.ch/otpsync/internal/engine/feedsync"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	sync    *feedsync.Synchronizer
	fetcher *mocks.MockFetcher
	prober  *mocks.MockProber
	baseDir string
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	prober := mocks.NewMockProber(ctrl)

	return &syncFixture{
		sync:    feedsync.NewSynchronizer(fetcher, prober, cache.NewStore(), nopLogger{}),
		fetcher: fetcher,
		prober:  prober,
		baseDir: t.TempDir(),
	}
}

func fileSpec(t *testing.T, graph, feed string) domain.FeedSpec {
	t.Helper()
	src, err := domain.ParseSource(fmt.Sprintf("file:///data/%s/%s.zip", graph, feed))
	require.NoError(t, err)
	return domain.FeedSpec{Graph: graph, Feed: feed, Source: src}
}

func TestSynchronizer_CollectsUpdatedGraphs(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	specs := []domain.FeedSpec{
		fileSpec(t, "stockholm", "sl"),
		fileSpec(t, "stockholm", "waxholmsbolaget"),
		fileSpec(t, "oslo", "ruter"),
	}

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(newMemResource("payload"), nil).Times(3)

	set, res := f.sync.Sync(context.Background(), specs, feedsync.Options{BaseDir: f.baseDir})
	require.NoError(t, res.Err())
	assert.Equal(t, []string{"oslo", "stockholm"}, set.Names())
}

func TestSynchronizer_FailureIsolation(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	broken := fileSpec(t, "stockholm", "sl")
	healthy := fileSpec(t, "oslo", "ruter")

	f.fetcher.EXPECT().Fetch(gomock.Any(), broken.Source).
		Return(nil, zerr.New("connection reset"))
	f.fetcher.EXPECT().Fetch(gomock.Any(), healthy.Source).
		Return(newMemResource("payload"), nil)

	set, res := f.sync.Sync(context.Background(), []domain.FeedSpec{broken, healthy}, feedsync.Options{BaseDir: f.baseDir})

	// The healthy feed is still processed and its graph queued.
	assert.Equal(t, []string{"oslo"}, set.Names())
	require.Error(t, res.Err())
	assert.ErrorIs(t, res.Err(), domain.ErrRunHadFailures)
}

func TestSynchronizer_OnlyGraphFilter(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	specs := []domain.FeedSpec{
		fileSpec(t, "stockholm", "sl"),
		fileSpec(t, "oslo", "ruter"),
	}

	// Only the selected graph's feed is fetched at all.
	f.fetcher.EXPECT().Fetch(gomock.Any(), specs[1].Source).
		Return(newMemResource("payload"), nil)

	set, res := f.sync.Sync(context.Background(), specs, feedsync.Options{
		BaseDir:   f.baseDir,
		OnlyGraph: "oslo",
	})
	require.NoError(t, res.Err())
	assert.Equal(t, []string{"oslo"}, set.Names())
}

func TestSynchronizer_ForceMarksAllInFilter(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	specs := []domain.FeedSpec{
		fileSpec(t, "stockholm", "sl"),
		fileSpec(t, "oslo", "ruter"),
	}

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(newMemResource("payload"), nil).Times(2)

	// Seed both caches so nothing is content-stale, then force.
	set, res := f.sync.Sync(context.Background(), specs, feedsync.Options{BaseDir: f.baseDir})
	require.NoError(t, res.Err())
	require.Len(t, set.Names(), 2)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(newMemResource("payload"), nil).Times(2)

	set, res = f.sync.Sync(context.Background(), specs, feedsync.Options{
		BaseDir:      f.baseDir,
		ForceRebuild: true,
	})
	require.NoError(t, res.Err())
	assert.Equal(t, []string{"oslo", "stockholm"}, set.Names())
}

func TestSynchronizer_EmptyFeedList(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	set, res := f.sync.Sync(context.Background(), nil, feedsync.Options{BaseDir: f.baseDir})
	require.NoError(t, res.Err())
	assert.Zero(t, set.Len())
}

func TestSynchronizer_CancelledContextFlagsRun(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set, res := f.sync.Sync(ctx, []domain.FeedSpec{fileSpec(t, "stockholm", "sl")}, feedsync.Options{BaseDir: f.baseDir})
	assert.Zero(t, set.Len())
	require.Error(t, res.Err())
}

func TestSynchronizer_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	var specs []domain.FeedSpec
	for _, graph := range []string{"stockholm", "oslo", "bergen", "malmo"} {
		specs = append(specs, fileSpec(t, graph, "main"), fileSpec(t, graph, "extra"))
	}

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Source) (ports.TempResource, error) {
			return newMemResource("payload"), nil
		}).Times(len(specs))

	set, res := f.sync.Sync(context.Background(), specs, feedsync.Options{
		BaseDir:     f.baseDir,
		Parallelism: 4,
	})
	require.NoError(t, res.Err())
	assert.Equal(t, []string{"bergen", "malmo", "oslo", "stockholm"}, set.Names())
}

func TestSynchronizer_ParallelFailureIsolation(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	broken := fileSpec(t, "stockholm", "sl")
	healthy := fileSpec(t, "oslo", "ruter")

	f.fetcher.EXPECT().Fetch(gomock.Any(), broken.Source).
		Return(nil, zerr.New("connection reset"))
	f.fetcher.EXPECT().Fetch(gomock.Any(), healthy.Source).
		Return(newMemResource("payload"), nil)

	set, res := f.sync.Sync(context.Background(), []domain.FeedSpec{broken, healthy}, feedsync.Options{
		BaseDir:     f.baseDir,
		Parallelism: 2,
	})
	assert.Equal(t, []string{"oslo"}, set.Names())
	require.Error(t, res.Err())
}
