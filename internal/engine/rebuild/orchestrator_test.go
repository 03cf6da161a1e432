package rebuild_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otpsync/internal/adapters/cache"
	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/otpsync/internal/core/ports/mocks"
	"go.trai.ch/otpsync/internal/engine/rebuild"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type rebuildFixture struct {
	orch     *rebuild.Orchestrator
	executor *mocks.MockExecutor
	store    *cache.Store
	opts     rebuild.Options
}

func newRebuildFixture(t *testing.T) *rebuildFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	store := cache.NewStore()

	return &rebuildFixture{
		orch:     rebuild.NewOrchestrator(executor, store, nopLogger{}),
		executor: executor,
		store:    store,
		opts: rebuild.Options{
			BaseDir: t.TempDir(),
			LogDir:  t.TempDir(),
			Command: "/usr/local/bin/otp",
		},
	}
}

func (f *rebuildFixture) seedGraph(t *testing.T, graph string) {
	t.Helper()
	require.NoError(t, f.store.EnsureGraphDir(f.opts.BaseDir, graph))
}

func updatedSet(graphs ...string) *domain.UpdatedGraphSet {
	set := domain.NewUpdatedGraphSet()
	for _, g := range graphs {
		set.Add(g)
	}
	return set
}

func TestOrchestrator_RebuildsEachGraphOnce(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	f.seedGraph(t, "stockholm")
	f.seedGraph(t, "oslo")

	// Sorted order, one invocation per graph.
	gomock.InOrder(
		f.executor.EXPECT().Execute(gomock.Any(), f.opts.Command, domain.GraphDir(f.opts.BaseDir, "oslo"), gomock.Any()).Return(nil),
		f.executor.EXPECT().Execute(gomock.Any(), f.opts.Command, domain.GraphDir(f.opts.BaseDir, "stockholm"), gomock.Any()).Return(nil),
	)

	res := f.orch.RebuildAll(context.Background(), updatedSet("stockholm", "oslo"), f.opts)
	require.NoError(t, res.Err())
}

func TestOrchestrator_EmptySetIsNoOp(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	res := f.orch.RebuildAll(context.Background(), updatedSet(), f.opts)
	require.NoError(t, res.Err())
}

func TestOrchestrator_WritesBuildLog(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	f.seedGraph(t, "stockholm")

	f.executor.EXPECT().Execute(gomock.Any(), f.opts.Command, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, output io.Writer) error {
			_, err := output.Write([]byte("graph built in 42s\n"))
			return err
		})

	res := f.orch.RebuildAll(context.Background(), updatedSet("stockholm"), f.opts)
	require.NoError(t, res.Err())

	content, err := os.ReadFile(domain.RebuildLogPath(f.opts.LogDir, "stockholm"))
	require.NoError(t, err)
	assert.Equal(t, "graph built in 42s\n", string(content))
}

func TestOrchestrator_FailedBuildRemovesGraphDir(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	f.seedGraph(t, "stockholm")

	f.executor.EXPECT().Execute(gomock.Any(), f.opts.Command, gomock.Any(), gomock.Any()).
		Return(zerr.New("build ran out of memory"))

	res := f.orch.RebuildAll(context.Background(), updatedSet("stockholm"), f.opts)
	require.Error(t, res.Err())

	_, err := os.Stat(domain.GraphDir(f.opts.BaseDir, "stockholm"))
	assert.True(t, os.IsNotExist(err))
}

func TestOrchestrator_KeepFailedGraphsPreservesDir(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	f.seedGraph(t, "stockholm")
	f.opts.KeepFailedGraphs = true

	f.executor.EXPECT().Execute(gomock.Any(), f.opts.Command, gomock.Any(), gomock.Any()).
		Return(zerr.New("build ran out of memory"))

	res := f.orch.RebuildAll(context.Background(), updatedSet("stockholm"), f.opts)
	require.Error(t, res.Err())

	_, err := os.Stat(domain.GraphDir(f.opts.BaseDir, "stockholm"))
	assert.NoError(t, err)
}

func TestOrchestrator_FailureDoesNotStopRemainingBuilds(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	f.seedGraph(t, "oslo")
	f.seedGraph(t, "stockholm")

	f.executor.EXPECT().Execute(gomock.Any(), f.opts.Command, domain.GraphDir(f.opts.BaseDir, "oslo"), gomock.Any()).
		Return(zerr.New("build failed"))
	f.executor.EXPECT().Execute(gomock.Any(), f.opts.Command, domain.GraphDir(f.opts.BaseDir, "stockholm"), gomock.Any()).
		Return(nil)

	res := f.orch.RebuildAll(context.Background(), updatedSet("oslo", "stockholm"), f.opts)
	require.Error(t, res.Err())

	// The successful graph's directory is untouched.
	_, err := os.Stat(domain.GraphDir(f.opts.BaseDir, "stockholm"))
	assert.NoError(t, err)
}

func TestOrchestrator_UnwritableLogDirPreservesGraphDir(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	f.seedGraph(t, "stockholm")
	f.opts.LogDir = filepath.Join(f.opts.LogDir, "does-not-exist")

	// No build is attempted, so the cache must survive.
	res := f.orch.RebuildAll(context.Background(), updatedSet("stockholm"), f.opts)
	require.Error(t, res.Err())

	assert.DirExists(t, domain.GraphDir(f.opts.BaseDir, "stockholm"))
}

func TestOrchestrator_CancelledContextStopsBuilds(t *testing.T) {
	t.Parallel()

	f := newRebuildFixture(t)
	f.seedGraph(t, "stockholm")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.orch.RebuildAll(ctx, updatedSet("stockholm"), f.opts)
	require.Error(t, res.Err())
}
