package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otpsync/internal/core/domain"
)

func TestUpdatedGraphSet_DuplicatesCollapse(t *testing.T) {
	t.Parallel()

	set := domain.NewUpdatedGraphSet()
	set.Add("stockholm")
	set.Add("uppsala")
	set.Add("stockholm")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("stockholm"))
	assert.False(t, set.Contains("gotland"))
}

func TestUpdatedGraphSet_NamesSorted(t *testing.T) {
	t.Parallel()

	set := domain.NewUpdatedGraphSet()
	set.Add("uppsala")
	set.Add("gotland")
	set.Add("stockholm")

	assert.Equal(t, []string{"gotland", "stockholm", "uppsala"}, set.Names())
}

func TestUpdatedGraphSet_Empty(t *testing.T) {
	t.Parallel()

	set := domain.NewUpdatedGraphSet()
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Names())
}

func TestRunResult_Err(t *testing.T) {
	t.Parallel()

	var res domain.RunResult
	require.NoError(t, res.Err())
	assert.False(t, res.Failed())

	res.Fail()
	assert.True(t, res.Failed())
	assert.ErrorIs(t, res.Err(), domain.ErrRunHadFailures)
}

func TestRunResult_Merge(t *testing.T) {
	t.Parallel()

	var ok, failed, merged domain.RunResult
	failed.Fail()

	merged.Merge(ok)
	assert.False(t, merged.Failed())

	merged.Merge(failed)
	assert.True(t, merged.Failed())

	// Merging a clean result never clears a recorded failure.
	merged.Merge(ok)
	assert.True(t, merged.Failed())
}
