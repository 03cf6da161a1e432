package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/otpsync/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	t.Parallel()

	base := filepath.Join("/var", "otp")

	assert.Equal(t, "/var/otp/graphs/stockholm", domain.GraphDir(base, "stockholm"))
	assert.Equal(t, "/var/otp/graphs/stockholm/sl.zip", domain.FeedPath(base, "stockholm", "sl"))
	assert.Equal(t, "/var/otp/graphs/stockholm/sl_feed_info.txt", domain.FeedInfoPath(base, "stockholm", "sl"))
}

func TestRebuildLogPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/var/log/otp-build-stockholm.log", domain.RebuildLogPath("/var/log", "stockholm"))
	assert.Equal(t, "otp-build-uppsala.log", domain.RebuildLogPath("", "uppsala"))
}
