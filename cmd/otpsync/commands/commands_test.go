package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otpsync/cmd/otpsync/commands"
	"go.trai.ch/otpsync/internal/app"
	"go.trai.ch/otpsync/internal/core/domain"
)

// captureApp records the options the CLI resolved for a run.
type captureApp struct {
	opts app.Options
	err  error
}

func (a *captureApp) Run(_ context.Context, opts app.Options) error {
	a.opts = opts
	return a.err
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestSync_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	a := &captureApp{}
	_, err := execute(t, a, "sync")
	require.NoError(t, err)

	assert.Equal(t, "/var/otp", a.opts.BaseDir)
	assert.Equal(t, "/etc/gtfs-feeds.conf", a.opts.FeedList)
	assert.Equal(t, ".", a.opts.LogDir)
	assert.Empty(t, a.opts.Command)
	assert.Equal(t, 1, a.opts.Parallelism)
	assert.False(t, a.opts.ForceRebuild)
	assert.False(t, a.opts.Watch)
}

func TestSync_Flags(t *testing.T) {
	t.Chdir(t.TempDir())

	a := &captureApp{}
	_, err := execute(t, a, "sync",
		"--base-dir", "/srv/otp",
		"--feed-list", "/etc/feeds.conf",
		"--otp-command", "/usr/local/bin/otp",
		"--log-dir", "/var/log/otp",
		"--force-rebuild",
		"--keep-failed-graphs",
		"--graph", "stockholm",
		"-p", "4",
		"-w",
		"--http-timeout", "45s",
	)
	require.NoError(t, err)

	assert.Equal(t, "/srv/otp", a.opts.BaseDir)
	assert.Equal(t, "/etc/feeds.conf", a.opts.FeedList)
	assert.Equal(t, "/usr/local/bin/otp", a.opts.Command)
	assert.Equal(t, "/var/log/otp", a.opts.LogDir)
	assert.True(t, a.opts.ForceRebuild)
	assert.True(t, a.opts.KeepFailedGraphs)
	assert.Equal(t, "stockholm", a.opts.OnlyGraph)
	assert.Equal(t, 4, a.opts.Parallelism)
	assert.True(t, a.opts.Watch)
	assert.Equal(t, 45*time.Second, a.opts.HTTPTimeout)
}

func TestSync_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `baseDir: /data/otp
otpCommand: /opt/otp/bin/otp
parallelism: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Chdir(dir)

	a := &captureApp{}
	_, err := execute(t, a, "sync", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, "/data/otp", a.opts.BaseDir)
	assert.Equal(t, "/opt/otp/bin/otp", a.opts.Command)
	assert.Equal(t, 8, a.opts.Parallelism)
	// Untouched settings keep their defaults.
	assert.Equal(t, "/etc/gtfs-feeds.conf", a.opts.FeedList)
}

func TestSync_FlagBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseDir: /data/otp\nparallelism: 8\n"), 0o644))
	t.Chdir(dir)

	a := &captureApp{}
	_, err := execute(t, a, "sync", "--config", path, "--base-dir", "/override/otp")
	require.NoError(t, err)

	assert.Equal(t, "/override/otp", a.opts.BaseDir)
	// File settings without a competing flag still apply.
	assert.Equal(t, 8, a.opts.Parallelism)
}

func TestSync_ImplicitConfigFileInCwd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "otpsync.yaml"), []byte("baseDir: /data/otp\n"), 0o644))
	t.Chdir(dir)

	a := &captureApp{}
	_, err := execute(t, a, "sync")
	require.NoError(t, err)
	assert.Equal(t, "/data/otp", a.opts.BaseDir)
}

func TestSync_InvalidTimeoutInConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("httpTimeout: leisurely\n"), 0o644))
	t.Chdir(dir)

	a := &captureApp{}
	_, err := execute(t, a, "sync", "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestSync_MissingExplicitConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	a := &captureApp{}
	_, err := execute(t, a, "sync", "--config", "/nonexistent/otpsync.yaml")
	require.Error(t, err)
}

func TestSync_AppErrorPropagates(t *testing.T) {
	t.Chdir(t.TempDir())

	a := &captureApp{err: assert.AnError}
	_, err := execute(t, a, "sync")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSync_RejectsPositionalArgs(t *testing.T) {
	t.Chdir(t.TempDir())

	a := &captureApp{}
	_, err := execute(t, a, "sync", "unexpected")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, &captureApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "otpsync version")
}

func TestVersionFlag(t *testing.T) {
	t.Parallel()

	out, err := execute(t, &captureApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "otpsync version")
}
