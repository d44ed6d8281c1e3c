package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPath(t *testing.T, p string) {
	old := Path
	Path = p
	t.Cleanup(func() {
		Path = old
	})
}

func TestReloadConfigWritesDefault(t *testing.T) {
	p := path.Join(t.TempDir(), "scoop.yaml")
	withPath(t, p)

	c, err := reloadConfig()
	require.NoError(t, err)
	assert.Equal(t, NewDefaultMainConfig(), *c)

	_, err = os.Stat(p)
	assert.NoError(t, err)
}

func TestReloadConfigDirectoryOverlay(t *testing.T) {
	dir := t.TempDir()
	withPath(t, dir)

	require.NoError(t, os.WriteFile(path.Join(dir, "00-base.yaml"), []byte("repo:\n  port: 9001\nqr:\n  defaultSize: 256\n"), 0644))
	require.NoError(t, os.WriteFile(path.Join(dir, "10-override.yaml"), []byte("repo:\n  port: 9002\n"), 0644))

	c, err := reloadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9002, c.General.Port)
	assert.Equal(t, 256, c.QR.DefaultSize)
	assert.Equal(t, 5, c.UrlPreviews.MaxRedirects)
}

func TestReloadConfigBadYaml(t *testing.T) {
	p := path.Join(t.TempDir(), "scoop.yaml")
	withPath(t, p)
	require.NoError(t, os.WriteFile(p, []byte("repo: [not, a, map"), 0644))

	_, err := reloadConfig()
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SCOOP_PORT", "8123")
	t.Setenv("SCOOP_LOG_LEVEL", "debug")
	t.Setenv("SCOOP_METRICS_ENABLED", "true")
	t.Setenv("SCOOP_SENTRY_DSN", "https://key@sentry.example.org/1")

	c := NewDefaultMainConfig()
	require.NoError(t, applyEnvironment(&c))
	assert.Equal(t, 8123, c.General.Port)
	assert.Equal(t, "debug", c.General.LogLevel)
	assert.True(t, c.Metrics.Enabled)
	assert.True(t, c.Sentry.Enabled)
	assert.Equal(t, "https://key@sentry.example.org/1", c.Sentry.Dsn)
	assert.Equal(t, "127.0.0.1", c.General.BindAddress)
}

func TestHasWebChanged(t *testing.T) {
	a := NewDefaultMainConfig()
	b := NewDefaultMainConfig()
	assert.False(t, hasWebChanged(&a, &b))

	b.RateLimit.BurstCount = 99
	assert.True(t, hasWebChanged(&a, &b))

	b = NewDefaultMainConfig()
	b.General.Port = 1
	assert.True(t, hasWebChanged(&a, &b))
}
