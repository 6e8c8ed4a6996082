package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_ReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "lineedit.toml", "word = \"emacs\"\n")

	l := NewLoader(path)
	t.Cleanup(func() { _ = l.Close() })

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "emacs", cfg.Word)
	assert.Same(t, cfg, l.Config())

	changed := make(chan *Config, 4)
	l.OnChange(func(c *Config) { changed <- c })
	require.NoError(t, l.Watch())

	require.NoError(t, os.WriteFile(path, []byte("word = \"vi\"\n"), 0o600))

	select {
	case c := <-changed:
		assert.Equal(t, "vi", c.Word)
		assert.Equal(t, "vi", l.Config().Word)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestLoader_InvalidReloadKeepsLastConfig(t *testing.T) {
	path := writeFile(t, "lineedit.toml", "indent_width = 3\n")

	l := NewLoader(path)
	t.Cleanup(func() { _ = l.Close() })
	_, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, l.Watch())

	require.NoError(t, os.WriteFile(path, []byte("indent_width = 0\n"), 0o600))

	select {
	case err := <-l.Errors():
		assert.Contains(t, err.Error(), "reload config")
	case <-time.After(5 * time.Second):
		t.Fatal("expected a reload error")
	}
	assert.Equal(t, 3, l.Config().IndentWidth)
}

func TestLoader_WatchWithoutPath(t *testing.T) {
	l := NewLoader("")
	t.Cleanup(func() { _ = l.Close() })
	assert.Error(t, l.Watch())

	_, err := NewLoader(filepath.Join(t.TempDir(), "missing", "x.toml")).Load()
	assert.NoError(t, err, "missing file yields defaults")
}
