package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, "user.tags", cfg.Attribute())
	assert.False(t, cfg.FindLiteral())
	assert.False(t, cfg.IsSet("tags.attribute"))
}

func TestSetGet(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.Set("tags.attribute", "user.labels"))
	v, err := cfg.Get("tags.attribute")
	require.NoError(t, err)
	assert.Equal(t, "user.labels", v)

	require.NoError(t, cfg.Set("find.literal", "TRUE"))
	assert.True(t, cfg.FindLiteral())
	assert.True(t, cfg.IsSet("find.literal"))

	assert.ErrorIs(t, cfg.Set("find.literal", "yes"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("tags.attribute", ""), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("nope", "x"), ErrUnknownKey)

	_, err = cfg.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)

	all := cfg.All()
	assert.Len(t, all, len(ValidKeys()))
	for _, k := range ValidKeys() {
		assert.True(t, IsValidKey(k))
		assert.Contains(t, all, k)
	}
}

func TestSaveAndLoad(t *testing.T) {
	home, _ := isolate(t)

	t.Run("global", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		require.NoError(t, cfg.Set("author.name", "Tester"))
		require.NoError(t, cfg.Save())

		assert.FileExists(t, filepath.Join(home, Dir, "config.yaml"))

		again, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "Tester", again.Author.Name)
	})

	t.Run("local takes precedence", func(t *testing.T) {
		local, err := LoadScope(ScopeLocal)
		require.NoError(t, err)
		require.NoError(t, local.Set("tags.attribute", "user.local"))
		require.NoError(t, local.Save())

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ScopeLocal, cfg.Scope())
		assert.Equal(t, "user.local", cfg.Attribute())
		assert.Empty(t, cfg.Author.Name)
	})
}

func TestLoadErrors(t *testing.T) {
	_, work := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(work, Dir), 0755))

	t.Run("malformed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(LocalPath(), []byte("tags: [unclosed"), 0644))
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed config file")
	})

	t.Run("invalid value", func(t *testing.T) {
		require.NoError(t, os.WriteFile(LocalPath(), []byte("tags:\n  attribute: \"has space\"\n"), 0644))
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}
