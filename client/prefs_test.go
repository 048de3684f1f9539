package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPrefs(t *testing.T) {
	p := NewMemoryPrefs()

	_, ok := p.Get("missing")
	assert.False(t, ok)

	require.NoError(t, p.Set("last_page", "3"))
	v, ok := p.Get("last_page")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	require.NoError(t, p.Delete("last_page"))
	_, ok = p.Get("last_page")
	assert.False(t, ok)
}

func TestFilePrefsPersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	p, err := NewFilePrefs(path)
	require.NoError(t, err)
	require.NoError(t, p.Set("admin_token", "abc123"))
	require.NoError(t, p.Set("services_page", "2"))

	reloaded, err := NewFilePrefs(path)
	require.NoError(t, err)

	v, ok := reloaded.Get("admin_token")
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)
	v, ok = reloaded.Get("services_page")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestFilePrefsDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	p, err := NewFilePrefs(path)
	require.NoError(t, err)
	require.NoError(t, p.Set("admin_token", "abc123"))
	require.NoError(t, p.Delete("admin_token"))

	reloaded, err := NewFilePrefs(path)
	require.NoError(t, err)
	_, ok := reloaded.Get("admin_token")
	assert.False(t, ok)
}

func TestFilePrefsMissingFileIsEmpty(t *testing.T) {
	p, err := NewFilePrefs(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	_, ok := p.Get("anything")
	assert.False(t, ok)
}
