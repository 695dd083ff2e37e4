package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoader_FindsProjectConfigInCwd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(sampleConfig), 0644))
	chdir(t, dir)

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)

	assert.False(t, cfg.Default)
	_, ok := cfg.Vocabs["photocatalysis"]
	assert.True(t, ok)
}

func TestLoader_WalksUpToParentDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(sampleConfig), 0644))
	nested := filepath.Join(dir, "vocabularies", "inbox")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)

	assert.False(t, cfg.Default)
	assert.True(t, cfg.SingleVocab)
}

func TestLoader_NoProjectConfigGivesDefault(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)

	assert.True(t, cfg.Default)
	assert.Empty(t, cfg.Vocabs)
}
