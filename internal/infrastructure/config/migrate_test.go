package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_NoFile(t *testing.T) {
	isolate(t)

	result, err := NewMigrator().CheckMigration()
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, result.NeedsMigration())
}

func TestMigrator_CompleteFileNeedsNothing(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), filepath.Join(dir, "config.toml")))

	result, err := NewMigrator().CheckMigration()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.NeedsMigration())
	assert.Empty(t, result.UnknownKeys)
}

func TestMigrator_FillsMissingKeys(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[workspace]
default_orientation = "vertical"

[legacy]
pane_url = "about:blank"
`)

	migrator := NewMigrator()
	result, err := migrator.CheckMigration()
	require.NoError(t, err)
	assert.True(t, result.NeedsMigration())
	assert.Contains(t, result.MissingKeys, "workspace.surface_width")
	assert.Contains(t, result.MissingKeys, "logging.level")
	assert.NotContains(t, result.MissingKeys, "workspace.default_orientation")
	assert.Equal(t, []string{"legacy.pane_url"}, result.UnknownKeys)

	added, err := migrator.Migrate()
	require.NoError(t, err)
	assert.Equal(t, result.MissingKeys, added)

	after, err := migrator.CheckMigration()
	require.NoError(t, err)
	assert.False(t, after.NeedsMigration())
	assert.Empty(t, after.UnknownKeys)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, SplitVertical, mgr.Get().Workspace.DefaultOrientation)
}
