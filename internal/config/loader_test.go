package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grmod/cli/internal/testutil"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", `
modtoolPath: /opt/gnuradio/bin/gr_modtool
copyright: ACME SDR Lab
log:
  timestamps: true
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/gnuradio/bin/gr_modtool", cfg.ModtoolPath)
	assert.Equal(t, "ACME SDR Lab", cfg.Copyright)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ModtoolPath)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "modtoolPath: /from/file\n")

	t.Setenv("GRMOD_MODTOOL", "/from/env")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ModtoolPath)
}

func TestGetConfigFile_EnvPrecedence(t *testing.T) {
	t.Setenv("GRMOD_CONFIG", "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Contains(t, paths.ConfigFile, ".grmod")
	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
}
