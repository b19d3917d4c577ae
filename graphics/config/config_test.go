package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Context.Debug)
	assert.Equal(t, "opal", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
[log]
level = "debug"

[context]
debug = false

[window]
title = "demo"
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Context.Debug)
	assert.Equal(t, "demo", cfg.Window.Title)
	// Unset fields keep their defaults.
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
}

func TestLoadBadTOML(t *testing.T) {
	_, err := Load([]byte("[log\nlevel ="))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opal.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 640\nheight = 480\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	require.NoError(t, Default().Apply())

	bad := Default()
	bad.Log.Level = "chatty"
	require.Error(t, bad.Apply())
}
