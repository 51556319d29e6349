package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "hexstorm version dev")
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	t.Setenv("HEXSTORM_LOG_LEVEL", "")
	os.Unsetenv("HEXSTORM_LOG_LEVEL")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--log-level", "debug", "--log-file", "/tmp/x.log", "-R"}))

	f := flags{configPath: path, logLevel: "debug", logFile: "/tmp/x.log", readOnly: true}
	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/x.log", cfg.Log.File)
	require.True(t, cfg.Editor.ReadOnly)
	require.Equal(t, path, cfg.Path)
}

func TestLoadConfigKeepsFileLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	t.Setenv("HEXSTORM_LOG_LEVEL", "")
	os.Unsetenv("HEXSTORM_LOG_LEVEL")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))

	cfg, err := loadConfig(cmd, flags{configPath: path})
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, cfg.Editor.ReadOnly)
}

func TestInvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "--log-level", "loud"})

	require.Error(t, cmd.Execute())
}
