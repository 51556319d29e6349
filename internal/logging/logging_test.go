package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestLoggerWritesJSON(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &out

	l, err := New(cfg)
	require.NoError(t, err)

	l.Component("app").Info("opened", "path", "/tmp/x.bin")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "opened", rec["msg"])
	require.Equal(t, "app", rec["component"])
	require.Equal(t, "/tmp/x.bin", rec["path"])
	require.Empty(t, l.Path())
}

func TestLoggerLevelFilter(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = slog.LevelWarn
	cfg.Output = &out

	l, err := New(cfg)
	require.NoError(t, err)

	l.Info("hidden")
	require.Zero(t, out.Len())
}

func TestLoggerCapturesWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = &bytes.Buffer{}
	cfg.Capture = 2

	l, err := New(cfg)
	require.NoError(t, err)

	_, ok := l.Last()
	require.False(t, ok)

	l.Info("ignored")
	l.Warn("first")
	l.With("k", "v").Error("second")
	l.Error("third")

	recent := l.Recent()
	require.Len(t, recent, 2)
	require.Equal(t, "second", recent[0].Message)
	require.Equal(t, "third", recent[1].Message)

	last, ok := l.Last()
	require.True(t, ok)
	require.Equal(t, "third", last.Message)

	warn, errs := l.Counts()
	require.Equal(t, 1, warn)
	require.Equal(t, 2, errs)
}

func TestLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hexstorm.log")
	cfg := DefaultConfig()
	cfg.Path = path

	l, err := New(cfg)
	require.NoError(t, err)
	require.Equal(t, path, l.Path())

	l.Warn("saved", "bytes", 12)
	require.NoError(t, l.Close())
	require.FileExists(t, path)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	require.NoError(t, l.Close())
}
