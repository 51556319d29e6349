package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dshills/hexstorm/internal/renderer/backend"
)

func TestRunOpensFilesAndQuits(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.bin", []byte("ABCD"))
	app, b := newTestApp(t, Options{Files: []string{path}})

	b.PostEvent(key(backend.KeyRight))
	b.PostEvent(key(backend.KeyCtrlQ))

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Ctrl-Q")
	}

	doc := app.ActiveDocument()
	require.NotNil(t, doc)
	require.Equal(t, path, doc.Path)
	require.Contains(t, b.Row(1), "41 42 43 44")
}

func TestRunStopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunWithoutBackend(t *testing.T) {
	app, err := New(Options{Config: newTestConfig(), Logger: newTestLogger(t)})
	require.NoError(t, err)
	require.Error(t, app.Run(context.Background()))
}
