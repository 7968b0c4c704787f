package file

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("server.url", "http://old:8000"))

	var reloads atomic.Int32
	watcher := NewWatcher(store)
	watcher.OnReload(func() { reloads.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- watcher.Watch(ctx) }()

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)

	content := "[server]\nurl = \"http://new:9000\"\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	assert.Eventually(t, func() bool {
		return reloads.Load() >= 1 && store.GetString("server.url") == "http://new:9000"
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("server.url", "http://old:8000"))

	var reloads atomic.Int32
	watcher := NewWatcher(store)
	watcher.OnReload(func() { reloads.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Watch(ctx) //nolint:errcheck

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(dir+"/unrelated.txt", []byte("x"), 0600))
	time.Sleep(200 * time.Millisecond)

	assert.Zero(t, reloads.Load())
}
