package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()
	store, err := NewStateStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStateStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "last_view", "documents"))

	value, ok, err := store.Get(ctx, "last_view")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "documents", value)
}

func TestStateStore_SetReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "one"))
	require.NoError(t, store.Set(ctx, "k", "two"))

	value, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", value)

	entries, err := store.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStateStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestStateStore_EntriesOrderedByKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "zeta", "3"))
	require.NoError(t, store.Set(ctx, "alpha", "1"))
	require.NoError(t, store.Set(ctx, "mid", "2"))

	entries, err := store.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Key)
	assert.Equal(t, "mid", entries[1].Key)
	assert.Equal(t, "zeta", entries[2].Key)
	assert.False(t, entries[0].UpdatedAt.IsZero())
}

func TestStateStore_PersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStateStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Close())

	reopened, err := NewStateStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestStateStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStateStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "state.db"), store.Path())
}
