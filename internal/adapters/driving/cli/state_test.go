package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragbase/kbchat/internal/adapters/driven/storage/sqlite"
	"github.com/ragbase/kbchat/internal/core/domain"
)

func TestStateListCmd_WithEntries(t *testing.T) {
	cleanup := setupTestServices(nil, nil, &fakeStateReader{entries: []domain.StateEntry{
		{Key: "last_view", Value: "documents", UpdatedAt: time.Unix(1700000000, 0)},
	}})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"state", "list"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "last_view")
	assert.Contains(t, buf.String(), "documents")
}

func TestStateListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(nil, nil, &fakeStateReader{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"state", "list"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No state entries")
}

func TestStateSetGetDeleteRoundTrip(t *testing.T) {
	cleanup := setupTestServices(nil, nil, nil)
	defer cleanup()

	store, err := sqlite.NewStateStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	stateStore = store
	stateReader = store

	run := func(args ...string) (string, error) {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs(args)
		defer func() { rootCmd.SetArgs(nil) }()
		err := rootCmd.Execute()
		return buf.String(), err
	}

	out, err := run("state", "set", "theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Set theme")

	out, err = run("state", "get", "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")

	_, err = run("state", "delete", "theme")
	require.NoError(t, err)

	_, err = run("state", "get", "theme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key not found")
}

func TestStateGetCmd_NoStore(t *testing.T) {
	cleanup := setupTestServices(nil, nil, nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"state", "get", "k"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state store not available")
}
