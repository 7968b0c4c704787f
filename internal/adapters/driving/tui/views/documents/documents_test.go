package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/messages"
	"github.com/ragbase/kbchat/internal/core/domain"
)

// fakeFeed implements driving.DocumentService for testing.
type fakeFeed struct {
	docs         []domain.Document
	err          error
	refreshCalls int
}

func (f *fakeFeed) Refresh(_ context.Context) ([]domain.Document, error) {
	f.refreshCalls++
	if f.err != nil {
		return f.docs, f.err
	}
	return f.docs, nil
}

func (f *fakeFeed) Documents() []domain.Document { return f.docs }
func (f *fakeFeed) Loaded() bool                 { return len(f.docs) > 0 }

func (f *fakeFeed) DownloadURL(filename string) string {
	return "http://localhost:8000/download/" + filename
}

func (f *fakeFeed) ViewURL(filename string) string {
	return "http://localhost:8000/view/" + filename
}

// fakeActions implements driving.ActionService for testing.
type fakeActions struct {
	copied  []string
	opened  []string
	copyErr error
	openErr error
}

func (f *fakeActions) CopyText(_ context.Context, text string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copied = append(f.copied, text)
	return nil
}

func (f *fakeActions) OpenURL(_ context.Context, url string) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, url)
	return nil
}

func sampleDocs() []domain.Document {
	return []domain.Document{
		{Filename: "guide.md", LastModified: time.Unix(1700000000, 0)},
		{Filename: "policy.pdf", LastModified: time.Unix(1700000100, 0)},
		{Filename: "notes.txt"},
	}
}

func loadedView(t *testing.T, feed *fakeFeed) *View {
	t.Helper()
	v := NewView(nil, feed, &fakeActions{}, time.Second)
	v.SetDimensions(100, 30)
	v, _ = v.Update(messages.DocumentsLoaded{Documents: feed.docs, Initial: true})
	return v
}

func TestDocumentsView_InitStartsLoadAndTimer(t *testing.T) {
	feed := &fakeFeed{docs: sampleDocs()}
	v := NewView(nil, feed, &fakeActions{}, time.Second)

	cmd := v.Init()
	require.NotNil(t, cmd)
	assert.True(t, v.Loading())
}

func TestDocumentsView_InitialLoadSuccess(t *testing.T) {
	feed := &fakeFeed{docs: sampleDocs()}
	v := loadedView(t, feed)

	assert.False(t, v.Loading())
	assert.Len(t, v.Documents(), 3)
	assert.NoError(t, v.Err())
}

func TestDocumentsView_InitialLoadFailureSurfaced(t *testing.T) {
	v := NewView(nil, &fakeFeed{}, &fakeActions{}, time.Second)
	v.SetDimensions(100, 30)

	v, _ = v.Update(messages.DocumentsLoaded{Err: errors.New("boom"), Initial: true})

	assert.Error(t, v.Err())
	assert.Empty(t, v.Documents())
	assert.Contains(t, v.View(), "boom")
}

func TestDocumentsView_BackgroundFailureKeepsListing(t *testing.T) {
	feed := &fakeFeed{docs: sampleDocs()}
	v := loadedView(t, feed)

	v, _ = v.Update(messages.DocumentsLoaded{Err: errors.New("transient"), Initial: false})

	assert.NoError(t, v.Err(), "background errors are not surfaced")
	assert.Len(t, v.Documents(), 3, "previous listing is retained")
}

func TestDocumentsView_SyncTickChainsNextTick(t *testing.T) {
	feed := &fakeFeed{docs: sampleDocs()}
	v := NewView(nil, feed, &fakeActions{}, time.Second)
	v.Init()

	_, cmd := v.Update(messages.SyncTick{Gen: v.PollGen()})
	assert.NotNil(t, cmd, "a tick schedules the refresh and the next tick")
}

func TestDocumentsView_StaleTickIgnored(t *testing.T) {
	feed := &fakeFeed{docs: sampleDocs()}
	v := NewView(nil, feed, &fakeActions{}, time.Second)
	v.Init()

	_, cmd := v.Update(messages.SyncTick{Gen: v.PollGen() - 1})
	assert.Nil(t, cmd, "ticks from a superseded chain must be dropped")
}

func TestDocumentsView_Navigation(t *testing.T) {
	v := loadedView(t, &fakeFeed{docs: sampleDocs()})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, v.SelectedIndex())

	// Clamped at the end
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, v.SelectedIndex())
}

func TestDocumentsView_SelectionClampsWhenListingShrinks(t *testing.T) {
	v := loadedView(t, &fakeFeed{docs: sampleDocs()})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, v.SelectedIndex())

	v, _ = v.Update(messages.DocumentsLoaded{Documents: sampleDocs()[:1]})
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestDocumentsView_EnterOpensActionMenu(t *testing.T) {
	v := loadedView(t, &fakeFeed{docs: sampleDocs()})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, v.IsShowingMenu())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.IsShowingMenu())
}

func TestDocumentsView_CopyDownloadURL(t *testing.T) {
	actions := &fakeActions{}
	feed := &fakeFeed{docs: sampleDocs()}
	v := NewView(nil, feed, actions, time.Second)
	v.SetDimensions(100, 30)
	v, _ = v.Update(messages.DocumentsLoaded{Documents: feed.docs, Initial: true})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter}) // open menu
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter}) // first option: copy download URL

	require.Len(t, actions.copied, 1)
	assert.Equal(t, "http://localhost:8000/download/guide.md", actions.copied[0])
	assert.False(t, v.IsShowingMenu())
}

func TestDocumentsView_OpenInBrowserUsesViewURL(t *testing.T) {
	actions := &fakeActions{}
	feed := &fakeFeed{docs: sampleDocs()}
	v := NewView(nil, feed, actions, time.Second)
	v.SetDimensions(100, 30)
	v, _ = v.Update(messages.DocumentsLoaded{Documents: feed.docs, Initial: true})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, actions.opened, 1)
	assert.Equal(t, "http://localhost:8000/view/guide.md", actions.opened[0])
}

func TestDocumentsView_ReloadKey(t *testing.T) {
	feed := &fakeFeed{docs: sampleDocs()}
	v := loadedView(t, feed)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.DocumentsLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Equal(t, 1, feed.refreshCalls)
}

func TestDocumentsView_EscReturnsToMenu(t *testing.T) {
	v := loadedView(t, &fakeFeed{docs: sampleDocs()})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestDocumentsView_EmptyListing(t *testing.T) {
	v := NewView(nil, &fakeFeed{}, &fakeActions{}, time.Second)
	v.SetDimensions(100, 30)
	v, _ = v.Update(messages.DocumentsLoaded{Documents: nil, Initial: true})

	assert.Contains(t, v.View(), "No documents")
}
