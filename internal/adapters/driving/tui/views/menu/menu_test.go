package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/messages"
)

func TestMenuView_Navigation(t *testing.T) {
	v := NewView(nil)

	assert.Equal(t, 0, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.SelectedIndex())

	// Clamped at the top
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestMenuView_SelectNavigatesToTarget(t *testing.T) {
	v := NewView(nil)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown}) // Documents
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDocuments, changed.View)
}

func TestMenuView_QuitItem(t *testing.T) {
	v := NewView(nil)

	items := v.Items()
	for range items {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, len(items)-1, v.SelectedIndex())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.Quit{}, cmd())
}

func TestMenuView_EscReturnsToChat(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewChat, changed.View)
}

func TestMenuView_RendersItems(t *testing.T) {
	v := NewView(nil)
	out := v.View()

	assert.Contains(t, out, "Chat")
	assert.Contains(t, out, "Documents")
	assert.Contains(t, out, "Diagnostics")
	assert.Contains(t, out, "Quit")
}
