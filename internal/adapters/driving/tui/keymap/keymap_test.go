package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_SubmitMatchesEnter(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Submit))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, km.Submit))
}

func TestDefaultKeyMap_InsertNewlineMatchesAltEnter(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, km.InsertNewline))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.InsertNewline))
}

func TestDefaultKeyMap_HelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	assert.NotEmpty(t, km.DocumentsHelp())
}
