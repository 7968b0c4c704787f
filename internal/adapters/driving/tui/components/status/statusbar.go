// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/keymap"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateError      State = "error"
	StateSyncing    State = "syncing"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	docCount int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := b.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state or message side of the bar.
func (b *Bar) renderLeft() string {
	switch b.state {
	case StateSubmitting:
		return b.styles.Muted.Render("Thinking...")
	case StateSyncing:
		return b.styles.Muted.Render("Syncing documents...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Error.Render("Error")
	case StateReady:
		if b.message != "" {
			return b.styles.Normal.Render(b.message)
		}
		if b.docCount > 0 {
			return b.styles.Normal.Render(fmt.Sprintf("%d documents", b.docCount))
		}
		return b.styles.Muted.Render("Ready")
	}
	return b.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.state == StateReady && b.docCount > 0 {
		bindings = b.keymap.DocumentsHelp()
	} else {
		bindings = b.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, bd := range bindings {
		h := bd.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets a custom message.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetDocCount sets the document count hint.
func (b *Bar) SetDocCount(count int) {
	b.docCount = count
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the status bar to default state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
}
