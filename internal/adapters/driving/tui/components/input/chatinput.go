// Package input provides the multiline query input for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/styles"
)

// ChatInput wraps a bubbles textarea for query entry. Enter submits;
// newline insertion is rebound to shift+enter (alt+enter where the
// terminal cannot report shift), matching the chat keyboard contract.
type ChatInput struct {
	textarea textarea.Model
	styles   *styles.Styles
	width    int
}

// NewChatInput creates a new chat input component.
func NewChatInput(s *styles.Styles, newline key.Binding) *ChatInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Ask the knowledge base..."
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline = newline

	return &ChatInput{
		textarea: ta,
		styles:   s,
		width:    60,
	}
}

// Init initialises the input.
func (c *ChatInput) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (c *ChatInput) Update(msg tea.Msg) (*ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.textarea, cmd = c.textarea.Update(msg)
	return c, cmd
}

// View renders the input.
func (c *ChatInput) View() string {
	return c.styles.InputField.Render(c.textarea.View())
}

// Value returns the current input value.
func (c *ChatInput) Value() string {
	return c.textarea.Value()
}

// SetValue sets the input value.
func (c *ChatInput) SetValue(value string) {
	c.textarea.SetValue(value)
}

// Reset clears the input.
func (c *ChatInput) Reset() {
	c.textarea.Reset()
}

// Focus sets focus on the input.
func (c *ChatInput) Focus() tea.Cmd {
	return c.textarea.Focus()
}

// Blur removes focus from the input.
func (c *ChatInput) Blur() {
	c.textarea.Blur()
}

// Focused returns whether the input is focused.
func (c *ChatInput) Focused() bool {
	return c.textarea.Focused()
}

// SetWidth sets the width of the input.
func (c *ChatInput) SetWidth(width int) {
	c.width = width
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	c.textarea.SetWidth(inner)
}

// Width returns the current width.
func (c *ChatInput) Width() int {
	return c.width
}
