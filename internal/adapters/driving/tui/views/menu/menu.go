// Package menu provides the navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/messages"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/styles"
)

// Item represents a menu entry.
type Item struct {
	Title       string
	Description string
	Target      messages.ViewType
	Quit        bool
}

// View is the navigation menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Title: "Chat", Description: "Ask the knowledge base", Target: messages.ViewChat},
			{Title: "Documents", Description: "Browse indexed documents", Target: messages.ViewDocuments},
			{Title: "Diagnostics", Description: "Inspect local state", Target: messages.ViewDiagnostics},
			{Title: "Help", Description: "Keybindings and usage", Target: messages.ViewHelp},
			{Title: "Quit", Description: "Exit the application", Quit: true},
		},
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case "enter":
		item := v.items[v.selected]
		if item.Quit {
			return v, func() tea.Msg { return messages.Quit{} }
		}
		target := item.Target
		return v, func() tea.Msg {
			return messages.ViewChanged{View: target}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewChat}
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Knowledge Base Chat"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + item.Title))
			b.WriteString("  ")
			b.WriteString(v.styles.Muted.Render(item.Description))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + item.Title))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] chat"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SelectedIndex returns the selected item index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
