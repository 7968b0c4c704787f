// Package diagnostics provides a read-only view of the local state
// store, the persisted key/value snapshot kept across sessions.
package diagnostics

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/messages"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/styles"
	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
)

// View is the diagnostics view.
type View struct {
	styles *styles.Styles
	state  driving.StateReader
	ctx    context.Context

	entries      []domain.StateEntry
	scrollOffset int
	width        int
	height       int
	loading      bool
	err          error
}

// NewView creates a new diagnostics view.
func NewView(s *styles.Styles, state driving.StateReader) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		state:   state,
		ctx:     context.Background(),
		entries: []domain.StateEntry{},
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads a fresh snapshot of the state store.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return v.loadState()
}

// loadState returns a command that reads the state store.
func (v *View) loadState() tea.Cmd {
	return func() tea.Msg {
		if v.state == nil {
			return messages.StateLoaded{Err: fmt.Errorf("state store not available")}
		}

		entries, err := v.state.Entries(v.ctx)
		return messages.StateLoaded{Entries: entries, Err: err}
	}
}

// Update handles messages for the diagnostics view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.StateLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.entries = msg.Entries
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < len(v.entries)-1 {
			v.scrollOffset++
		}
	case "r":
		v.loading = true
		return v, v.loadState()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// View renders the diagnostics view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Diagnostics"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Local state snapshot. Values are read-only here."))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Reading state..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No state entries."))
	default:
		b.WriteString(v.renderEntries())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] scroll  [r] reload  [esc] back"))

	return b.String()
}

// renderEntries renders the visible entry window.
func (v *View) renderEntries() string {
	visible := v.visibleEntryCount()
	var b strings.Builder

	keyWidth := 0
	for _, e := range v.entries {
		if len(e.Key) > keyWidth {
			keyWidth = len(e.Key)
		}
	}
	if keyWidth > 32 {
		keyWidth = 32
	}

	for i := v.scrollOffset; i < len(v.entries) && i < v.scrollOffset+visible; i++ {
		e := v.entries[i]

		name := e.Key
		if len(name) > keyWidth {
			name = name[:keyWidth-3] + "..."
		}

		value := e.Value
		maxValue := v.width - keyWidth - 24
		if maxValue < 16 {
			maxValue = 16
		}
		if len(value) > maxValue {
			value = value[:maxValue-3] + "..."
		}

		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-*s", keyWidth, name)))
		b.WriteString("  ")
		b.WriteString(v.styles.Normal.Render(value))
		b.WriteString("  ")
		b.WriteString(v.styles.Muted.Render(e.UpdatedAt.Format("2006-01-02 15:04")))
		b.WriteString("\n")
	}

	if len(v.entries) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visible, len(v.entries)),
			len(v.entries))))
	}

	return b.String()
}

// visibleEntryCount returns the number of entries that fit on screen.
func (v *View) visibleEntryCount() int {
	reserved := 9
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Entries returns the currently rendered snapshot.
func (v *View) Entries() []domain.StateEntry {
	return v.entries
}

// Loading returns whether a snapshot read is in progress.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the snapshot read error, if any.
func (v *View) Err() error {
	return v.err
}
