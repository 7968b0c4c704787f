// Package documents provides the document listing view for the TUI.
// It fetches the listing once on entry and then resyncs it on a fixed
// timer for as long as the program runs.
package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/messages"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/styles"
	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
	"github.com/ragbase/kbchat/internal/logger"
)

// ActionOption represents a document action.
type ActionOption int

const (
	ActionCopyDownloadURL ActionOption = iota
	ActionCopyViewURL
	ActionOpenInBrowser
	ActionCancel
)

// View is the document listing view.
type View struct {
	styles   *styles.Styles
	feed     driving.DocumentService
	actions  driving.ActionService
	interval time.Duration
	ctx      context.Context

	documents    []domain.Document
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	loading      bool
	err          error
	showingMenu  bool
	menuSelected ActionOption
	notice       string

	// pollGen invalidates stale tick chains after a re-init.
	pollGen int
}

// NewView creates a new documents view.
func NewView(
	s *styles.Styles,
	feed driving.DocumentService,
	actions driving.ActionService,
	interval time.Duration,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if interval <= 0 {
		interval = domain.DefaultSyncInterval
	}

	return &View{
		styles:    s,
		feed:      feed,
		actions:   actions,
		interval:  interval,
		ctx:       context.Background(),
		documents: []domain.Document{},
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the initial load and the resync timer chain.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	v.pollGen++
	return tea.Batch(v.loadDocuments(true), v.tick())
}

// tick schedules the next resync.
func (v *View) tick() tea.Cmd {
	gen := v.pollGen
	return tea.Tick(v.interval, func(time.Time) tea.Msg {
		return messages.SyncTick{Gen: gen}
	})
}

// loadDocuments returns a command that refreshes the listing.
func (v *View) loadDocuments(initial bool) tea.Cmd {
	return func() tea.Msg {
		if v.feed == nil {
			return messages.DocumentsLoaded{Err: fmt.Errorf("document service not available"), Initial: initial}
		}

		docs, err := v.feed.Refresh(v.ctx)
		return messages.DocumentsLoaded{
			Documents: docs,
			Err:       err,
			Initial:   initial,
		}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.showingMenu {
			return v.handleMenuKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.SyncTick:
		if msg.Gen != v.pollGen {
			return v, nil // Stale chain from a previous Init
		}
		return v, tea.Batch(v.loadDocuments(false), v.tick())

	case messages.DocumentsLoaded:
		v.handleDocumentsLoaded(msg)
		return v, nil
	}

	return v, nil
}

// handleDocumentsLoaded applies a fetch outcome.
// A failed background resync keeps the previous listing and is only
// logged; a failed initial load is surfaced and leaves the listing
// empty with the loading flag cleared.
func (v *View) handleDocumentsLoaded(msg messages.DocumentsLoaded) {
	v.loading = false

	if msg.Err != nil {
		if msg.Initial {
			v.err = msg.Err
			v.documents = []domain.Document{}
		} else {
			logger.Warn("background resync failed: %v", msg.Err)
		}
		return
	}

	v.err = nil
	v.documents = msg.Documents
	if v.selected >= len(v.documents) {
		v.selected = 0
		v.scrollOffset = 0
	}
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.documents)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		if len(v.documents) > 0 {
			v.showingMenu = true
			v.menuSelected = ActionCopyDownloadURL
			v.notice = ""
		}
	case "r":
		v.loading = true
		return v, v.loadDocuments(v.err != nil && len(v.documents) == 0)
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleMenuKeyMsg handles key presses in action menu mode.
func (v *View) handleMenuKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.menuSelected > ActionCopyDownloadURL {
			v.menuSelected--
		}
	case "down", "j":
		if v.menuSelected < ActionCancel {
			v.menuSelected++
		}
	case "enter":
		return v.handleMenuSelect()
	case "esc":
		v.showingMenu = false
	}

	return v, nil
}

// handleMenuSelect executes the selected action.
func (v *View) handleMenuSelect() (*View, tea.Cmd) {
	v.showingMenu = false
	if v.selected >= len(v.documents) {
		return v, nil
	}

	doc := v.documents[v.selected]

	switch v.menuSelected {
	case ActionCopyDownloadURL:
		v.copyText(v.feed.DownloadURL(doc.Filename), "Download URL copied")
	case ActionCopyViewURL:
		v.copyText(v.feed.ViewURL(doc.Filename), "View URL copied")
	case ActionOpenInBrowser:
		if v.actions == nil {
			v.notice = "Open not available"
			break
		}
		if err := v.actions.OpenURL(v.ctx, v.feed.ViewURL(doc.Filename)); err != nil {
			v.notice = "Open: " + err.Error()
		} else {
			v.notice = "Opening in browser..."
		}
	case ActionCancel:
		// Menu already closed
	}

	return v, nil
}

// copyText copies text to the clipboard and records the outcome.
func (v *View) copyText(text, okNotice string) {
	if v.actions == nil {
		v.notice = "Copy not available"
		return
	}
	if err := v.actions.CopyText(v.ctx, text); err != nil {
		v.notice = "Copy: " + err.Error()
		return
	}
	v.notice = okNotice
}

// adjustScroll keeps the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, notice, help and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Documents (%d)", len(v.documents))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.loading && len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents in the knowledge base."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.showingMenu {
		b.WriteString(v.renderActionMenu())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.documents) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderDocument(i, &v.documents[i]))
		b.WriteString("\n")
	}

	if len(v.documents) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.documents)),
			len(v.documents))))
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(v.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderDocument renders a single listing line.
func (v *View) renderDocument(index int, doc *domain.Document) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := doc.Filename
	maxNameLen := v.width/2 - 4
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	modified := doc.DisplayTime()

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxNameLen, name, modified))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxNameLen, name)) +
		v.styles.Muted.Render(modified)
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	var b strings.Builder

	if v.selected < len(v.documents) {
		doc := v.documents[v.selected]
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Actions for: %s", doc.Filename)))
		b.WriteString("\n\n")
	}

	options := []struct {
		action ActionOption
		label  string
	}{
		{ActionCopyDownloadURL, "Copy Download URL"},
		{ActionCopyViewURL, "Copy View URL"},
		{ActionOpenInBrowser, "Open in Browser"},
		{ActionCancel, "Cancel"},
	}

	for _, opt := range options {
		indicator := "  "
		if v.menuSelected == opt.action {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] cancel"))

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] actions  [r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Documents returns the currently rendered listing.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// SelectedIndex returns the selected document index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedDocument returns the currently selected document.
func (v *View) SelectedDocument() *domain.Document {
	if v.selected < len(v.documents) {
		return &v.documents[v.selected]
	}
	return nil
}

// IsShowingMenu returns true if the action menu is visible.
func (v *View) IsShowingMenu() bool {
	return v.showingMenu
}

// Loading returns whether the initial load is in progress.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the initial load error, if any.
func (v *View) Err() error {
	return v.err
}

// PollGen returns the active tick-chain generation.
func (v *View) PollGen() int {
	return v.pollGen
}
