// Package chat provides the query/transcript view for the TUI.
// It is the default view, the terminal counterpart of the web app's
// chat page.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/components/input"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/components/status"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/keymap"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/messages"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/styles"
	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
)

// emptyQueryNotice is shown when submission is rejected client-side.
const emptyQueryNotice = "Please enter a query."

// View is the chat view with transcript, input and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.ChatInput
	statusbar *status.Bar

	session driving.ChatSession
	ctx     context.Context

	transcript []domain.ChatMessage
	errMsg     string
	width      int
	height     int
	ready      bool
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.ChatSession) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewChatInput(s, km.InsertNewline),
		statusbar: status.NewBar(s, km),
		session:   session,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.QuerySubmitted:
		v.syncTranscript()
		v.statusbar.SetState(status.StateSubmitting)
		return v, nil

	case messages.QueryCompleted:
		v.syncTranscript()
		v.statusbar.SetState(status.StateReady)
		return v, nil

	case messages.ErrorOccurred:
		v.errMsg = msg.Err.Error()
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Newline binding is checked before Submit: alt+enter carries the
	// enter key type and would otherwise submit.
	if key.Matches(msg, v.keymap.InsertNewline) {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if key.Matches(msg, v.keymap.Submit) {
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit validates the input and starts a query submission.
// Blank input is rejected inline without any network activity.
func (v *View) submit() tea.Cmd {
	text := v.input.Value()
	if strings.TrimSpace(text) == "" {
		v.errMsg = emptyQueryNotice
		return nil
	}

	userMsg, err := v.session.Begin(text)
	if err != nil {
		v.errMsg = emptyQueryNotice
		return nil
	}

	v.errMsg = ""
	v.input.Reset()

	submitted := func() tea.Msg {
		return messages.QuerySubmitted{Message: userMsg}
	}
	return tea.Batch(submitted, v.performQuery(text))
}

// performQuery completes the submission off the UI loop. The session
// appends exactly one assistant entry whether it succeeded or failed.
func (v *View) performQuery(text string) tea.Cmd {
	return func() tea.Msg {
		msg := v.session.Complete(v.ctx, text)
		return messages.QueryCompleted{Message: msg}
	}
}

// syncTranscript refreshes the rendered transcript from the session.
func (v *View) syncTranscript() {
	if v.session != nil {
		v.transcript = v.session.Messages()
	}
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Knowledge Base Chat")
	sections = append(sections, header, "")

	sections = append(sections, v.renderTranscript())

	if v.errMsg != "" {
		sections = append(sections, v.styles.Error.Render(v.errMsg))
	}

	sections = append(sections, v.input.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTranscript renders the transcript tail that fits on screen.
// Message newlines become real line breaks; the underlying messages
// are never modified.
func (v *View) renderTranscript() string {
	if len(v.transcript) == 0 {
		return v.styles.Muted.Render("Ask a question to get started.")
	}

	lines := make([]string, 0, len(v.transcript)*3)
	for i := range v.transcript {
		lines = append(lines, v.renderMessage(&v.transcript[i])...)
		lines = append(lines, "")
	}

	// Autoscroll: keep the most recent lines visible.
	visible := v.transcriptHeight()
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	return strings.Join(lines, "\n")
}

// renderMessage renders one transcript entry as display lines.
func (v *View) renderMessage(msg *domain.ChatMessage) []string {
	var label string
	if msg.Role == domain.RoleUser {
		label = v.styles.UserLabel.Render("You")
	} else {
		label = v.styles.AssistantLabel.Render("Assistant")
	}

	lines := []string{label}
	for _, line := range strings.Split(msg.Content, "\n") {
		lines = append(lines, v.styles.Normal.Render(line))
	}

	if len(msg.Sources) > 0 {
		lines = append(lines, v.styles.Muted.Render("Sources: "+strings.Join(msg.Sources, ", ")))
	}

	return lines
}

// transcriptHeight returns the number of transcript lines that fit.
func (v *View) transcriptHeight() int {
	// Reserve lines for header, input box, error line and status bar
	reserved := 10
	available := v.height - reserved
	if available < 3 {
		available = 3
	}
	return available
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Messages returns the currently rendered transcript.
func (v *View) Messages() []domain.ChatMessage {
	return v.transcript
}

// ErrMsg returns the inline validation or error message.
func (v *View) ErrMsg() string {
	return v.errMsg
}

// InputValue returns the current input text.
func (v *View) InputValue() string {
	return v.input.Value()
}

// SetInputValue sets the input text.
func (v *View) SetInputValue(text string) {
	v.input.SetValue(text)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Reset clears the inline error and refocuses the input. The
// transcript itself is only cleared by restarting the program.
func (v *View) Reset() {
	v.errMsg = ""
	v.input.Focus()
	v.statusbar.Clear()
	v.syncTranscript()
}
