package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ragbase/kbchat/internal/adapters/driving/tui/messages"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/styles"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/views/chat"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/views/diagnostics"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/views/documents"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui/views/menu"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// chatView is the query/transcript view and the default route.
	chatView *chat.View

	// documentsView is the document listing view component.
	documentsView *documents.View

	// diagnosticsView shows the local state snapshot.
	diagnosticsView *diagnostics.View

	// menuView is the navigation menu.
	menuView *menu.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	ctx := context.Background()

	return &App{
		ports:           ports,
		ctx:             ctx,
		styles:          s,
		chatView:        chat.NewView(s, nil, ports.Session).WithContext(ctx),
		documentsView:   documents.NewView(s, ports.Documents, ports.Actions, ports.SyncInterval).WithContext(ctx),
		diagnosticsView: diagnostics.NewView(s, ports.State).WithContext(ctx),
		menuView:        menu.NewView(s),
		currentView:     messages.ViewChat, // Chat is the landing view
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView = a.chatView.WithContext(ctx)
	a.documentsView = a.documentsView.WithContext(ctx)
	a.diagnosticsView = a.diagnosticsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// The document resync timer chain starts here so the listing stays
// current regardless of which view the user is on.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("kbchat - Knowledge Base"),
		a.chatView.Init(),
		a.documentsView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.diagnosticsView.SetDimensions(msg.Width, msg.Height)
		a.menuView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
			return a, cmd

		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
			return a, cmd

		case messages.ViewDiagnostics:
			a.diagnosticsView, cmd = a.diagnosticsView.Update(msg)
			return a, cmd

		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		return a.handleViewChanged(msg)

	case messages.QuerySubmitted, messages.QueryCompleted:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	// The resync timer keeps running while other views are active, so
	// these always route to the documents view.
	case messages.SyncTick, messages.DocumentsLoaded:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.StateLoaded:
		a.diagnosticsView, cmd = a.diagnosticsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewChat {
			a.chatView, cmd = a.chatView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewDiagnostics:
		a.diagnosticsView, cmd = a.diagnosticsView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// handleViewChanged switches the active view. Anything it does not
// recognise lands on the chat view, the application's default route.
func (a *App) handleViewChanged(msg messages.ViewChanged) (tea.Model, tea.Cmd) {
	switch msg.View {
	case messages.ViewChat:
		a.currentView = messages.ViewChat
		a.chatView.Reset()
		return a, nil
	case messages.ViewDocuments:
		a.currentView = messages.ViewDocuments
		return a, nil
	case messages.ViewDiagnostics:
		a.currentView = messages.ViewDiagnostics
		return a, a.diagnosticsView.Init()
	case messages.ViewMenu, messages.ViewHelp:
		a.currentView = msg.View
		return a, nil
	default:
		a.currentView = messages.ViewChat
		a.chatView.Reset()
		return a, nil
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewDiagnostics:
		return a.diagnosticsView.View()
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.chatView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc           Back
  ctrl+c        Quit

Chat:
  (type)        Enter your query
  enter         Submit query
  shift+enter   Insert newline (alt+enter on terminals
                that cannot report shift+enter)

Documents:
  j/k, ↑/↓      Navigate listing
  enter         Document actions
  r             Reload listing

Diagnostics:
  j/k, ↑/↓      Scroll entries
  r             Reload snapshot

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// ChatView returns the chat view (for testing).
func (a *App) ChatView() *chat.View {
	return a.chatView
}

// DocumentsView returns the documents view (for testing).
func (a *App) DocumentsView() *documents.View {
	return a.documentsView
}

// DiagnosticsView returns the diagnostics view (for testing).
func (a *App) DiagnosticsView() *diagnostics.View {
	return a.diagnosticsView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.chatView.SetDimensions(width, height)
	a.documentsView.SetDimensions(width, height)
	a.diagnosticsView.SetDimensions(width, height)
}
