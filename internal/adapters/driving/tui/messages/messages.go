// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm
// architecture.
package messages

import (
	"github.com/ragbase/kbchat/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewChat is the query/transcript view and the default route.
	ViewChat ViewType = iota
	// ViewDocuments is the knowledge-base document listing.
	ViewDocuments
	// ViewDiagnostics shows the local state store snapshot.
	ViewDiagnostics
	// ViewMenu is the navigation menu.
	ViewMenu
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewDocuments:
		return "documents"
	case ViewDiagnostics:
		return "diagnostics"
	case ViewMenu:
		return "menu"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// QuerySubmitted carries the user transcript entry appended before
// the HTTP call resolves.
type QuerySubmitted struct {
	Message domain.ChatMessage
}

// QueryCompleted carries the assistant transcript entry appended
// after the HTTP call resolved, successfully or not.
type QueryCompleted struct {
	Message domain.ChatMessage
}

// DocumentsLoaded carries a document listing fetch outcome.
// Initial distinguishes the first load from background resyncs: only
// an initial failure is surfaced in the UI.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
	Initial   bool
}

// SyncTick fires on the periodic document resync timer. Gen guards
// against stale tick chains after a view re-init.
type SyncTick struct {
	Gen int
}

// StateLoaded carries the diagnostic snapshot of the local state
// store.
type StateLoaded struct {
	Entries []domain.StateEntry
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
