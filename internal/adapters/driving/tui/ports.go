// Package tui provides the interactive terminal front-end for the
// knowledge base. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"time"

	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session holds the chat transcript and runs submissions.
	Session driving.ChatSession

	// Documents maintains the document listing.
	Documents driving.DocumentService

	// Actions performs clipboard and browser actions. Optional.
	Actions driving.ActionService

	// State exposes the local state store for diagnostics. Optional.
	State driving.StateReader

	// SyncInterval is the document resync period. Zero selects the
	// default.
	SyncInterval time.Duration
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(session driving.ChatSession, documents driving.DocumentService) *Ports {
	return &Ports{
		Session:      session,
		Documents:    documents,
		SyncInterval: domain.DefaultSyncInterval,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingChatSession
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	return nil
}
