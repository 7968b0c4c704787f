package driving

import (
	"context"

	"github.com/ragbase/kbchat/internal/core/domain"
)

// QueryService answers one-shot questions against the knowledge base.
type QueryService interface {
	// Ask submits a query and returns the derived result.
	// Returns domain.ErrEmptyQuery for blank input without making a
	// network call.
	Ask(ctx context.Context, text string) (*domain.QueryResult, error)
}

// ChatSession owns the append-only conversation transcript.
//
// A submission runs in two phases so a caller can re-render between
// them: Begin appends the user entry before any network activity,
// Complete performs the query and appends exactly one assistant entry
// whether the query succeeded or failed.
type ChatSession interface {
	// Begin validates the query and appends the user entry.
	// Returns domain.ErrEmptyQuery for blank input; the transcript is
	// untouched in that case.
	Begin(text string) (domain.ChatMessage, error)

	// Complete submits the query and appends the assistant entry.
	// Network failures are folded into a fixed-message entry; the user
	// entry from Begin is never rolled back.
	Complete(ctx context.Context, text string) domain.ChatMessage

	// Messages returns a copy of the transcript in append order.
	Messages() []domain.ChatMessage

	// Submitting reports whether a query is in flight.
	Submitting() bool
}
