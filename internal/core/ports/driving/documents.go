package driving

import (
	"context"

	"github.com/ragbase/kbchat/internal/core/domain"
)

// DocumentService maintains the current document listing.
type DocumentService interface {
	// Refresh refetches the listing. On success the held sequence is
	// replaced wholesale. On failure after a successful load the
	// previous sequence is retained; a failed initial load leaves the
	// sequence empty.
	Refresh(ctx context.Context) ([]domain.Document, error)

	// Documents returns the listing from the most recent successful
	// fetch.
	Documents() []domain.Document

	// Loaded reports whether at least one fetch has succeeded.
	Loaded() bool

	// DownloadURL forwards to the API client's URL builder.
	DownloadURL(filename string) string

	// ViewURL forwards to the API client's URL builder.
	ViewURL(filename string) string
}

// ActionService performs OS-level actions on documents.
type ActionService interface {
	// CopyText places text on the system clipboard.
	CopyText(ctx context.Context, text string) error

	// OpenURL opens a URL in the default browser.
	OpenURL(ctx context.Context, url string) error
}

// StateReader exposes read-only access to the local state store for
// diagnostic display.
type StateReader interface {
	// Entries returns a snapshot of all state entries.
	Entries(ctx context.Context) ([]domain.StateEntry, error)
}
