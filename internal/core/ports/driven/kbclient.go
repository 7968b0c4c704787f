package driven

import (
	"context"

	"github.com/ragbase/kbchat/internal/core/domain"
)

// KnowledgeBaseClient is the outbound port to the knowledge-base API.
type KnowledgeBaseClient interface {
	// SubmitQuery posts a query and returns the raw server response.
	// The text is sent as-is; blank-checking happens in the caller.
	SubmitQuery(ctx context.Context, text string) (*domain.QueryResponse, error)

	// ListDocuments fetches the current document listing.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DownloadURL builds the download address for a filename.
	// Pure string construction, no network call.
	DownloadURL(filename string) string

	// ViewURL builds the inline-view address for a filename.
	ViewURL(filename string) string
}
