package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driven"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
)

// Ensure DocumentFeed implements the interface.
var _ driving.DocumentService = (*DocumentFeed)(nil)

// DocumentFeed holds the current document listing. Each successful
// fetch replaces the sequence wholesale; there is no incremental
// merge. A failed refresh after a successful load keeps the previous
// listing so the display never regresses on transient errors.
type DocumentFeed struct {
	client driven.KnowledgeBaseClient

	mu     sync.Mutex
	docs   []domain.Document
	loaded bool
}

// NewDocumentFeed creates a feed backed by the given client.
func NewDocumentFeed(client driven.KnowledgeBaseClient) *DocumentFeed {
	return &DocumentFeed{client: client}
}

// Refresh refetches the document listing.
func (f *DocumentFeed) Refresh(ctx context.Context) ([]domain.Document, error) {
	docs, err := f.client.ListDocuments(ctx)
	if err != nil {
		return f.Documents(), fmt.Errorf("list documents: %w", err)
	}

	f.mu.Lock()
	f.docs = docs
	f.loaded = true
	f.mu.Unlock()

	return f.Documents(), nil
}

// Documents returns the listing from the most recent successful fetch.
func (f *DocumentFeed) Documents() []domain.Document {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Document, len(f.docs))
	copy(out, f.docs)
	return out
}

// Loaded reports whether at least one fetch has succeeded.
func (f *DocumentFeed) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded
}

// DownloadURL forwards to the client's URL builder.
func (f *DocumentFeed) DownloadURL(filename string) string {
	return f.client.DownloadURL(filename)
}

// ViewURL forwards to the client's URL builder.
func (f *DocumentFeed) ViewURL(filename string) string {
	return f.client.ViewURL(filename)
}
