package mcp

import (
	"context"

	"github.com/ragbase/kbchat/internal/core/domain"
)

// mockQueryService implements driving.QueryService for testing.
type mockQueryService struct {
	result *domain.QueryResult
	err    error
}

func (m *mockQueryService) Ask(_ context.Context, _ string) (*domain.QueryResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.QueryResult{Content: domain.FallbackAnswer}, nil
	}
	return m.result, nil
}

// mockDocumentService implements driving.DocumentService for testing.
type mockDocumentService struct {
	docs []domain.Document
	err  error
}

func (m *mockDocumentService) Refresh(_ context.Context) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockDocumentService) Documents() []domain.Document { return m.docs }
func (m *mockDocumentService) Loaded() bool                 { return len(m.docs) > 0 }

func (m *mockDocumentService) DownloadURL(filename string) string {
	return "http://localhost:8000/download/" + filename
}

func (m *mockDocumentService) ViewURL(filename string) string {
	return "http://localhost:8000/view/" + filename
}
