package cli

import (
	"context"

	"github.com/ragbase/kbchat/internal/core/domain"
)

// fakeQueryService implements driving.QueryService for testing.
type fakeQueryService struct {
	result *domain.QueryResult
	err    error
}

func (f *fakeQueryService) Ask(_ context.Context, text string) (*domain.QueryResult, error) {
	if text == "" {
		return nil, domain.ErrEmptyQuery
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &domain.QueryResult{Content: domain.FallbackAnswer}, nil
	}
	return f.result, nil
}

// fakeDocumentService implements driving.DocumentService for testing.
type fakeDocumentService struct {
	docs []domain.Document
	err  error
}

func (f *fakeDocumentService) Refresh(_ context.Context) ([]domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func (f *fakeDocumentService) Documents() []domain.Document { return f.docs }
func (f *fakeDocumentService) Loaded() bool                 { return len(f.docs) > 0 }

func (f *fakeDocumentService) DownloadURL(filename string) string {
	return "http://localhost:8000/download/" + filename
}

func (f *fakeDocumentService) ViewURL(filename string) string {
	return "http://localhost:8000/view/" + filename
}

// fakeStateReader implements driving.StateReader for testing.
type fakeStateReader struct {
	entries []domain.StateEntry
	err     error
}

func (f *fakeStateReader) Entries(_ context.Context) ([]domain.StateEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

// setupTestServices injects fakes and returns a cleanup func.
func setupTestServices(query *fakeQueryService, docs *fakeDocumentService, state *fakeStateReader) func() {
	if query == nil {
		query = &fakeQueryService{}
	}
	if docs == nil {
		docs = &fakeDocumentService{}
	}
	SetServices(query, nil, docs, nil, state)
	// A non-nil session marks the wiring as injected so bootstrap
	// leaves it alone.
	chatSession = stubSession{}
	return ResetServices
}

// stubSession satisfies driving.ChatSession for bootstrap short-circuiting.
type stubSession struct{}

func (stubSession) Begin(text string) (domain.ChatMessage, error) {
	return domain.NewUserMessage(text), nil
}

func (stubSession) Complete(_ context.Context, _ string) domain.ChatMessage {
	return domain.NewAssistantMessage("", nil)
}

func (stubSession) Messages() []domain.ChatMessage { return nil }
func (stubSession) Submitting() bool               { return false }
