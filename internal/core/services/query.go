package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driven"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService answers one-shot questions via the knowledge-base API.
type QueryService struct {
	client driven.KnowledgeBaseClient
}

// NewQueryService creates a query service backed by the given client.
func NewQueryService(client driven.KnowledgeBaseClient) *QueryService {
	return &QueryService{client: client}
}

// Ask submits a query and derives the display result.
func (s *QueryService) Ask(ctx context.Context, text string) (*domain.QueryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyQuery
	}

	resp, err := s.client.SubmitQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("submit query: %w", err)
	}

	result := domain.DeriveResult(resp)
	return &result, nil
}
