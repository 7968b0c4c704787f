package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
	"github.com/ragbase/kbchat/internal/logger"
)

// Ensure ChatSession implements the interface.
var _ driving.ChatSession = (*ChatSession)(nil)

// ChatSession owns the append-only conversation transcript.
// Transitions per submission: idle -> submitting -> idle. There is no
// in-flight guard beyond the Submitting flag: concurrent completions
// both append and the transcript stays append-ordered.
type ChatSession struct {
	query driving.QueryService

	mu         sync.Mutex
	messages   []domain.ChatMessage
	submitting bool
}

// NewChatSession creates a session over the given query service.
func NewChatSession(query driving.QueryService) *ChatSession {
	return &ChatSession{query: query}
}

// Begin validates the query and appends the user transcript entry.
// The entry carries the raw, untrimmed text.
func (s *ChatSession) Begin(text string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, domain.ErrEmptyQuery
	}

	msg := domain.NewUserMessage(text)

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.submitting = true
	s.mu.Unlock()

	return msg, nil
}

// Complete submits the query and appends exactly one assistant entry.
// Any network or HTTP failure collapses to the fixed failure message;
// the user entry appended by Begin remains either way.
func (s *ChatSession) Complete(ctx context.Context, text string) domain.ChatMessage {
	var msg domain.ChatMessage

	result, err := s.query.Ask(ctx, text)
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		// Begin already guards this; treat a programmatic call with
		// blank text like any other failure.
		msg = domain.NewAssistantMessage(domain.QueryFailedMessage, nil)
	case err != nil:
		logger.Warn("query failed: %v", err)
		msg = domain.NewAssistantMessage(domain.QueryFailedMessage, nil)
	default:
		msg = domain.NewAssistantMessage(result.Content, result.Sources)
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.submitting = false
	s.mu.Unlock()

	return msg
}

// Messages returns a copy of the transcript in append order.
func (s *ChatSession) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Submitting reports whether a query is in flight.
func (s *ChatSession) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}
