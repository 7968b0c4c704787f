package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser marks a message typed by the user.
	RoleUser Role = "user"

	// RoleAssistant marks a message produced from a server answer.
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in the conversation transcript.
// The transcript is append-only: a message is never mutated after
// creation and a user entry always precedes its assistant entry.
type ChatMessage struct {
	// ID is the unique identifier for the message.
	ID string `json:"id"`

	// Role is the message author.
	Role Role `json:"role"`

	// Content is the display text. May contain newlines.
	Content string `json:"content"`

	// Sources lists citation identifiers supporting the answer.
	// Nil for user messages and for fallback answers.
	Sources []string `json:"sources,omitempty"`

	// CreatedAt is when the message was appended.
	CreatedAt time.Time `json:"created_at"`
}

// NewUserMessage creates a transcript entry for user-typed text.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewAssistantMessage creates a transcript entry for an answer.
func NewAssistantMessage(content string, sources []string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		Sources:   sources,
		CreatedAt: time.Now(),
	}
}
