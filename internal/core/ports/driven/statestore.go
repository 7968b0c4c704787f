package driven

import (
	"context"

	"github.com/ragbase/kbchat/internal/core/domain"
)

// StateStore is the local key-value state store. The interactive
// client only ever reads it; writes happen through the state CLI
// command.
type StateStore interface {
	// Get retrieves a value by key. The boolean reports presence.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value under a key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Entries returns a snapshot of all entries, ordered by key.
	Entries(ctx context.Context) ([]domain.StateEntry, error)

	// Close releases the underlying database handle.
	Close() error
}
