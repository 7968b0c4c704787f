package domain

import "time"

// StateEntry is one key-value pair from the local state store,
// captured as a snapshot for diagnostic display. Snapshots are not
// kept in sync with the store after being taken.
type StateEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
