package domain

import "time"

// Default configuration values.
const (
	// DefaultServerURL is the knowledge-base API base address.
	DefaultServerURL = "http://localhost:8000"

	// DefaultSyncInterval is how often the document listing is
	// refetched in the background.
	DefaultSyncInterval = 10 * time.Second
)

// Settings holds the client configuration.
type Settings struct {
	// ServerURL is the base address of the knowledge-base API.
	ServerURL string

	// SyncInterval is the document resync period.
	SyncInterval time.Duration

	// Verbose enables debug logging to stderr.
	Verbose bool
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		ServerURL:    DefaultServerURL,
		SyncInterval: DefaultSyncInterval,
	}
}
