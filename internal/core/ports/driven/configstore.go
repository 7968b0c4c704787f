package driven

// ConfigStore provides persistent key-value configuration.
// Keys use dot notation for nesting (e.g. "server.url").
type ConfigStore interface {
	// Get retrieves a value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if absent.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if absent.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false if absent.
	GetBool(key string) bool

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Load re-reads configuration from the backing file.
	Load() error

	// Path returns the backing file path.
	Path() string
}
