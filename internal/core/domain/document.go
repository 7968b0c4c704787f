package domain

import "time"

// Document describes one file in the knowledge base as reported by the
// server. Documents are immutable on the client; each listing fetch
// replaces the held sequence wholesale.
type Document struct {
	// Filename is the base name of the file.
	Filename string `json:"filename"`

	// Path is the server-side location of the file.
	Path string `json:"path"`

	// LastModified is the file's modification time. Zero when the
	// server did not report one.
	LastModified time.Time `json:"-"`
}

// DisplayTime formats LastModified for list rendering.
// Returns an empty string for the zero time.
func (d Document) DisplayTime() string {
	if d.LastModified.IsZero() {
		return ""
	}
	return d.LastModified.Format("2006-01-02 15:04")
}
