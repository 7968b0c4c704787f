package mcp

import (
	"github.com/ragbase/kbchat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query answers one-shot questions.
	Query driving.QueryService

	// Documents maintains the document listing.
	Documents driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	return nil
}
