// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the knowledge base client. It lets AI assistants submit queries
// and browse the document listing through the same core services the
// CLI and TUI use.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")
