package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryInput is the input schema for the query tool.
type QueryInput struct {
	Query string `json:"query" jsonschema:"the question to ask the knowledge base"`
}

// QueryOutput is the output schema for the query tool.
type QueryOutput struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct {
	IncludeURLs bool `json:"include_urls,omitempty" jsonschema:"include download URLs for each document"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single document listing entry.
type DocumentOutput struct {
	Filename     string `json:"filename"`
	LastModified string `json:"last_modified"`
	DownloadURL  string `json:"download_url,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query",
		Description: "Ask the knowledge base a question and get an answer with source documents",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the documents currently indexed in the knowledge base",
	}, s.handleListDocuments)
}

// handleQuery handles the query tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	result, err := s.ports.Query.Ask(ctx, input.Query)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	return nil, QueryOutput{
		Answer:  result.Content,
		Sources: result.Sources,
	}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Documents.Refresh(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}

	for i := range docs {
		output.Documents[i] = DocumentOutput{
			Filename:     docs[i].Filename,
			LastModified: docs[i].DisplayTime(),
		}
		if input.IncludeURLs {
			output.Documents[i].DownloadURL = s.ports.Documents.DownloadURL(docs[i].Filename)
		}
	}

	return nil, output, nil
}
