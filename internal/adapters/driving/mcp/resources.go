package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for knowledge-base resources.
	uriScheme = "kb://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the document listing.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Listing of all documents in the knowledge base",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for per-document access URLs.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{filename}/urls",
		Name:        "document-urls",
		Description: "Download and view URLs for a specific document",
		MIMEType:    "application/json",
	}, s.handleDocumentURLsResource)
}

// handleDocumentsResource returns the current document listing.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Documents.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]DocumentOutput, len(docs))
	for i := range docs {
		infos[i] = DocumentOutput{
			Filename:     docs[i].Filename,
			LastModified: docs[i].DisplayTime(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentURLsResource returns access URLs for one document.
func (s *Server) handleDocumentURLsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	filename := extractFilename(req.Params.URI)
	if filename == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	urls := struct {
		Filename    string `json:"filename"`
		DownloadURL string `json:"download_url"`
		ViewURL     string `json:"view_url"`
	}{
		Filename:    filename,
		DownloadURL: s.ports.Documents.DownloadURL(filename),
		ViewURL:     s.ports.Documents.ViewURL(filename),
	}

	data, err := json.MarshalIndent(urls, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling urls: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractFilename extracts the filename from a URI like
// kb://documents/{filename}/urls.
func extractFilename(uri string) string {
	const prefix = uriScheme + "documents/"
	const suffix = "/urls"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
