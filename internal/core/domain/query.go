package domain

import "strings"

// FallbackAnswer is shown when the server returns a blank answer.
const FallbackAnswer = "No relevant information found. Please rephrase or try another query."

// QueryFailedMessage is shown when a query fails for any network or
// HTTP reason. Failures are deliberately not distinguished further.
const QueryFailedMessage = "An error occurred while processing your query. Please try again."

// QueryResponse is the loosely typed server reply to a query.
// Both fields are optional on the wire: a nil SourceDocuments slice
// means the field was absent, which is distinct from an empty list.
type QueryResponse struct {
	Answer          string   `json:"answer"`
	SourceDocuments []string `json:"source_documents"`
}

// QueryResult is the derived, display-ready form of a response.
type QueryResult struct {
	// Content is the answer text, or FallbackAnswer for blank answers.
	Content string

	// Sources are the citation identifiers for the answer.
	Sources []string
}

// DeriveResult turns a raw server response into display content and
// citation identifiers.
//
// Precedence rules:
//   - A blank answer forces FallbackAnswer and discards all sources,
//     including an explicitly provided source_documents list.
//   - An explicit source_documents list (even an empty one) wins over
//     regex extraction from the answer text.
//   - Otherwise citations are extracted from the answer heuristically,
//     see ExtractCitations.
func DeriveResult(resp *QueryResponse) QueryResult {
	if resp == nil || strings.TrimSpace(resp.Answer) == "" {
		return QueryResult{Content: FallbackAnswer}
	}

	if resp.SourceDocuments != nil {
		return QueryResult{Content: resp.Answer, Sources: resp.SourceDocuments}
	}

	return QueryResult{
		Content: resp.Answer,
		Sources: ExtractCitations(resp.Answer),
	}
}
