package domain

import (
	"regexp"
	"strings"
)

// citationPattern matches inline citation markers embedded in answer
// text. The server emits markers of the shape
//
//	(Source: <anything> id:<ID>)
//
// and <ID> is captured non-greedily up to the closing parenthesis.
// This is a heuristic contract with the server, not a guaranteed
// format; it only applies when the response carries no explicit
// source_documents list.
var citationPattern = regexp.MustCompile(`\(Source: .*? id:(.*?)\)`)

// ExtractCitations scans answer text for citation markers and returns
// the captured identifiers, whitespace-trimmed, with empty identifiers
// dropped and duplicates removed preserving first-seen order.
func ExtractCitations(answer string) []string {
	matches := citationPattern.FindAllStringSubmatch(answer, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		id := strings.TrimSpace(m[1])
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil
	}
	return ids
}
