// Package domain contains the core types for the kbchat client:
// chat transcript messages, knowledge-base documents, query responses
// and the citation extraction heuristic. It has no dependencies on
// adapters or transport.
package domain
