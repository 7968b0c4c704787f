package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveResult_NilResponse(t *testing.T) {
	result := DeriveResult(nil)
	assert.Equal(t, FallbackAnswer, result.Content)
	assert.Nil(t, result.Sources)
}

func TestDeriveResult_BlankAnswer(t *testing.T) {
	result := DeriveResult(&QueryResponse{Answer: "   \n\t "})
	assert.Equal(t, FallbackAnswer, result.Content)
	assert.Nil(t, result.Sources)
}

func TestDeriveResult_BlankAnswerDiscardsExplicitSources(t *testing.T) {
	// A blank answer wins even over an explicit source list
	result := DeriveResult(&QueryResponse{
		Answer:          "",
		SourceDocuments: []string{"doc-1", "doc-2"},
	})
	assert.Equal(t, FallbackAnswer, result.Content)
	assert.Nil(t, result.Sources)
}

func TestDeriveResult_ExplicitSources(t *testing.T) {
	result := DeriveResult(&QueryResponse{
		Answer:          "The policy allows refunds within 30 days.",
		SourceDocuments: []string{"policy.pdf"},
	})
	assert.Equal(t, "The policy allows refunds within 30 days.", result.Content)
	assert.Equal(t, []string{"policy.pdf"}, result.Sources)
}

func TestDeriveResult_ExplicitEmptySourcesWinOverExtraction(t *testing.T) {
	// An empty but present source_documents list suppresses the
	// heuristic even when the text carries markers
	result := DeriveResult(&QueryResponse{
		Answer:          "Answer with marker (Source: a id:doc-1).",
		SourceDocuments: []string{},
	})
	assert.Empty(t, result.Sources)
	assert.NotNil(t, result.Sources)
}

func TestDeriveResult_ExtractsFromAnswerWhenSourcesAbsent(t *testing.T) {
	result := DeriveResult(&QueryResponse{
		Answer: "Answer with marker (Source: a id:doc-1).",
	})
	assert.Equal(t, []string{"doc-1"}, result.Sources)
}

func TestDeriveResult_NoSourcesAnywhere(t *testing.T) {
	result := DeriveResult(&QueryResponse{Answer: "Just an answer."})
	assert.Equal(t, "Just an answer.", result.Content)
	assert.Nil(t, result.Sources)
}
