package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragbase/kbchat/internal/core/domain"
)

func testDocs() []domain.Document {
	return []domain.Document{
		{Filename: "guide.md", Path: "/kb/guide.md", LastModified: time.Unix(1700000000, 0)},
		{Filename: "policy.pdf", Path: "/kb/policy.pdf", LastModified: time.Unix(1700000100, 0)},
	}
}

func TestDocumentFeed_Refresh_ReplacesWholesale(t *testing.T) {
	client := &mockKBClient{documents: testDocs()}
	feed := NewDocumentFeed(client)

	docs, err := feed.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.True(t, feed.Loaded())

	// A shrunken listing replaces the old one, no merge
	client.documents = testDocs()[:1]
	docs, err = feed.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "guide.md", docs[0].Filename)
}

func TestDocumentFeed_Refresh_FailureKeepsPreviousListing(t *testing.T) {
	client := &mockKBClient{documents: testDocs()}
	feed := NewDocumentFeed(client)

	_, err := feed.Refresh(context.Background())
	require.NoError(t, err)

	client.listErr = errors.New("connection refused")
	docs, err := feed.Refresh(context.Background())
	require.Error(t, err)
	assert.Len(t, docs, 2, "failed refresh returns the retained listing")
	assert.Len(t, feed.Documents(), 2)
	assert.True(t, feed.Loaded())
}

func TestDocumentFeed_Refresh_InitialFailure(t *testing.T) {
	client := &mockKBClient{listErr: errors.New("boom")}
	feed := NewDocumentFeed(client)

	docs, err := feed.Refresh(context.Background())
	require.Error(t, err)
	assert.Empty(t, docs)
	assert.False(t, feed.Loaded())
}

func TestDocumentFeed_Documents_ReturnsCopy(t *testing.T) {
	client := &mockKBClient{documents: testDocs()}
	feed := NewDocumentFeed(client)

	_, err := feed.Refresh(context.Background())
	require.NoError(t, err)

	docs := feed.Documents()
	docs[0].Filename = "mutated"
	assert.Equal(t, "guide.md", feed.Documents()[0].Filename)
}

func TestDocumentFeed_URLBuilders(t *testing.T) {
	feed := NewDocumentFeed(&mockKBClient{})

	assert.Equal(t, "http://localhost:8000/download/a.md", feed.DownloadURL("a.md"))
	assert.Equal(t, "http://localhost:8000/view/a.md", feed.ViewURL("a.md"))
}
