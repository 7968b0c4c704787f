package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragbase/kbchat/internal/core/domain"
)

func TestDocumentsCmd_Use(t *testing.T) {
	assert.Equal(t, "documents", documentsCmd.Use)
	assert.Contains(t, documentsCmd.Aliases, "docs")
}

func TestDocumentsCmd_ListsDocuments(t *testing.T) {
	cleanup := setupTestServices(nil, &fakeDocumentService{docs: []domain.Document{
		{Filename: "guide.md", LastModified: time.Unix(1700000000, 0)},
		{Filename: "policy.pdf"},
	}}, nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"documents"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Documents (2)")
	assert.Contains(t, buf.String(), "guide.md")
	assert.Contains(t, buf.String(), "policy.pdf")
}

func TestDocumentsCmd_EmptyListing(t *testing.T) {
	cleanup := setupTestServices(nil, &fakeDocumentService{}, nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"documents"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents")
}

func TestDocumentsCmd_JSONWithURLs(t *testing.T) {
	cleanup := setupTestServices(nil, &fakeDocumentService{docs: []domain.Document{
		{Filename: "guide.md", Path: "/kb/guide.md", LastModified: time.Unix(1700000000, 0)},
	}}, nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"documents", "--json", "--urls"})
	defer func() {
		rootCmd.SetArgs(nil)
		documentsJSON = false
		documentsURLs = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var out []documentOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "guide.md", out[0].Filename)
	assert.Equal(t, "http://localhost:8000/download/guide.md", out[0].DownloadURL)
}

func TestDocumentsCmd_ListingFailure(t *testing.T) {
	cleanup := setupTestServices(nil, &fakeDocumentService{err: errors.New("server down")}, nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"documents"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server down")
}
