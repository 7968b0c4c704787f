package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragbase/kbchat/internal/core/domain"
)

var (
	documentsJSON bool
	documentsURLs bool
)

var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "List the documents in the knowledge base",
	Long: `Fetches and prints the current document listing from the server.

Each entry shows the filename and its last-modified time. Use --urls
to include download links.`,
	RunE: runDocuments,
}

func init() {
	documentsCmd.Flags().BoolVar(&documentsJSON, "json", false, "output the listing as JSON")
	documentsCmd.Flags().BoolVar(&documentsURLs, "urls", false, "include download URLs")
	rootCmd.AddCommand(documentsCmd)
}

// documentOutput is the JSON shape of one listing entry.
type documentOutput struct {
	Filename     string `json:"filename"`
	Path         string `json:"path,omitempty"`
	LastModified string `json:"last_modified"`
	DownloadURL  string `json:"download_url,omitempty"`
}

func runDocuments(cmd *cobra.Command, _ []string) error {
	if documentSvc == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentSvc.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if documentsJSON {
		return outputDocumentsJSON(cmd, docs)
	}

	return outputDocumentsTable(cmd, docs)
}

func outputDocumentsJSON(cmd *cobra.Command, docs []domain.Document) error {
	out := make([]documentOutput, 0, len(docs))
	for i := range docs {
		entry := documentOutput{
			Filename:     docs[i].Filename,
			Path:         docs[i].Path,
			LastModified: docs[i].DisplayTime(),
		}
		if documentsURLs {
			entry.DownloadURL = documentSvc.DownloadURL(docs[i].Filename)
		}
		out = append(out, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputDocumentsTable(cmd *cobra.Command, docs []domain.Document) error {
	if len(docs) == 0 {
		cmd.Println("No documents in the knowledge base.")
		return nil
	}

	cmd.Printf("Documents (%d):\n\n", len(docs))
	for i := range docs {
		cmd.Printf("  %s  %s\n", docs[i].DisplayTime(), docs[i].Filename)
		if documentsURLs {
			cmd.Printf("      %s\n", documentSvc.DownloadURL(docs[i].Filename))
		}
	}

	return nil
}
