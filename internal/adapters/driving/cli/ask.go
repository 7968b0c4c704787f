package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ragbase/kbchat/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask the knowledge base a single question",
	Long: `Submits one query and prints the answer with its source documents.

The query can be given as arguments or piped on stdin:

  kbchat ask "What is the refund policy?"
  echo "What is the refund policy?" | kbchat ask`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(askCmd)
}

// askOutput is the JSON shape of a one-shot result.
type askOutput struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	if querySvc == nil {
		return errors.New("query service not configured")
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		var err error
		text, err = readStdinQuery(cmd)
		if err != nil {
			return err
		}
	}

	result, err := querySvc.Ask(cmd.Context(), text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			return errors.New("no query given")
		}
		return fmt.Errorf("query failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, result)
	}

	return outputAskText(cmd, result)
}

// readStdinQuery reads a piped query. An interactive terminal with no
// arguments is an error rather than a silent hang.
func readStdinQuery(cmd *cobra.Command) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no query given (pass it as an argument or pipe it on stdin)")
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no query given")
	}
	return text, nil
}

func outputAskJSON(cmd *cobra.Command, result *domain.QueryResult) error {
	data, err := json.MarshalIndent(askOutput{
		Answer:  result.Content,
		Sources: result.Sources,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAskText(cmd *cobra.Command, result *domain.QueryResult) error {
	// Colour only when writing to a terminal
	useColour := term.IsTerminal(int(os.Stdout.Fd()))

	answer := result.Content
	if useColour {
		answer = color.New(color.FgHiWhite).Sprint(answer)
	}
	cmd.Println(answer)

	if len(result.Sources) > 0 {
		cmd.Println()
		label := "Sources:"
		if useColour {
			label = color.New(color.FgCyan, color.Bold).Sprint(label)
		}
		cmd.Println(label)
		for _, src := range result.Sources {
			cmd.Printf("  - %s\n", src)
		}
	}

	return nil
}
