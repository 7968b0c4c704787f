// Package cli provides the command-line interface for kbchat.
// It implements a driving adapter following hexagonal architecture
// principles.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragbase/kbchat/internal/adapters/driven/api"
	"github.com/ragbase/kbchat/internal/adapters/driven/config/file"
	"github.com/ragbase/kbchat/internal/adapters/driven/storage/sqlite"
	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driving"
	"github.com/ragbase/kbchat/internal/core/services"
	"github.com/ragbase/kbchat/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagServerURL string
	flagConfigDir string
)

// Services injected into commands. Tests replace these with fakes via
// SetServices; normal runs populate them in bootstrap.
var (
	querySvc    driving.QueryService
	chatSession driving.ChatSession
	documentSvc driving.DocumentService
	actionSvc   driving.ActionService
	stateReader driving.StateReader
	stateStore  *sqlite.StateStore
	configStore *file.ConfigStore
	appSettings domain.Settings
)

var rootCmd = &cobra.Command{
	Use:   "kbchat",
	Short: "Chat with your knowledge base",
	Long: `kbchat is a terminal client for a knowledge base service.

It submits natural-language queries, shows answers with their source
documents, and keeps a live listing of the documents the knowledge
base has indexed.`,
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation launches the interactive UI
		return runChat(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "knowledge base server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.kbchat)")
}

// bootstrap wires the default adapters and services. Injected fakes
// are left alone so tests can run commands without a server.
func bootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if chatSession != nil && documentSvc != nil {
		return nil
	}

	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store

	settings := services.LoadSettings(store)
	if flagServerURL != "" {
		settings.ServerURL = flagServerURL
	}
	if flagVerbose {
		settings.Verbose = true
		logger.SetVerbose(true)
	}
	appSettings = settings

	client, err := api.NewClient(settings.ServerURL)
	if err != nil {
		return fmt.Errorf("configuring API client: %w", err)
	}

	query := services.NewQueryService(client)
	querySvc = query
	chatSession = services.NewChatSession(query)
	documentSvc = services.NewDocumentFeed(client)
	actionSvc = services.NewActionService()

	db, err := sqlite.NewStateStore(flagConfigDir)
	if err != nil {
		// The state store is diagnostic only, the client still works
		// without it.
		logger.Warn("state store unavailable: %v", err)
	} else {
		stateStore = db
		stateReader = db
	}

	logger.Debug("bootstrap complete: server=%s", settings.ServerURL)
	return nil
}

// SetServices injects service implementations, replacing the default
// wiring. Intended for tests.
func SetServices(
	query driving.QueryService,
	session driving.ChatSession,
	documents driving.DocumentService,
	actions driving.ActionService,
	state driving.StateReader,
) {
	querySvc = query
	chatSession = session
	documentSvc = documents
	actionSvc = actions
	stateReader = state
}

// ResetServices clears injected services. Intended for tests.
func ResetServices() {
	querySvc = nil
	chatSession = nil
	documentSvc = nil
	actionSvc = nil
	stateReader = nil
	stateStore = nil
	configStore = nil
}

// RootCmd returns the root command. Intended for tests.
func RootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if stateStore != nil {
			if err := stateStore.Close(); err != nil {
				logger.Warn("closing state store: %v", err)
			}
		}
	}()
	return rootCmd.Execute()
}
