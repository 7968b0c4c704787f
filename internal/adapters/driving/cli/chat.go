package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ragbase/kbchat/internal/adapters/driven/config/file"
	"github.com/ragbase/kbchat/internal/adapters/driving/tui"
	"github.com/ragbase/kbchat/internal/core/services"
	"github.com/ragbase/kbchat/internal/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat UI",
	Long: `Launch the interactive terminal user interface.

The UI opens on the chat view. Type a question and press Enter to
submit it; Shift+Enter (or Alt+Enter) inserts a newline instead. The
document listing refreshes itself in the background while the UI is
open.

Controls:
  enter        Submit query
  shift+enter  Insert newline
  esc          Menu / Back
  ctrl+c       Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Panic recovery so terminal corruption comes with a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Pick up config edits while the UI runs. Server URL changes still
	// need a restart; verbosity applies immediately.
	if configStore != nil {
		watchCtx, watchCancel := context.WithCancel(cmd.Context())
		defer watchCancel()

		watcher := file.NewWatcher(configStore)
		watcher.OnReload(func() {
			reloaded := services.LoadSettings(configStore)
			logger.SetVerbose(reloaded.Verbose || flagVerbose)
		})
		go func() {
			if err := watcher.Watch(watchCtx); err != nil && err != context.Canceled {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	ports := &tui.Ports{
		Session:      chatSession,
		Documents:    documentSvc,
		Actions:      actionSvc,
		State:        stateReader,
		SyncInterval: appSettings.SyncInterval,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
