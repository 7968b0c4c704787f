package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragbase/kbchat/internal/adapters/driving/mcp"
	"github.com/ragbase/kbchat/internal/core/services"
	"github.com/ragbase/kbchat/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can
be used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  kbchat mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  kbchat mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "kbchat": {
        "command": "/path/to/kbchat",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	// The server is long-running, so keep the document listing warm
	// with a background resync.
	poller := services.NewPoller(documentSvc, appSettings.SyncInterval)
	pollCtx, pollCancel := context.WithCancel(cmd.Context())
	defer pollCancel()

	go func() {
		// Start blocks for the life of the loop. Errors are logged, the
		// MCP server keeps serving either way.
		if err := poller.Start(pollCtx); err != nil && err != context.Canceled {
			logger.Warn("document poller stopped: %v", err)
		}
	}()
	defer func() {
		if err := poller.Stop(); err != nil {
			logger.Warn("poller stop error: %v", err)
		}
	}()

	ports := &mcp.Ports{
		Query:     querySvc,
		Documents: documentSvc,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
