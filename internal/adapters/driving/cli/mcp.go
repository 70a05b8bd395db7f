package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driving/mcp"
	"github.com/skilldex-labs/skilldex-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
	Long:  `Commands for running skilldex as an MCP server.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the skill router over MCP",
	Long: `Starts a Model Context Protocol server exposing the skill router to
AI assistants.

The server offers a "route" tool (query in, ranked skills out), a
"load_skill" tool (skill ID in, document text out) and browsable
skill resources. By default it speaks stdio, the transport MCP
clients use when they spawn the server as a subprocess. With --port
it serves streamable HTTP instead.

While the server runs, the skills directory is watched and the
catalog reloads automatically when documents change.

Claude Desktop configuration example:

  {
    "mcpServers": {
      "skilldex": {
        "command": "skilldex",
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
	if routerService == nil {
		return errors.New("router service not configured")
	}
	if contentService == nil {
		return errors.New("content service not configured")
	}
	if err := requireCatalog(); err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("failed to read port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Router:  routerService,
		Content: contentService,
		Catalog: catalogService,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx := cmd.Context()
	watchCorpus(ctx)

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// watchCorpus reloads the catalog whenever the corpus changes on disk.
// Best-effort: without a watcher the server serves the catalog it
// started with.
func watchCorpus(ctx context.Context) {
	if catalogWatcher == nil || catalogService == nil {
		return
	}

	events, err := catalogWatcher.Watch(ctx)
	if err != nil {
		logger.Warn("Corpus watch unavailable: %v", err)
		return
	}

	go func() {
		for range events {
			// Reload keeps the previous catalog when the new corpus
			// is broken, so a bad edit never takes the server down.
			_ = catalogService.Reload(ctx) //nolint:errcheck // Logged by the service
		}
	}()
}
