// ABOUTME: MCP command starts a Model Context Protocol server
// ABOUTME: Exposes the RAG pipeline as tools over stdio for LLM agents
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/cryptoinsight/insight/internal/mcp"
)

var mcpKBFiles []string

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Run the toolkit as an MCP (Model Context Protocol) server over stdio,
exposing add_document, search_documents, ask, and clear_store tools.

The store is in-memory and lives for the duration of the server process.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by an MCP client)
  insight mcp

  # Preload a knowledge base
  insight mcp --kb notes/btc.md --kb notes/eth.md`,
	}

	cmd.Flags().StringSliceVar(&mcpKBFiles, "kb", nil, "Knowledge base files preloaded at startup")

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Debug("no .env file found", "err", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" && !quiet {
		log.Warn("OPENAI_API_KEY not set, embeddings and generation run on deterministic fallbacks")
	}

	pipeline, err := newPipeline(true)
	if err != nil {
		return fmt.Errorf("initializing pipeline: %w", err)
	}
	if len(mcpKBFiles) > 0 {
		if err := seedKnowledgeBase(cmd.Context(), pipeline, mcpKBFiles); err != nil {
			return err
		}
	}

	server := mcpserver.NewMCPServer(
		"CryptoInsight RAG",
		"0.1.0",
	)
	mcp.RegisterTools(server, pipeline)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Info("MCP server starting on stdio")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Info("shutdown signal received")
		}
		return nil
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
