// ABOUTME: Main entry point for the CryptoInsight MCP server with stdio transport
// ABOUTME: Initializes the pipeline and serves the RAG tools
package main

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cryptoinsight/insight/internal/config"
	"github.com/cryptoinsight/insight/internal/core"
	"github.com/cryptoinsight/insight/internal/llm"
	"github.com/cryptoinsight/insight/internal/mcp"
	"github.com/cryptoinsight/insight/internal/store"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	fallback := core.FallbackEmbedder{Dimension: cfg.FallbackDimension}
	embedder := core.Embedder(fallback)
	var resolver *llm.Resolver

	if cfg.OpenAIKey != "" {
		client, err := llm.NewClient(cfg)
		if err != nil {
			log.Fatal("initializing OpenAI client", "err", err)
		}
		embedder = core.RemoteEmbedder{Client: client, Fallback: fallback}
		resolver = llm.NewResolver(client, cfg.ChatModel, cfg.FallbackModel)
	} else {
		log.Warn("OPENAI_API_KEY not set, running on deterministic fallbacks")
		resolver = llm.NewResolver(nil, cfg.ChatModel, cfg.FallbackModel)
	}

	pipeline := core.NewPipeline(store.New(), embedder, resolver, cfg.TopK)

	server := mcpserver.NewMCPServer(
		"CryptoInsight RAG",
		"0.1.0",
	)
	mcp.RegisterTools(server, pipeline)

	log.Info("MCP server starting on stdio")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatal("server error", "err", err)
	}
}
