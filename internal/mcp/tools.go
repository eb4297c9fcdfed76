// ABOUTME: MCP tool definitions and registration for the CryptoInsight server
// ABOUTME: Defines JSON schemas for the add/search/ask/clear tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cryptoinsight/insight/internal/core"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, pipeline *core.Pipeline) *Handlers {
	handlers := &Handlers{pipeline: pipeline}

	// 1. add_document - embed and store a knowledge chunk
	server.AddTool(mcp.Tool{
		Name:        "add_document",
		Description: "Add a text chunk to the knowledge base. The chunk is embedded and stored with its metadata for retrieval.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Document chunk text (short passages work best)",
				},
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Optional stable document identifier",
				},
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Optional origin label (filename, URL, dataset name)",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.AddDocument)

	// 2. search_documents - raw top-k similarity search
	server.AddTool(mcp.Tool{
		Name:        "search_documents",
		Description: "Search the knowledge base by semantic similarity and return the top matching chunks with scores.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query text",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: configured top-k)",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchDocuments)

	// 3. ask - full RAG query returning prompt and answer
	server.AddTool(mcp.Tool{
		Name:        "ask",
		Description: "Answer a question with retrieval-augmented generation over the knowledge base. Works fully offline via deterministic fallbacks.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "User question",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Number of retrieved chunks (default: configured top-k)",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Desired output format (e.g. Markdown, JSON)",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.Ask)

	// 4. clear_store - empty the knowledge base
	server.AddTool(mcp.Tool{
		Name:        "clear_store",
		Description: "Remove every document from the in-memory knowledge base.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ClearStore)

	return handlers
}
