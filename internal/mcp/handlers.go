// ABOUTME: MCP tool handler implementations for the CryptoInsight server
// ABOUTME: Tool handlers delegate to the RAG pipeline and return JSON results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cryptoinsight/insight/internal/core"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	pipeline *core.Pipeline
}

// AddDocument handles the add_document tool
func (h *Handlers) AddDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	opts := core.DocumentOptions{
		ID:     request.GetString("id", ""),
		Source: request.GetString("source", ""),
	}
	h.pipeline.AddDocument(ctx, text, opts)

	response := map[string]interface{}{
		"stored":    true,
		"documents": h.pipeline.Store().Len(),
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchDocuments handles the search_documents tool
func (h *Handlers) SearchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	maxResults := request.GetInt("max_results", h.pipeline.TopK())

	embedding := h.pipeline.Embedder().Embed(ctx, query)
	results := h.pipeline.Store().Search(embedding, maxResults)

	response := map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// Ask handles the ask tool
func (h *Handlers) Ask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	result := h.pipeline.Query(ctx, question, core.QueryOptions{
		TopK:         request.GetInt("top_k", 0),
		OutputFormat: request.GetString("format", ""),
	})

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ClearStore handles the clear_store tool
func (h *Handlers) ClearStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.pipeline.Store().Clear()

	response := map[string]interface{}{"cleared": true}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
