// ABOUTME: RAG pipeline orchestration: embed, search, assemble, compose, resolve
// ABOUTME: Caller-owned instance bundling store, embedder, and resolver
package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryptoinsight/insight/internal/llm"
	"github.com/cryptoinsight/insight/internal/models"
	"github.com/cryptoinsight/insight/internal/store"
)

// ragTaskInstruction frames the composed prompt for the generation
// backend.
const ragTaskInstruction = "Use the retrieved context to answer accurately. " +
	"Prefer facts from the context; if unknown, say so. " +
	"Cite the chunks using their bracketed tags (e.g., [1], [2]) when relevant."

// DefaultTopK is the retrieval depth when the caller specifies none.
const DefaultTopK = 3

// Pipeline runs queries through retrieval and generation. Construct one
// per store; there is no shared package-level state.
type Pipeline struct {
	store    *store.VectorStore
	embedder Embedder
	resolver *llm.Resolver
	topK     int
}

// NewPipeline creates a Pipeline over the given store. embedder and
// resolver may be offline-only (FallbackEmbedder, nil-backend Resolver);
// every operation stays total either way. topK sets the retrieval depth
// used when a query specifies none; non-positive means DefaultTopK.
func NewPipeline(s *store.VectorStore, embedder Embedder, resolver *llm.Resolver, topK int) *Pipeline {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Pipeline{
		store:    s,
		embedder: embedder,
		resolver: resolver,
		topK:     topK,
	}
}

// Store exposes the underlying vector store for direct search and clear.
func (p *Pipeline) Store() *store.VectorStore { return p.store }

// Embedder exposes the pipeline's embedder, for query-side embedding.
func (p *Pipeline) Embedder() Embedder { return p.embedder }

// TopK returns the configured default retrieval depth.
func (p *Pipeline) TopK() int { return p.topK }

// DocumentOptions carries optional metadata for AddDocument.
type DocumentOptions struct {
	// ID is a stable identifier; empty generates one.
	ID string
	// Source is an origin label (filename, URL, dataset name).
	Source string
	// Extra fields are merged into the record metadata.
	Extra map[string]any
}

// AddDocument embeds a text chunk and stores it with metadata. Short
// passages work best. The record owns its metadata from here on.
func (p *Pipeline) AddDocument(ctx context.Context, text string, opts DocumentOptions) {
	id := opts.ID
	if id == "" {
		id = fmt.Sprintf("doc_%s", uuid.New().String()[:8])
	}

	meta := map[string]any{
		models.MetaID:      id,
		models.MetaContent: text,
	}
	if opts.Source != "" {
		meta[models.MetaSource] = opts.Source
	}
	for k, v := range opts.Extra {
		meta[k] = v
	}

	p.store.Add(p.embedder.Embed(ctx, text), meta)
}

// QueryOptions control a single RAG query.
type QueryOptions struct {
	History      []models.Turn
	TopK         int
	OutputFormat string
	Generation   models.GenerationConfig
}

// Result is the (prompt, answer) pair a query produces, plus the raw
// retrieval results for callers that display them.
type Result struct {
	Prompt  string                `json:"prompt"`
	Answer  string                `json:"answer"`
	Results []models.SearchResult `json:"results"`
}

// Query runs userQuery through the full pipeline: embed the query, search
// top-k, build the citation-tagged context, compose the dynamic prompt,
// frame it zero-shot, and resolve an answer. Total: backend failures
// degrade to deterministic fallbacks, never errors.
func (p *Pipeline) Query(ctx context.Context, userQuery string, opts QueryOptions) Result {
	topK := opts.TopK
	if topK <= 0 {
		topK = p.topK
	}

	queryEmbedding := p.embedder.Embed(ctx, userQuery)
	results := p.store.Search(queryEmbedding, topK)

	retrievedContext := BuildContext(results)
	dynamicPrompt := ComposePrompt(DefaultPersona, opts.History, retrievedContext, opts.OutputFormat, userQuery)

	prompt := BuildZeroShotPrompt(ragTaskInstruction, dynamicPrompt, opts.OutputFormat, "")
	answer := p.resolver.Resolve(ctx, prompt, resolverPersona, opts.Generation)

	return Result{
		Prompt:  prompt,
		Answer:  answer,
		Results: results,
	}
}
