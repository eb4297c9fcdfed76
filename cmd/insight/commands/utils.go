// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Pipeline construction, knowledge-base seeding, and output utilities
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cryptoinsight/insight/internal/config"
	"github.com/cryptoinsight/insight/internal/core"
	"github.com/cryptoinsight/insight/internal/llm"
	"github.com/cryptoinsight/insight/internal/store"
)

// newPipeline assembles a caller-owned pipeline from config. When live is
// false, or no API key is configured, both embedding and generation run
// on the deterministic offline paths.
func newPipeline(live bool) (*core.Pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fallback := core.FallbackEmbedder{Dimension: cfg.FallbackDimension}
	embedder := core.Embedder(fallback)
	var resolver *llm.Resolver

	if live && cfg.OpenAIKey != "" {
		client, err := llm.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing OpenAI client: %w", err)
		}
		embedder = core.RemoteEmbedder{Client: client, Fallback: fallback}
		resolver = llm.NewResolver(client, cfg.ChatModel, cfg.FallbackModel)
	} else {
		if live && !quiet {
			log.Warn("OPENAI_API_KEY not set, running fully offline")
		}
		resolver = llm.NewResolver(nil, cfg.ChatModel, cfg.FallbackModel)
	}

	return core.NewPipeline(store.New(), embedder, resolver, cfg.TopK), nil
}

// seedKnowledgeBase fills the store from the given files, one chunk per
// blank-line-separated paragraph. With no files it loads the built-in
// demo corpus.
func seedKnowledgeBase(ctx context.Context, p *core.Pipeline, files []string) error {
	if len(files) == 0 {
		seedDemoCorpus(ctx, p)
		return nil
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading knowledge base file: %w", err)
		}

		source := filepath.Base(path)
		n := 0
		for _, chunk := range strings.Split(string(data), "\n\n") {
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}
			n++
			p.AddDocument(ctx, chunk, core.DocumentOptions{
				ID:     fmt.Sprintf("%s#%d", source, n),
				Source: path,
			})
		}
		if verbose {
			log.Info("loaded knowledge base file", "path", path, "chunks", n)
		}
	}
	return nil
}

// seedDemoCorpus loads the two-chunk crypto demo corpus.
func seedDemoCorpus(ctx context.Context, p *core.Pipeline) {
	p.AddDocument(ctx, "Bitcoin (BTC) is a decentralized digital currency launched in 2009. "+
		"It uses Proof-of-Work and has a fixed supply of 21 million coins.",
		core.DocumentOptions{ID: "btc_intro", Source: "kb/bitcoin.md"})
	p.AddDocument(ctx, "Ethereum (ETH) is a programmable blockchain that supports smart contracts "+
		"and decentralized applications. It transitioned to Proof-of-Stake.",
		core.DocumentOptions{ID: "eth_intro", Source: "kb/ethereum.md"})
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
