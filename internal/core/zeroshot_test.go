// ABOUTME: Tests for the zero-shot answer helper
// ABOUTME: Verifies prompt passthrough and offline resolution

package core

import (
	"context"
	"strings"
	"testing"

	"github.com/cryptoinsight/insight/internal/llm"
	"github.com/cryptoinsight/insight/internal/models"
)

func TestZeroShotAnswer_Offline(t *testing.T) {
	resolver := llm.NewResolver(nil, "gpt-4o-mini", "gpt-4o")

	prompt, answer := ZeroShotAnswer(context.Background(), resolver,
		"What is Bitcoin?", "", "Markdown", "", models.GenerationConfig{})

	if !strings.Contains(prompt, "USER QUESTION: What is Bitcoin?") {
		t.Errorf("Prompt missing user question:\n%s", prompt)
	}
	if !strings.Contains(prompt, "OUTPUT FORMAT: Markdown") {
		t.Errorf("Prompt missing output format:\n%s", prompt)
	}
	if !strings.Contains(answer, "decentralized digital currency") {
		t.Errorf("Expected canned bitcoin answer, got %q", answer)
	}
}
