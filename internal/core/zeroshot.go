// ABOUTME: Zero-shot prompt builder and answer helper
// ABOUTME: SYSTEM/CONSTRAINTS/OUTPUT FORMAT/USER QUESTION sections, no examples
package core

import (
	"context"
	"strings"

	"github.com/cryptoinsight/insight/internal/llm"
	"github.com/cryptoinsight/insight/internal/models"
)

// DefaultTaskInstruction is used when the caller supplies no instruction.
const DefaultTaskInstruction = "Answer the user's question about cryptocurrency concisely."

// resolverPersona is the short system message sent to the generation
// backend; the full persona lives inside the composed prompt itself.
const resolverPersona = "You are CryptoInsightAI. Answer concisely."

// BuildZeroShotPrompt combines system role, task instruction, optional
// constraints and output format, and the user question. Zero-shot: no
// examples, no few-shot context.
func BuildZeroShotPrompt(taskInstruction, userQuestion, outputFormat, constraints string) string {
	if taskInstruction == "" {
		taskInstruction = DefaultTaskInstruction
	}

	pieces := []string{
		"SYSTEM: You are CryptoInsightAI, a concise, accurate crypto assistant.\n" +
			"Task instruction: " + taskInstruction,
	}

	if constraints != "" {
		pieces = append(pieces, "CONSTRAINTS: "+constraints)
	}
	if outputFormat != "" {
		pieces = append(pieces, "OUTPUT FORMAT: "+outputFormat)
	}

	pieces = append(pieces, "USER QUESTION: "+userQuestion)

	return strings.Join(pieces, "\n\n")
}

// ZeroShotAnswer builds a zero-shot prompt and resolves it against the
// backend (or its offline fallback). Returns the built prompt and the
// answer; total, never an error.
func ZeroShotAnswer(ctx context.Context, resolver *llm.Resolver, userQuestion, taskInstruction, outputFormat, constraints string, cfg models.GenerationConfig) (prompt, answer string) {
	prompt = BuildZeroShotPrompt(taskInstruction, userQuestion, outputFormat, constraints)
	answer = resolver.Resolve(ctx, prompt, resolverPersona, cfg)
	return prompt, answer
}
