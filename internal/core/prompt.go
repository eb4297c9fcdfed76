// ABOUTME: Prompt composer merges persona, history, context, and query into one prompt
// ABOUTME: Fixed section order with optional sections skipped when empty
package core

import (
	"fmt"
	"strings"

	"github.com/cryptoinsight/insight/internal/models"
)

// DefaultPersona is the system persona used when the caller supplies none.
const DefaultPersona = "You are CryptoInsightAI, an expert assistant in cryptocurrencies, " +
	"blockchains, and digital assets. " +
	"Provide concise, factually correct answers with helpful explanations. " +
	"Cite credible sources or context when relevant."

// ComposePrompt builds the final prompt string from its sections, in fixed
// order: system persona, conversation history, retrieved context, output
// format, user query. Optional sections are skipped when absent; sections
// are joined with a blank line. Pure string assembly, no I/O.
func ComposePrompt(persona string, history []models.Turn, retrievedContext, outputFormat, userQuery string) string {
	if persona == "" {
		persona = DefaultPersona
	}

	var sections []string

	sections = append(sections, "System: "+persona)

	if len(history) > 0 {
		var b strings.Builder
		for _, turn := range history {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", turn.User, turn.Assistant)
		}
		sections = append(sections, "Conversation History:\n"+strings.TrimSpace(b.String()))
	}

	if retrievedContext != "" {
		sections = append(sections, "Additional Context:\n"+retrievedContext)
	}

	if outputFormat != "" {
		sections = append(sections, fmt.Sprintf("Please respond in %s format.", outputFormat))
	}

	sections = append(sections, "User: "+userQuery)

	return strings.Join(sections, "\n\n")
}
