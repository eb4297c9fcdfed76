// ABOUTME: CLI command to run a RAG query
// ABOUTME: Embeds the question, retrieves context, and prints prompt and answer
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cryptoinsight/insight/internal/core"
)

var (
	askTopK       int
	askFormat     string
	askLive       bool
	askShowPrompt bool
	askKBFiles    []string
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question with retrieval-augmented generation",
		Long: `Answer a question using the RAG pipeline: the question is embedded,
the top-k most similar chunks are retrieved, and a citation-tagged prompt
is sent to the generation backend (or the offline mock).

Examples:
  insight ask "What consensus does Bitcoin use?"
  insight ask --top-k 5 --answer-format Markdown "What is Ethereum?"
  insight ask --kb notes/btc.md --live "Explain halving"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().IntVar(&askTopK, "top-k", core.DefaultTopK, "Number of retrieved chunks")
	cmd.Flags().StringVar(&askFormat, "answer-format", "Markdown", "Requested answer format")
	cmd.Flags().BoolVar(&askLive, "live", false, "Use the OpenAI backend (requires OPENAI_API_KEY)")
	cmd.Flags().BoolVar(&askShowPrompt, "show-prompt", false, "Print the composed prompt")
	cmd.Flags().StringSliceVar(&askKBFiles, "kb", nil, "Knowledge base files (default: built-in demo corpus)")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	// An unset flag defers to the configured default (RAG_TOP_K).
	topK := 0
	if cmd.Flags().Changed("top-k") {
		if err := validatePositiveInt(askTopK, "top-k"); err != nil {
			return err
		}
		topK = askTopK
	}

	pipeline, err := newPipeline(askLive)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := seedKnowledgeBase(ctx, pipeline, askKBFiles); err != nil {
		return err
	}

	result := pipeline.Query(ctx, args[0], core.QueryOptions{
		TopK:         topK,
		OutputFormat: askFormat,
	})

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if askShowPrompt {
		fmt.Fprintf(cmd.OutOrStdout(), "--- Built Prompt ---\n\n%s\n\n", result.Prompt)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "--- Answer ---\n\n%s\n", result.Answer)

	return nil
}
