// ABOUTME: Interactive REPL over the RAG pipeline
// ABOUTME: Keeps conversation history across turns in one process
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cryptoinsight/insight/internal/core"
	"github.com/cryptoinsight/insight/internal/models"
)

var (
	chatLive    bool
	chatKBFiles []string
	chatTopK    int
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive question-answer loop with conversation history",
		Long: `Start an interactive session. Each question runs through the RAG
pipeline with the accumulated conversation history; type 'exit' to quit.

Examples:
  insight chat
  insight chat --kb notes/btc.md --live`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	cmd.Flags().BoolVar(&chatLive, "live", false, "Use the OpenAI backend (requires OPENAI_API_KEY)")
	cmd.Flags().StringSliceVar(&chatKBFiles, "kb", nil, "Knowledge base files (default: built-in demo corpus)")
	cmd.Flags().IntVar(&chatTopK, "top-k", core.DefaultTopK, "Number of retrieved chunks")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	// An unset flag defers to the configured default (RAG_TOP_K).
	topK := 0
	if cmd.Flags().Changed("top-k") {
		if err := validatePositiveInt(chatTopK, "top-k"); err != nil {
			return err
		}
		topK = chatTopK
	}

	pipeline, err := newPipeline(chatLive)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := seedKnowledgeBase(ctx, pipeline, chatKBFiles); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "CryptoInsightAI chat. Type 'exit' to quit.")

	var history []models.Turn
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			fmt.Fprintln(out, "Bye!")
			break
		}

		result := pipeline.Query(ctx, question, core.QueryOptions{
			History: history,
			TopK:    topK,
		})

		fmt.Fprintf(out, "\nAssistant: %s\n", result.Answer)
		history = append(history, models.Turn{User: question, Assistant: result.Answer})
	}

	return scanner.Err()
}
