// ABOUTME: CLI command for raw semantic search over the knowledge base
// ABOUTME: Prints top-k matches with scores as a table or JSON
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cryptoinsight/insight/internal/models"
)

var (
	searchLimit   int
	searchLive    bool
	searchKBFiles []string
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the knowledge base by semantic similarity",
		Long: `Embed the query and list the most similar stored chunks with their
cosine similarity scores.

Examples:
  insight search "proof of work"
  insight search --limit 10 --kb notes/btc.md "smart contracts"
  insight search --format json "consensus"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")
	cmd.Flags().BoolVar(&searchLive, "live", false, "Use the OpenAI embedding backend")
	cmd.Flags().StringSliceVar(&searchKBFiles, "kb", nil, "Knowledge base files (default: built-in demo corpus)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	pipeline, err := newPipeline(searchLive)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := seedKnowledgeBase(ctx, pipeline, searchKBFiles); err != nil {
		return err
	}

	query := args[0]
	embedding := pipeline.Embedder().Embed(ctx, query)
	results := pipeline.Store().Search(embedding, searchLimit)

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No chunks found for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tID\tSOURCE\tCONTENT\n")
	fmt.Fprintf(w, "-----\t--\t------\t-------\n")

	for _, r := range results {
		id := metaString(r.Metadata, models.MetaID, "-")
		source := metaString(r.Metadata, models.MetaSource, "unknown source")
		content := metaString(r.Metadata, models.MetaContent, "")

		fmt.Fprintf(w, "%.4f\t%s\t%s\t%s\n",
			r.Score,
			truncate(id, 20),
			truncate(source, 25),
			truncate(content, 50))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s)\n", len(results))
	}

	return nil
}

// metaString reads a metadata field for display, with a placeholder for
// missing or empty values.
func metaString(meta map[string]any, key, placeholder string) string {
	v, ok := meta[key]
	if !ok || v == nil {
		return placeholder
	}
	s := fmt.Sprintf("%v", v)
	if s == "" {
		return placeholder
	}
	return s
}
