// ABOUTME: CLI command comparing two texts with similarity primitives
// ABOUTME: Embeds both texts and prints cosine, L2 distance, and dot product
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cryptoinsight/insight/internal/vectormath"
)

var similarityLive bool

// NewSimilarityCmd creates the similarity command
func NewSimilarityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similarity <text-a> <text-b>",
		Short: "Compare two texts with embedding similarity measures",
		Long: `Embed both texts (offline fallback unless --live) and print cosine
similarity, Euclidean (L2) distance, and dot product.

Examples:
  insight similarity "Bitcoin mining" "Proof-of-Work consensus"
  insight similarity --live "BTC" "weather in Paris"`,
		Args: cobra.ExactArgs(2),
		RunE: runSimilarity,
	}

	cmd.Flags().BoolVar(&similarityLive, "live", false, "Use the OpenAI embedding backend")

	return cmd
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	pipeline, err := newPipeline(similarityLive)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a := pipeline.Embedder().Embed(ctx, args[0])
	b := pipeline.Embedder().Embed(ctx, args[1])

	fmt.Fprintf(cmd.OutOrStdout(), "[Cosine] %.4f\n", vectormath.Cosine(a, b))
	fmt.Fprintf(cmd.OutOrStdout(), "[L2]     %.2f\n", vectormath.L2Distance(a, b))
	fmt.Fprintf(cmd.OutOrStdout(), "[Dot]    %.2f\n", vectormath.Dot(a, b))

	return nil
}
