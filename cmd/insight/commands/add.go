// ABOUTME: CLI command to embed a document chunk
// ABOUTME: Demonstrates the add-document path from text, file, or stdin
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cryptoinsight/insight/internal/core"
	"github.com/cryptoinsight/insight/internal/models"
)

var (
	addID     string
	addSource string
	addFile   string
	addLive   bool
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Embed a document chunk and report its stored metadata",
		Long: `Embed a text chunk and store it in a fresh in-memory knowledge base.
The store lives for one process, so this command demonstrates the
embed-and-store path: it prints the record's metadata and vector size.

Examples:
  insight add "Bitcoin halving occurs roughly every four years."
  insight add --id btc_halving --source kb/bitcoin.md --file notes.txt
  cat chunk.txt | insight add`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addID, "id", "", "Stable document identifier")
	cmd.Flags().StringVar(&addSource, "source", "", "Origin label (filename, URL, dataset name)")
	cmd.Flags().StringVar(&addFile, "file", "", "Read chunk text from file")
	cmd.Flags().BoolVar(&addLive, "live", false, "Use the OpenAI embedding backend")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	var text string
	if addFile != "" {
		data, err := os.ReadFile(addFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no text provided")
	}

	pipeline, err := newPipeline(addLive)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pipeline.AddDocument(ctx, text, core.DocumentOptions{ID: addID, Source: addSource})

	// Show what the query side will see for this chunk.
	embedding := pipeline.Embedder().Embed(ctx, text)
	results := pipeline.Store().Search(embedding, 1)
	if len(results) == 0 {
		return fmt.Errorf("stored document not retrievable")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Stored document (%d dimensions)\n", len(embedding))
		fmt.Fprintf(cmd.OutOrStdout(), "  id:      %v\n", results[0].Metadata[models.MetaID])
		if src, ok := results[0].Metadata[models.MetaSource]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "  source:  %v\n", src)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  content: %s\n", truncate(text, 60))
	}

	return nil
}
