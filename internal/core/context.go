// ABOUTME: Context assembler converts ranked search results into a citation-tagged block
// ABOUTME: Sequential [n] labels deduped by (source, id), sources listed once per key
package core

import (
	"fmt"
	"strings"

	"github.com/cryptoinsight/insight/internal/models"
)

// Placeholders shown when metadata fields are missing.
const (
	unknownSource = "unknown source"
	unknownID     = "-"
)

const (
	emptyContextBody    = "(no relevant context found)"
	emptySourcesBlock   = "(none)"
	unresolvedLabel     = "[?]"
	contextChunkDivider = "\n\n---\n\n"
)

// citationKey identifies a source for dedup. The presence bits keep an
// absent field distinct from an empty string, matching raw-value equality.
type citationKey struct {
	source    string
	hasSource bool
	id        string
	hasID     bool
}

func keyFor(meta map[string]any) citationKey {
	source, hasSource := stringField(meta, models.MetaSource)
	id, hasID := stringField(meta, models.MetaID)
	return citationKey{source: source, hasSource: hasSource, id: id, hasID: hasID}
}

// stringField extracts a metadata field as a string. Missing keys and nil
// values report absent; non-string values are formatted.
func stringField(meta map[string]any, key string) (string, bool) {
	v, ok := meta[key]
	if !ok || v == nil {
		return "", false
	}
	if s, isStr := v.(string); isStr {
		return s, true
	}
	return fmt.Sprintf("%v", v), true
}

func displayOr(value string, present bool, placeholder string) string {
	if !present || value == "" {
		return placeholder
	}
	return value
}

// BuildContext formats ranked search results into the retrieved-context
// block. Citation labels [1], [2], ... are assigned in first-seen order
// per (source, id) key; the Sources block lists each key once, while the
// body renders every chunk, deduped keys sharing one label. The format is
// a user-visible contract: downstream answers cite the bracketed tags.
func BuildContext(results []models.SearchResult) string {
	labels := make(map[citationKey]string)
	var sourceLines []string

	for _, r := range results {
		key := keyFor(r.Metadata)
		if _, seen := labels[key]; seen {
			continue
		}
		label := fmt.Sprintf("[%d]", len(labels)+1)
		labels[key] = label

		src := displayOr(key.source, key.hasSource, unknownSource)
		id := displayOr(key.id, key.hasID, unknownID)
		sourceLines = append(sourceLines, fmt.Sprintf("%s %s (id: %s)", label, src, id))
	}

	var parts []string
	for _, r := range results {
		tag, ok := labels[keyFor(r.Metadata)]
		if !ok {
			tag = unresolvedLabel
		}
		content, _ := stringField(r.Metadata, models.MetaContent)
		snippet := strings.TrimSpace(content)
		header := fmt.Sprintf("%s Score=%.4f", tag, r.Score)
		parts = append(parts, header+"\n"+snippet)
	}

	body := emptyContextBody
	if len(parts) > 0 {
		body = strings.Join(parts, contextChunkDivider)
	}

	sources := emptySourcesBlock
	if len(sourceLines) > 0 {
		sources = strings.Join(sourceLines, "\n")
	}

	return fmt.Sprintf("Retrieved Context (top matches):\n\n%s\n\nSources:\n%s", body, sources)
}
