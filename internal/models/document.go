// ABOUTME: Document models for vector storage and semantic search
// ABOUTME: Defines DocumentRecord, SearchResult, and metadata key constants
package models

// Recognized metadata keys. Callers may attach arbitrary extra fields;
// these are the ones the retrieval core interprets.
const (
	MetaID      = "id"
	MetaSource  = "source"
	MetaContent = "content"
)

// DocumentRecord is one stored knowledge chunk: an embedding paired with
// its metadata. Records are append-only; replacing a document means adding
// a new record.
type DocumentRecord struct {
	Embedding []float64      `json:"embedding"`
	Metadata  map[string]any `json:"metadata"`
}

// SearchResult is a transient query result. Metadata is a read-only view
// into the matching record; the store owns the record memory.
type SearchResult struct {
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}
