// ABOUTME: In-memory vector store with exact cosine similarity search
// ABOUTME: Append-only document records with stable top-k ranking
package store

import (
	"sort"
	"sync"

	"github.com/cryptoinsight/insight/internal/models"
	"github.com/cryptoinsight/insight/internal/vectormath"
)

// VectorStore holds embedding/metadata records in memory for the process
// lifetime. It is caller-owned; construct one per pipeline instead of
// sharing a package-level singleton. A single coarse mutex guards all
// operations, which is enough at demo corpus scale.
type VectorStore struct {
	mu      sync.Mutex
	records []models.DocumentRecord
}

// New creates an empty VectorStore.
func New() *VectorStore {
	return &VectorStore{}
}

// Add appends a new record. Dimensionality is not validated against
// existing records; mismatched comparisons score 0 at search time.
func (s *VectorStore) Add(embedding []float64, metadata map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, models.DocumentRecord{
		Embedding: embedding,
		Metadata:  metadata,
	})
}

// Clear empties the store.
func (s *VectorStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// Len returns the number of stored records.
func (s *VectorStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Search scores every record against queryEmbedding with cosine similarity
// and returns the topK highest, descending by score. Records with equal
// scores keep their insertion order. topK <= 0 or an empty store returns
// an empty result set. This is an exact O(n) scan per query.
func (s *VectorStore) Search(queryEmbedding []float64, topK int) []models.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if topK <= 0 || len(s.records) == 0 {
		return []models.SearchResult{}
	}

	results := make([]models.SearchResult, 0, len(s.records))
	for _, rec := range s.records {
		results = append(results, models.SearchResult{
			Score:    vectormath.Cosine(queryEmbedding, rec.Embedding),
			Metadata: rec.Metadata,
		})
	}

	// Stable keeps insertion order on score ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK < len(results) {
		results = results[:topK]
	}
	return results
}
