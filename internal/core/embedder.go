// ABOUTME: Embedder converts text to fixed-length vectors
// ABOUTME: Remote OpenAI path with a deterministic hash-seeded offline fallback
package core

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
)

// FallbackDimension is the vector length of offline pseudo-embeddings.
const FallbackDimension = 128

// Embedder converts text to an embedding vector. Implementations are
// total: they always return a vector, degrading to the deterministic
// fallback rather than failing.
type Embedder interface {
	Embed(ctx context.Context, text string) []float64
}

// EmbeddingClient is the remote embedding backend contract. *llm.Client
// satisfies it.
type EmbeddingClient interface {
	CreateEmbedding(ctx context.Context, text string) ([]float64, error)
}

// FallbackEmbedding derives a deterministic pseudo-embedding from text:
// the first 32 bits of its SHA-256 digest seed a PCG generator that draws
// dim uniform values in [-1, 1]. Identical text reproduces an identical
// vector across runs with no network or credential dependency.
func FallbackEmbedding(text string, dim int) []float64 {
	if dim <= 0 {
		dim = FallbackDimension
	}

	digest := sha256.Sum256([]byte(text))
	seed := binary.BigEndian.Uint32(digest[:4])

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = rng.Float64()*2.0 - 1.0
	}
	return vec
}

// FallbackEmbedder produces offline pseudo-embeddings only.
type FallbackEmbedder struct {
	// Dimension of produced vectors; 0 means FallbackDimension.
	Dimension int
}

func (e FallbackEmbedder) Embed(_ context.Context, text string) []float64 {
	return FallbackEmbedding(text, e.Dimension)
}

// RemoteEmbedder prefers the remote backend and silently substitutes the
// deterministic fallback when the backend is missing or fails. Backend
// unavailability never reaches the caller.
type RemoteEmbedder struct {
	Client   EmbeddingClient
	Fallback FallbackEmbedder
}

func (e RemoteEmbedder) Embed(ctx context.Context, text string) []float64 {
	if e.Client != nil {
		if vec, err := e.Client.CreateEmbedding(ctx, text); err == nil {
			return vec
		}
	}
	return e.Fallback.Embed(ctx, text)
}
