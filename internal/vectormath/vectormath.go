// ABOUTME: Similarity primitives for embedding vectors
// ABOUTME: Cosine, Euclidean (L2) distance, and dot product with total edge-case behavior
package vectormath

import "math"

// Cosine returns the cosine similarity between a and b, in [-1, 1].
// Mismatched lengths or a zero-norm vector score 0.0; comparisons are
// never an error.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// L2Distance returns the Euclidean distance between a and b. Lower is more
// similar. Mismatched lengths return 0, keeping the same never-error
// posture as Cosine.
func L2Distance(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of a and b. Higher is more similar.
// Mismatched lengths return 0.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}
