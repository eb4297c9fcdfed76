// ABOUTME: Unit tests for the fallback and remote embedders
// ABOUTME: Verifies determinism, value range, and silent backend degradation
package core

import (
	"context"
	"errors"
	"testing"
)

func TestFallbackEmbedding_Deterministic(t *testing.T) {
	texts := []string{
		"What is Bitcoin?",
		"",
		"Ethereum supports smart contracts.",
	}

	for _, text := range texts {
		first := FallbackEmbedding(text, FallbackDimension)
		second := FallbackEmbedding(text, FallbackDimension)

		if len(first) != FallbackDimension {
			t.Fatalf("len = %d, want %d", len(first), FallbackDimension)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("text %q: value %d differs between runs: %v vs %v",
					text, i, first[i], second[i])
			}
		}
	}
}

func TestFallbackEmbedding_DifferentTextsDiffer(t *testing.T) {
	a := FallbackEmbedding("bitcoin", FallbackDimension)
	b := FallbackEmbedding("ethereum", FallbackDimension)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct texts produced identical fallback vectors")
	}
}

func TestFallbackEmbedding_ValueRange(t *testing.T) {
	vec := FallbackEmbedding("range check", 256)
	for i, v := range vec {
		if v < -1.0 || v > 1.0 {
			t.Errorf("value %d = %v, outside [-1, 1]", i, v)
		}
	}
}

func TestFallbackEmbedding_DefaultDimension(t *testing.T) {
	for _, dim := range []int{0, -5} {
		if got := len(FallbackEmbedding("x", dim)); got != FallbackDimension {
			t.Errorf("dim=%d: len = %d, want %d", dim, got, FallbackDimension)
		}
	}
}

// stubEmbeddingClient returns a fixed vector or an error.
type stubEmbeddingClient struct {
	vec []float64
	err error
}

func (s *stubEmbeddingClient) CreateEmbedding(_ context.Context, _ string) ([]float64, error) {
	return s.vec, s.err
}

func TestRemoteEmbedder_PrefersBackend(t *testing.T) {
	want := []float64{0.1, 0.2, 0.3}
	e := RemoteEmbedder{Client: &stubEmbeddingClient{vec: want}}

	got := e.Embed(context.Background(), "anything")
	if len(got) != 3 || got[0] != 0.1 {
		t.Errorf("Embed = %v, want backend vector %v", got, want)
	}
}

func TestRemoteEmbedder_FallsBackOnError(t *testing.T) {
	e := RemoteEmbedder{Client: &stubEmbeddingClient{err: errors.New("unreachable")}}

	got := e.Embed(context.Background(), "offline text")
	want := FallbackEmbedding("offline text", FallbackDimension)

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("fallback vector differs at %d", i)
		}
	}
}

func TestRemoteEmbedder_NilClientUsesFallback(t *testing.T) {
	e := RemoteEmbedder{}
	got := e.Embed(context.Background(), "no credential")
	if len(got) != FallbackDimension {
		t.Errorf("len = %d, want %d", len(got), FallbackDimension)
	}
}
