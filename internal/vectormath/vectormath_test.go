// ABOUTME: Unit tests for similarity primitives
// ABOUTME: Covers cosine bounds, zero-safety, and L2/dot edge cases
package vectormath

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
		delta    float64
	}{
		{
			name:     "identical vectors",
			a:        []float64{1.0, 2.0, 3.0},
			b:        []float64{1.0, 2.0, 3.0},
			expected: 1.0,
			delta:    1e-9,
		},
		{
			name:     "orthogonal vectors",
			a:        []float64{1.0, 0.0},
			b:        []float64{0.0, 1.0},
			expected: 0.0,
			delta:    1e-9,
		},
		{
			name:     "opposite vectors",
			a:        []float64{1.0, 2.0},
			b:        []float64{-1.0, -2.0},
			expected: -1.0,
			delta:    1e-9,
		},
		{
			name:     "zero vector",
			a:        []float64{0.0, 0.0, 0.0},
			b:        []float64{1.0, 2.0, 3.0},
			expected: 0.0,
			delta:    0,
		},
		{
			name:     "mismatched lengths",
			a:        []float64{1.0, 2.0},
			b:        []float64{1.0, 2.0, 3.0},
			expected: 0.0,
			delta:    0,
		},
		{
			name:     "both empty",
			a:        nil,
			b:        nil,
			expected: 0.0,
			delta:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestCosineBounds(t *testing.T) {
	pairs := [][2][]float64{
		{{0.5, -0.3, 0.8}, {0.1, 0.9, -0.4}},
		{{10, 20, 30}, {1, 2, 3}},
		{{-1, -1}, {1, 1}},
		{{0.001, 0}, {1000, 0}},
	}

	for _, p := range pairs {
		sim := Cosine(p[0], p[1])
		if sim < -1.0-1e-9 || sim > 1.0+1e-9 {
			t.Errorf("Cosine(%v, %v) = %v, outside [-1, 1]", p[0], p[1], sim)
		}
	}
}

func TestL2Distance(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0.0},
		{"unit apart", []float64{0, 0}, []float64{0, 1}, 1.0},
		{"pythagorean", []float64{0, 0}, []float64{3, 4}, 5.0},
		{"mismatched lengths", []float64{1, 2}, []float64{1, 2, 3}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := L2Distance(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("L2Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
	}{
		{"basic", []float64{1, 2, 3}, []float64{4, 5, 6}, 32.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"mismatched lengths", []float64{1}, []float64{1, 2}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Dot(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
