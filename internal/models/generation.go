// ABOUTME: GenerationConfig holds sampling parameters for the generation backend
// ABOUTME: Explicit named fields replace an open-ended parameter map
package models

// GenerationConfig carries the sampling knobs forwarded to the generation
// backend. Each field is optional; nil means "backend default".
type GenerationConfig struct {
	// Temperature controls randomness (low = factual, high = creative).
	Temperature *float32 `json:"temperature,omitempty"`
	// TopK restricts sampling to the K most likely tokens. Not every
	// backend supports it; the OpenAI adapter ignores it.
	TopK *int `json:"top_k,omitempty"`
	// TopP enables nucleus sampling over tokens with cumulative
	// probability >= p.
	TopP *float32 `json:"top_p,omitempty"`
	// MaxTokens caps the response length when > 0.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// Float32 returns a pointer to v, for building configs inline.
func Float32(v float32) *float32 { return &v }

// Int returns a pointer to v, for building configs inline.
func Int(v int) *int { return &v }
