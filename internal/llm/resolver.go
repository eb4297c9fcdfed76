// ABOUTME: Resolver turns a finished prompt into an answer string
// ABOUTME: Preferred model, one alternate-model retry, then the offline mock
package llm

import (
	"context"
	"fmt"

	"github.com/cryptoinsight/insight/internal/models"
)

// Generator is the generation backend contract. *Client satisfies it;
// tests substitute stubs.
type Generator interface {
	ChatCompletion(ctx context.Context, model, system, user string, cfg models.GenerationConfig) (string, error)
}

// Resolver resolves prompts against a generation backend. It is total: a
// missing or failing backend degrades to the rule-based mock, never to an
// error.
type Resolver struct {
	gen            Generator
	preferredModel string
	fallbackModel  string
}

// NewResolver builds a Resolver. gen may be nil, in which case every
// resolve uses the offline mock.
func NewResolver(gen Generator, preferredModel, fallbackModel string) *Resolver {
	return &Resolver{
		gen:            gen,
		preferredModel: preferredModel,
		fallbackModel:  fallbackModel,
	}
}

// Resolve sends the prompt to the backend and returns the answer text.
// On failure of the preferred model it retries once with the alternate
// model, then substitutes the mock answer with a failure notice.
func (r *Resolver) Resolve(ctx context.Context, prompt, persona string, cfg models.GenerationConfig) string {
	if r == nil || r.gen == nil {
		return MockGenerate(prompt)
	}

	answer, err := r.gen.ChatCompletion(ctx, r.preferredModel, persona, prompt, cfg)
	if err == nil {
		return answer
	}

	if r.fallbackModel != "" && r.fallbackModel != r.preferredModel {
		answer, err = r.gen.ChatCompletion(ctx, r.fallbackModel, persona, prompt, cfg)
		if err == nil {
			return answer
		}
	}

	return fmt.Sprintf("[generation backend unavailable: %v]\n\n%s", err, MockGenerate(prompt))
}
