// ABOUTME: Chain-of-thought prompt builders
// ABOUTME: Step-by-step reasoning prompts with visible or hidden reasoning
package core

// PromptPair is a system/user message pair for backends that take the two
// roles separately.
type PromptPair struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// ChainOfThoughtPrompt builds a prompt pair that asks the model to reason
// step by step. With showReasoning the steps appear in the answer;
// without it the model reasons internally and outputs only the result.
func ChainOfThoughtPrompt(userQuestion string, showReasoning bool) PromptPair {
	system := "You are CryptoInsightAI. Think carefully step-by-step internally, " +
		"but only output the final answer without showing your reasoning."
	if showReasoning {
		system = "You are CryptoInsightAI. Think through the problem step-by-step, " +
			"explain your reasoning clearly, and then provide the final answer."
	}

	return PromptPair{System: system, User: userQuestion}
}
