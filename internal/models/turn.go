// ABOUTME: Turn represents a single conversation exchange between user and assistant
// ABOUTME: Ordered sequences of turns form the conversation history fed to prompts
package models

// Turn is one user/assistant exchange. History is append-only from the
// caller's perspective; the retrieval core never mutates it.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}
