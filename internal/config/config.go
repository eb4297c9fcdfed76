// ABOUTME: Centralized configuration for the CryptoInsight toolkit
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the retrieval pipeline and backends
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	FallbackModel  string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	TopK              int
	FallbackDimension int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		ChatModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		FallbackModel:     getEnv("OPENAI_FALLBACK_MODEL", "gpt-4o"),
		EmbeddingModel:    getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:           getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:        getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		TopK:              getEnvInt("RAG_TOP_K", 3),
		FallbackDimension: getEnvInt("FALLBACK_DIMENSION", 128),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("RAG_TOP_K must be positive, got %d", c.TopK)
	}
	if c.FallbackDimension <= 0 {
		return fmt.Errorf("FALLBACK_DIMENSION must be positive, got %d", c.FallbackDimension)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
