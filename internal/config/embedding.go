package config

import (
	"fmt"
	"os"
)

const (
	EnvEmbeddingBaseURL = "NEWSDESK_EMBEDDING_BASE_URL"
	EnvEmbeddingModel   = "NEWSDESK_EMBEDDING_MODEL"
	EnvEmbeddingToken   = "NEWSDESK_EMBEDDING_TOKEN"
)

// EmbeddingConfig holds parameters for the content embedding endpoint
// used by the publish handler.
type EmbeddingConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	Token   string `toml:"token"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *EmbeddingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *EmbeddingConfig) Merge(overlay *EmbeddingConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
}

func (c *EmbeddingConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "text-embedding-3-small"
	}
}

func (c *EmbeddingConfig) loadEnv() {
	if v := os.Getenv(EnvEmbeddingBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvEmbeddingModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvEmbeddingToken); v != "" {
		c.Token = v
	}
}

func (c *EmbeddingConfig) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url required")
	}
	return nil
}
