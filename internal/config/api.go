package config

import (
	"fmt"
	"os"

	"newsdesk/pkg/formatting"
	"newsdesk/pkg/middleware"
	"newsdesk/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "NEWSDESK_CORS_ENABLED",
	Origins:          "NEWSDESK_CORS_ORIGINS",
	AllowedMethods:   "NEWSDESK_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "NEWSDESK_CORS_ALLOWED_HEADERS",
	AllowCredentials: "NEWSDESK_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "NEWSDESK_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "NEWSDESK_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "NEWSDESK_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, CORS, and pagination settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Pagination  pagination.Config     `toml:"pagination"`
}

// MaxBodySizeBytes returns the request body cap in bytes.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 2 * 1024 * 1024 // 2MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "2MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("NEWSDESK_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("NEWSDESK_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
