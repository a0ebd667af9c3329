package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvWorkflowCollaboratorTimeout = "NEWSDESK_WORKFLOW_COLLABORATOR_TIMEOUT"
	EnvWorkflowBatchLimit          = "NEWSDESK_WORKFLOW_BATCH_LIMIT"
)

// WorkflowConfig holds editorial workflow parameters.
type WorkflowConfig struct {
	CollaboratorTimeout string `toml:"collaborator_timeout"`
	BatchLimit          int    `toml:"batch_limit"`
}

// CollaboratorTimeoutDuration returns CollaboratorTimeout as a time.Duration.
func (c *WorkflowConfig) CollaboratorTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.CollaboratorTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.CollaboratorTimeout != "" {
		c.CollaboratorTimeout = overlay.CollaboratorTimeout
	}
	if overlay.BatchLimit != 0 {
		c.BatchLimit = overlay.BatchLimit
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.CollaboratorTimeout == "" {
		c.CollaboratorTimeout = "2m"
	}
	if c.BatchLimit == 0 {
		c.BatchLimit = 4
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowCollaboratorTimeout); v != "" {
		c.CollaboratorTimeout = v
	}
	if v := os.Getenv(EnvWorkflowBatchLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BatchLimit = n
		}
	}
}

func (c *WorkflowConfig) validate() error {
	if _, err := time.ParseDuration(c.CollaboratorTimeout); err != nil {
		return fmt.Errorf("invalid collaborator_timeout: %w", err)
	}
	if c.BatchLimit < 1 {
		return fmt.Errorf("invalid batch_limit: %d", c.BatchLimit)
	}
	return nil
}
