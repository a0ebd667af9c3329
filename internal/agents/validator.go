package agents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"newsdesk/internal/reviews"
	"newsdesk/pkg/formatting"
)

// Validator checks whether previously identified issues were resolved
// by a revision. It verifies only the named issues.
type Validator struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// NewValidator creates a Validator backed by the given agent configuration.
func NewValidator(cfg gaconfig.AgentConfig, logger *slog.Logger) *Validator {
	return &Validator{
		cfg:    cfg,
		logger: logger.With("agent", "validator"),
	}
}

// ValidateFixes verifies the original issue list against revised content.
func (v *Validator) ValidateFixes(
	ctx context.Context,
	issues []reviews.Issue,
	title, content string,
) (*reviews.ValidationResult, error) {
	ag, err := agent.New(&v.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrValidationFailed, err)
	}

	prompt := fmt.Sprintf(validatePrompt, formatIssues(issues), title, content)

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	result, err := formatting.Parse[reviews.ValidationResult](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrValidationFailed, err)
	}

	if result.RemainingIssues == nil {
		result.RemainingIssues = []string{}
	}

	v.logger.InfoContext(ctx, "fixes validated",
		"verified", result.AllFixesVerified,
		"remaining", len(result.RemainingIssues),
	)
	return &result, nil
}
