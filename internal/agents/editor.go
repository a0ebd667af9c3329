// Package agents implements the LLM collaborator clients consumed by
// the editorial workflow: review, revision, fix validation, question
// generation, reply enrichment, and content embedding.
package agents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"newsdesk/internal/articles"
	"newsdesk/internal/reviews"
	"newsdesk/pkg/formatting"
)

// Editor reviews articles and produces structured verdicts.
type Editor struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// NewEditor creates an Editor backed by the given agent configuration.
func NewEditor(cfg gaconfig.AgentConfig, logger *slog.Logger) *Editor {
	return &Editor{
		cfg:    cfg,
		logger: logger.With("agent", "editor"),
	}
}

// Review inspects an article and returns a normalized verdict. The
// caller converts errors into a synthetic rejecting verdict; Review
// itself never fabricates one.
func (e *Editor) Review(ctx context.Context, a *articles.Article) (*reviews.Verdict, error) {
	ag, err := agent.New(&e.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrReviewFailed, err)
	}

	prompt := fmt.Sprintf(reviewPrompt, a.Language, a.Title, a.Content)

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReviewFailed, err)
	}

	verdict, err := formatting.Parse[reviews.Verdict](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrReviewFailed, err)
	}

	verdict.Normalize()
	if verdict.Reasoning.Reviewer == "" {
		verdict.Reasoning.Reviewer = e.cfg.Name
	}

	e.logger.InfoContext(ctx, "article reviewed",
		"article_id", a.ID,
		"status", verdict.Status,
		"issues", len(verdict.Issues),
		"interview_needed", verdict.InterviewNeeded(),
	)
	return &verdict, nil
}
