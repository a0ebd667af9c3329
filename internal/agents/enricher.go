package agents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"newsdesk/pkg/formatting"
)

type enrichedContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Enricher merges an interview reply into existing article content with
// attribution to the interviewed contact.
type Enricher struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// NewEnricher creates an Enricher backed by the given agent configuration.
func NewEnricher(cfg gaconfig.AgentConfig, logger *slog.Logger) *Enricher {
	return &Enricher{
		cfg:    cfg,
		logger: logger.With("agent", "enricher"),
	}
}

// Enrich integrates the reply into the article and returns the merged
// title and content.
func (e *Enricher) Enrich(
	ctx context.Context,
	title, content, attribution, reply string,
) (*Revision, error) {
	ag, err := agent.New(&e.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrEnrichmentFailed, err)
	}

	prompt := fmt.Sprintf(enrichPrompt, attribution, reply, title, content)

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
	}

	merged, err := formatting.Parse[enrichedContent](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrEnrichmentFailed, err)
	}
	if merged.Title == "" || merged.Content == "" {
		return nil, fmt.Errorf("%w: empty title or content", ErrEnrichmentFailed)
	}

	e.logger.InfoContext(ctx, "reply merged into article", "content_len", len(merged.Content))
	return &Revision{Title: merged.Title, Content: merged.Content}, nil
}
