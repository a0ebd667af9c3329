package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"newsdesk/internal/reviews"
)

const (
	titleMarker   = "**Title:**"
	contentMarker = "**Content:**"
	summaryMarker = "**Summary of revisions:**"
)

// ReviseRequest carries the inputs for one revision attempt.
type ReviseRequest struct {
	Title    string
	Content  string
	Issues   []reviews.Issue
	Feedback string
}

// Revision is the extracted result of a revision attempt.
type Revision struct {
	Title   string
	Content string
}

// Reviser rewrites article content to resolve listed issues.
type Reviser struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// NewReviser creates a Reviser backed by the given agent configuration.
func NewReviser(cfg gaconfig.AgentConfig, logger *slog.Logger) *Reviser {
	return &Reviser{
		cfg:    cfg,
		logger: logger.With("agent", "reviser"),
	}
}

// Revise invokes the revision model and extracts the revised title and
// content from its delimited response. Extraction failure is returned
// as ErrExtractionFailed so callers can abort the cycle without
// consuming a revision attempt.
func (r *Reviser) Revise(ctx context.Context, req ReviseRequest) (*Revision, error) {
	ag, err := agent.New(&r.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrRevisionFailed, err)
	}

	feedback := ""
	if req.Feedback != "" {
		feedback = fmt.Sprintf("\nGeneral feedback:\n%s\n", req.Feedback)
	}

	prompt := fmt.Sprintf(revisePrompt,
		formatIssues(req.Issues), feedback, req.Title, req.Content)

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRevisionFailed, err)
	}

	revision, err := extractRevision(resp.Content())
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "revision produced",
		"title_len", len(revision.Title),
		"content_len", len(revision.Content),
	)
	return revision, nil
}

// extractRevision pulls the revised title and content out of the
// delimited response format. The summary section, when present, is
// excluded from the content.
func extractRevision(response string) (*Revision, error) {
	titleIdx := strings.Index(response, titleMarker)
	contentIdx := strings.Index(response, contentMarker)
	if titleIdx < 0 || contentIdx < 0 || contentIdx < titleIdx {
		return nil, fmt.Errorf("%w: missing title or content markers", ErrExtractionFailed)
	}

	title := response[titleIdx+len(titleMarker) : contentIdx]
	title = strings.TrimSpace(title)

	content := response[contentIdx+len(contentMarker):]
	if summaryIdx := strings.Index(content, summaryMarker); summaryIdx >= 0 {
		content = content[:summaryIdx]
	}
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: empty title or content", ErrExtractionFailed)
	}

	return &Revision{Title: title, Content: content}, nil
}
