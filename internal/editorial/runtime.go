// Package editorial implements the editorial decision and revision
// workflow: verdict routing, the bounded revision loop, the interview
// sub-flow, and the terminal publish/reject handlers.
package editorial

import (
	"context"
	"log/slog"
	"time"

	"newsdesk/internal/agents"
	"newsdesk/internal/articles"
	"newsdesk/internal/interviews"
	"newsdesk/internal/reviews"
)

const defaultCollaboratorTimeout = 2 * time.Minute

// Editor produces a structured verdict for an article.
type Editor interface {
	Review(ctx context.Context, a *articles.Article) (*reviews.Verdict, error)
}

// Reviser rewrites article content to resolve listed issues.
type Reviser interface {
	Revise(ctx context.Context, req agents.ReviseRequest) (*agents.Revision, error)
}

// FixValidator verifies previously identified issues against revised content.
type FixValidator interface {
	ValidateFixes(ctx context.Context, issues []reviews.Issue, title, content string) (*reviews.ValidationResult, error)
}

// Enricher merges an interview reply into article content.
type Enricher interface {
	Enrich(ctx context.Context, title, content, attribution, reply string) (*agents.Revision, error)
}

// Embedder generates the content embedding written at publish time.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Runtime bundles the dependencies the workflow nodes require. It is
// constructed by higher-level composition code from infrastructure and
// domain systems.
type Runtime struct {
	Articles articles.System
	Reviews  reviews.System
	Dispatch interviews.System

	Editor    Editor
	Reviser   Reviser
	Validator FixValidator
	Enricher  Enricher
	Embedder  Embedder
	Questions interviews.QuestionSource

	Email interviews.Dispatcher
	Phone interviews.Dispatcher

	// Timeout bounds each collaborator invocation. Zero selects the
	// default.
	Timeout time.Duration

	Logger *slog.Logger
}

// collaboratorCtx scopes a collaborator call to the configured timeout.
func (rt *Runtime) collaboratorCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := rt.Timeout
	if timeout <= 0 {
		timeout = defaultCollaboratorTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (rt *Runtime) dispatcher(method reviews.InterviewMethod) interviews.Dispatcher {
	if method == reviews.MethodPhone {
		return rt.Phone
	}
	return rt.Email
}
