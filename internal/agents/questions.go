package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"newsdesk/internal/interviews"
	"newsdesk/pkg/formatting"
)

type questionsResponse struct {
	Questions []interviews.Question `json:"questions"`
}

// QuestionAgent generates interview questions, implementing the
// interviews.QuestionSource contract.
type QuestionAgent struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// NewQuestionAgent creates a QuestionAgent backed by the given agent configuration.
func NewQuestionAgent(cfg gaconfig.AgentConfig, logger *slog.Logger) *QuestionAgent {
	return &QuestionAgent{
		cfg:    cfg,
		logger: logger.With("agent", "questions"),
	}
}

// Questions generates up to req.Count interview questions for the article.
func (q *QuestionAgent) Questions(
	ctx context.Context,
	req interviews.QuestionRequest,
) ([]interviews.Question, error) {
	ag, err := agent.New(&q.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrQuestionsFailed, err)
	}

	prompt := fmt.Sprintf(questionsPrompt,
		req.Count,
		string(req.Method),
		strings.Join(req.ExpertiseAreas, ", "),
		req.Focus,
		req.Title,
		req.Content,
	)

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuestionsFailed, err)
	}

	parsed, err := formatting.Parse[questionsResponse](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrQuestionsFailed, err)
	}

	q.logger.InfoContext(ctx, "questions generated", "count", len(parsed.Questions))
	return parsed.Questions, nil
}
