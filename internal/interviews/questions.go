package interviews

import (
	"context"
	"fmt"
	"log/slog"

	"newsdesk/internal/reviews"
)

const (
	maxQuestions   = 5
	phoneQuestions = 2

	closingQuestion = "Is there anything important about this topic we have not asked you about?"
	generalQuestion = "What should readers understand about this topic that is commonly misreported?"
)

// QuestionCount returns the target question count for a method and set
// of expertise areas: email interviews scale with the areas up to the
// cap, phone interviews are fixed at two plus the open closer.
func QuestionCount(method reviews.InterviewMethod, areas []string) int {
	if method == reviews.MethodPhone {
		return phoneQuestions
	}

	count := len(areas) + 1
	if count > maxQuestions {
		count = maxQuestions
	}
	if count < 2 {
		count = 2
	}
	return count
}

// BuildQuestions produces the interview question list. The generator
// collaborator is tried first; any failure or an undersized result
// falls back to templated questions keyed by expertise area, so the
// sub-flow always yields at least two questions. Phone interviews get
// an open closing prompt appended.
func BuildQuestions(
	ctx context.Context,
	source QuestionSource,
	req QuestionRequest,
	logger *slog.Logger,
) []Question {
	req.Count = QuestionCount(req.Method, req.ExpertiseAreas)

	questions, err := source.Questions(ctx, req)
	if err != nil || len(questions) < 2 {
		if err != nil {
			logger.WarnContext(ctx, "question generation failed, using templates", "error", err)
		}
		questions = templateQuestions(req.ExpertiseAreas)
	}

	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}

	if req.Method == reviews.MethodPhone {
		questions = append(questions, Question{
			Topic:    "closing",
			Question: closingQuestion,
		})
	}

	for i := range questions {
		questions[i].Position = i + 1
	}
	return questions
}

// templateQuestions is the fixed fallback set: one question per
// expertise area plus a general one, never fewer than two.
func templateQuestions(areas []string) []Question {
	questions := make([]Question, 0, len(areas)+1)
	for _, area := range areas {
		questions = append(questions, Question{
			Topic:    area,
			Question: fmt.Sprintf("Can you walk us through the most significant recent developments in %s that relate to this story?", area),
		})
	}

	questions = append(questions, Question{
		Topic:    "general",
		Question: generalQuestion,
	})

	if len(questions) < 2 {
		questions = append(questions, Question{
			Topic:    "context",
			Question: "What context is essential for readers to evaluate this story fairly?",
		})
	}

	return questions
}
