// Package interviews implements the expert interview sub-flow: contact
// selection, question preparation, channel dispatch with tracking
// handles, and dispatch record persistence for reply correlation.
package interviews

import (
	"context"

	"github.com/google/uuid"

	"newsdesk/internal/articles"
	"newsdesk/internal/reviews"
)

// Question is a single interview question with ordering metadata.
type Question struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Position int    `json:"position"`
}

// Plan is a fully prepared interview ready for dispatch through the
// resolved channel.
type Plan struct {
	ArticleID      uuid.UUID                `json:"article_id"`
	Method         reviews.InterviewMethod  `json:"method"`
	Contact        articles.Contact         `json:"contact"`
	Subject        string                   `json:"subject"`
	Questions      []Question               `json:"questions"`
	Background     string                   `json:"background_context"`
	Focus          string                   `json:"interview_focus"`
	ExpertiseAreas []string                 `json:"target_expertise_areas"`
	Script         string                   `json:"script,omitempty"`
}

// Receipt records a successful dispatch. Handle is the channel-specific
// tracking identifier later used to correlate the reply.
type Receipt struct {
	Handle    string                  `json:"handle"`
	Method    reviews.InterviewMethod `json:"method"`
	Recipient string                  `json:"recipient"`
}

// QuestionRequest carries the inputs for question generation.
type QuestionRequest struct {
	Title          string
	Content        string
	Method         reviews.InterviewMethod
	ExpertiseAreas []string
	Focus          string
	Count          int
}

// QuestionSource generates interview questions. Implementations are
// fallible network collaborators; callers fall back to templated
// questions when a source fails.
type QuestionSource interface {
	Questions(ctx context.Context, req QuestionRequest) ([]Question, error)
}

// Dispatcher delivers an interview plan through one channel and returns
// a tracking receipt.
type Dispatcher interface {
	Dispatch(ctx context.Context, plan *Plan) (*Receipt, error)
}
