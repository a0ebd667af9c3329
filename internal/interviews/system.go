package interviews

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/reviews"
)

// Dispatch is the persisted record of a sent interview, keyed by the
// channel tracking handle for reply correlation.
type Dispatch struct {
	ID           uuid.UUID               `json:"id"`
	ArticleID    uuid.UUID               `json:"article_id"`
	Handle       string                  `json:"handle"`
	Method       reviews.InterviewMethod `json:"method"`
	Recipient    string                  `json:"recipient"`
	Subject      string                  `json:"subject"`
	Questions    []Question              `json:"questions"`
	Script       string                  `json:"script,omitempty"`
	DispatchedAt time.Time               `json:"dispatched_at"`
	RepliedAt    *time.Time              `json:"replied_at,omitempty"`
}

// System is the persistence contract for interview dispatch records.
type System interface {
	Record(ctx context.Context, plan *Plan, receipt *Receipt) (*Dispatch, error)
	Resolve(ctx context.Context, handle string) (*Dispatch, error)
	MarkReplied(ctx context.Context, handle string) error
}
