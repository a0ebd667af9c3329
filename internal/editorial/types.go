package editorial

import (
	"github.com/google/uuid"

	"newsdesk/internal/articles"
	"newsdesk/internal/interviews"
	"newsdesk/internal/reviews"
)

// Action is the decision router's classification of a verdict.
type Action string

const (
	ActionPublish   Action = "publish"
	ActionInterview Action = "interview"
	ActionRevise    Action = "revise"
	ActionReject    Action = "reject"
)

// Outcome is the terminal state of one workflow invocation.
type Outcome string

const (
	OutcomePublished           Outcome = "published"
	OutcomeRejected            Outcome = "rejected"
	OutcomeInterviewDispatched Outcome = "interview_dispatched"
)

// Result is returned by every workflow invocation: a terminal outcome,
// the final article state, and the last verdict that was routed. An
// invocation never ends without a decision.
type Result struct {
	ArticleID uuid.UUID           `json:"article_id"`
	Outcome   Outcome             `json:"outcome"`
	Article   *articles.Article   `json:"article"`
	Verdict   *reviews.Verdict    `json:"verdict"`
	Receipt   *interviews.Receipt `json:"receipt,omitempty"`

	// Cycles counts revision cycles completed during this invocation.
	Cycles int `json:"cycles"`

	// AuditErr carries a best-effort audit persistence failure on the
	// reject path. The status transition it accompanies is still kept.
	AuditErr error `json:"-"`
}

// State keys shared by the workflow nodes.
const (
	KeyArticleID = "article_id"
	KeyArticle   = "article"
	KeyVerdict   = "verdict"
	KeyAction    = "action"
	KeyResult    = "result"
	KeyNext      = "next_verdict"
	KeyCycles    = "cycles"
	KeyAuditErr  = "audit_err"
)
