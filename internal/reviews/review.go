package reviews

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Review is the persisted audit record for the latest editorial verdict
// of an article. Issues and reasoning steps are stored relationally so
// they can be queried without unpacking the verdict document.
type Review struct {
	ID              uuid.UUID       `json:"id"`
	ArticleID       uuid.UUID       `json:"article_id"`
	Status          Status          `json:"status"`
	Reviewer        string          `json:"reviewer"`
	InitialDecision InitialDecision `json:"initial_decision"`
	FinalDecision   Decision        `json:"final_decision"`
	HasWarning      bool            `json:"has_warning"`
	Verdict         json.RawMessage `json:"verdict"`
	Issues          []Issue         `json:"issues"`
	Steps           []AuditStep     `json:"reasoning_steps"`
	ReviewedAt      time.Time       `json:"reviewed_at"`
}

// AuditStep is a persisted reasoning step. Reconsideration steps are
// flagged so the initial reasoning trail stays distinguishable.
type AuditStep struct {
	ReasoningStep
	IsReconsideration bool `json:"is_reconsideration"`
}

// auditSteps flattens the verdict's initial and reconsideration
// reasoning into the persisted step sequence.
func auditSteps(v *Verdict) []AuditStep {
	steps := make([]AuditStep, 0, len(v.Reasoning.Steps))
	for _, s := range v.Reasoning.Steps {
		steps = append(steps, AuditStep{ReasoningStep: s})
	}

	recons := v.Reconsideration
	if recons == nil {
		recons = v.Reasoning.Reconsideration
	}
	if recons != nil {
		for _, s := range recons.Steps {
			steps = append(steps, AuditStep{ReasoningStep: s, IsReconsideration: true})
		}
	}

	return steps
}
