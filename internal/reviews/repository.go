package reviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"newsdesk/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a review audit repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "reviews"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Save(ctx context.Context, articleID uuid.UUID, v *Verdict) error {
	verdictJSON, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal verdict: %w", err)
	}

	upsertQ := `
		INSERT INTO editorial_reviews(
			article_id, status, reviewer, initial_decision,
			final_decision, has_warning, review_data, reviewed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (article_id) DO UPDATE SET
			status = EXCLUDED.status,
			reviewer = EXCLUDED.reviewer,
			initial_decision = EXCLUDED.initial_decision,
			final_decision = EXCLUDED.final_decision,
			has_warning = EXCLUDED.has_warning,
			review_data = EXCLUDED.review_data,
			reviewed_at = NOW()
		RETURNING id`

	upsertArgs := []any{
		articleID,
		string(v.Status),
		v.Reasoning.Reviewer,
		string(v.Reasoning.InitialDecision),
		string(v.Decision),
		v.Warning != nil,
		verdictJSON,
	}

	scanID := func(s repository.Scanner) (uuid.UUID, error) {
		var id uuid.UUID
		err := s.Scan(&id)
		return id, err
	}

	reviewID, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (uuid.UUID, error) {
		id, err := repository.QueryOne(ctx, tx, upsertQ, upsertArgs, scanID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("upsert review: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM editorial_issues WHERE review_id = $1", id,
		); err != nil {
			return uuid.Nil, fmt.Errorf("clear issues: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM editorial_reasoning_steps WHERE review_id = $1", id,
		); err != nil {
			return uuid.Nil, fmt.Errorf("clear reasoning steps: %w", err)
		}

		for i, issue := range v.Issues {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO editorial_issues(review_id, position, issue_type, location, description, suggestion)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				id, i, string(issue.Type), issue.Location, issue.Description, issue.Suggestion,
			); err != nil {
				return uuid.Nil, fmt.Errorf("insert issue: %w", err)
			}
		}

		for i, step := range auditSteps(v) {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO editorial_reasoning_steps(
					review_id, position, step_id, action, observation, result, is_reconsideration
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				id, i, step.StepID, step.Action, step.Observation, string(step.Result), step.IsReconsideration,
			); err != nil {
				return uuid.Nil, fmt.Errorf("insert reasoning step: %w", err)
			}
		}

		return id, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("review saved",
		"id", reviewID,
		"article_id", articleID,
		"status", v.Status,
		"decision", v.Decision,
	)
	return nil
}

func (r *repo) Find(ctx context.Context, articleID uuid.UUID) (*Review, error) {
	findQ := `
		SELECT id, article_id, status, reviewer, initial_decision,
		       final_decision, has_warning, review_data, reviewed_at
		FROM editorial_reviews
		WHERE article_id = $1`

	rev, err := repository.QueryOne(ctx, r.db, findQ, []any{articleID}, scanReview)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	issuesQ := `
		SELECT issue_type, location, description, suggestion
		FROM editorial_issues
		WHERE review_id = $1
		ORDER BY position`

	rev.Issues, err = repository.QueryMany(ctx, r.db, issuesQ, []any{rev.ID}, scanIssue)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}

	stepsQ := `
		SELECT step_id, action, observation, result, is_reconsideration
		FROM editorial_reasoning_steps
		WHERE review_id = $1
		ORDER BY position`

	rev.Steps, err = repository.QueryMany(ctx, r.db, stepsQ, []any{rev.ID}, scanStep)
	if err != nil {
		return nil, fmt.Errorf("query reasoning steps: %w", err)
	}

	return &rev, nil
}

func scanReview(s repository.Scanner) (Review, error) {
	var rev Review
	err := s.Scan(
		&rev.ID,
		&rev.ArticleID,
		&rev.Status,
		&rev.Reviewer,
		&rev.InitialDecision,
		&rev.FinalDecision,
		&rev.HasWarning,
		&rev.Verdict,
		&rev.ReviewedAt,
	)
	return rev, err
}

func scanIssue(s repository.Scanner) (Issue, error) {
	var issue Issue
	err := s.Scan(&issue.Type, &issue.Location, &issue.Description, &issue.Suggestion)
	return issue, err
}

func scanStep(s repository.Scanner) (AuditStep, error) {
	var step AuditStep
	err := s.Scan(&step.StepID, &step.Action, &step.Observation, &step.Result, &step.IsReconsideration)
	return step, err
}
