package interviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"newsdesk/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewRepository creates a dispatch record repository implementing System.
func NewRepository(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "interviews"),
	}
}

func (r *repo) Record(ctx context.Context, plan *Plan, receipt *Receipt) (*Dispatch, error) {
	questionsJSON, err := json.Marshal(plan.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}

	insertQ := `
		INSERT INTO interview_dispatches(article_id, handle, method, recipient, subject, questions, script)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, article_id, handle, method, recipient, subject, questions, script, dispatched_at, replied_at`

	insertArgs := []any{
		plan.ArticleID, receipt.Handle, string(receipt.Method),
		receipt.Recipient, plan.Subject, questionsJSON, plan.Script,
	}

	d, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanDispatch)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("interview dispatch recorded",
		"id", d.ID,
		"article_id", d.ArticleID,
		"method", d.Method,
		"handle", d.Handle,
	)
	return &d, nil
}

func (r *repo) Resolve(ctx context.Context, handle string) (*Dispatch, error) {
	resolveQ := `
		SELECT id, article_id, handle, method, recipient, subject, questions, script, dispatched_at, replied_at
		FROM interview_dispatches
		WHERE handle = $1`

	d, err := repository.QueryOne(ctx, r.db, resolveQ, []any{handle}, scanDispatch)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) MarkReplied(ctx context.Context, handle string) error {
	err := repository.ExecExpectOne(ctx, r.db,
		"UPDATE interview_dispatches SET replied_at = NOW() WHERE handle = $1",
		handle,
	)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("interview reply recorded", "handle", handle)
	return nil
}

func scanDispatch(s repository.Scanner) (Dispatch, error) {
	var d Dispatch
	var questionsRaw []byte

	err := s.Scan(
		&d.ID,
		&d.ArticleID,
		&d.Handle,
		&d.Method,
		&d.Recipient,
		&d.Subject,
		&questionsRaw,
		&d.Script,
		&d.DispatchedAt,
		&d.RepliedAt,
	)
	if err != nil {
		return d, err
	}

	if len(questionsRaw) > 0 {
		if err := json.Unmarshal(questionsRaw, &d.Questions); err != nil {
			return d, fmt.Errorf("unmarshal questions: %w", err)
		}
	}
	if d.Questions == nil {
		d.Questions = []Question{}
	}

	return d, nil
}
