package articles

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"newsdesk/internal/reviews"
	"newsdesk/pkg/pagination"
	"newsdesk/pkg/query"
	"newsdesk/pkg/repository"
)

const returningColumns = `id, canonical_id, title, content, language, categories,
	keywords, contacts, status, revision_count, required_corrections,
	editorial_warning, published_at, created_at, updated_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an article repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "articles"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Article], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Content")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Article, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanArticle)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Article, error) {
	if strings.TrimSpace(cmd.Title) == "" || strings.TrimSpace(cmd.Content) == "" {
		return nil, ErrEmptyContent
	}

	categories, err := marshalList(cmd.Categories)
	if err != nil {
		return nil, fmt.Errorf("marshal categories: %w", err)
	}
	keywords, err := marshalList(cmd.Keywords)
	if err != nil {
		return nil, fmt.Errorf("marshal keywords: %w", err)
	}
	contacts := cmd.Contacts
	if contacts == nil {
		contacts = []Contact{}
	}
	contactsJSON, err := json.Marshal(contacts)
	if err != nil {
		return nil, fmt.Errorf("marshal contacts: %w", err)
	}

	insertQ := fmt.Sprintf(`
		INSERT INTO news_article(canonical_id, title, content, language, categories, keywords, contacts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, returningColumns)

	insertArgs := []any{
		cmd.CanonicalID, cmd.Title, cmd.Content, cmd.Language,
		categories, keywords, contactsJSON,
	}

	a, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanArticle)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("article created", "id", a.ID, "language", a.Language)
	return &a, nil
}

func (r *repo) ApplyRevision(ctx context.Context, id uuid.UUID, title, content string) (*Article, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	reviseQ := fmt.Sprintf(`
		UPDATE news_article
		SET title = $1, content = $2, required_corrections = TRUE,
		    revision_count = revision_count + 1, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING %s`, returningColumns)

	a, err := repository.QueryOne(ctx, r.db, reviseQ, []any{title, content, id}, scanArticle)
	if err != nil {
		return nil, r.mapStatusError(ctx, id, err)
	}

	r.logger.Info("revision applied", "id", a.ID, "revision_count", a.RevisionCount)
	return &a, nil
}

func (r *repo) UpdateContent(ctx context.Context, id uuid.UUID, title, content string) (*Article, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	updateQ := fmt.Sprintf(`
		UPDATE news_article
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING %s`, returningColumns)

	a, err := repository.QueryOne(ctx, r.db, updateQ, []any{title, content, id}, scanArticle)
	if err != nil {
		return nil, r.mapStatusError(ctx, id, err)
	}

	r.logger.Info("article content updated", "id", a.ID)
	return &a, nil
}

func (r *repo) Publish(
	ctx context.Context,
	id uuid.UUID,
	embedding []float32,
	warning *reviews.Warning,
) (*Article, error) {
	var warningJSON []byte
	if warning != nil {
		var err error
		warningJSON, err = json.Marshal(warning)
		if err != nil {
			return nil, fmt.Errorf("marshal editorial_warning: %w", err)
		}
	}

	publishQ := fmt.Sprintf(`
		UPDATE news_article
		SET status = 'published', embedding = $1, editorial_warning = $2,
		    published_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING %s`, returningColumns)

	publishArgs := []any{pgvector.NewVector(embedding), warningJSON, id}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Article, error) {
		return repository.QueryOne(ctx, tx, publishQ, publishArgs, scanArticle)
	})

	if err != nil {
		mapped := r.mapStatusError(ctx, id, err)
		if mapped == ErrInvalidStatus {
			// Publishing twice is a defined outcome, not a generic
			// status conflict.
			if current, findErr := r.Find(ctx, id); findErr == nil && current.Status == StatusPublished {
				return nil, ErrAlreadyPublished
			}
		}
		return nil, mapped
	}

	r.logger.Info("article published", "id", a.ID, "published_at", a.PublishedAt)
	return &a, nil
}

func (r *repo) Reject(ctx context.Context, id uuid.UUID) (*Article, error) {
	rejectQ := fmt.Sprintf(`
		UPDATE news_article
		SET status = 'rejected', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING %s`, returningColumns)

	a, err := repository.QueryOne(ctx, r.db, rejectQ, []any{id}, scanArticle)
	if err != nil {
		mapped := r.mapStatusError(ctx, id, err)
		if mapped == ErrInvalidStatus {
			if current, findErr := r.Find(ctx, id); findErr == nil && current.Status == StatusRejected {
				return current, nil
			}
		}
		return nil, mapped
	}

	r.logger.Info("article rejected", "id", a.ID)
	return &a, nil
}

// mapStatusError distinguishes a missing article from one that exists in
// a status the statement's guard excluded.
func (r *repo) mapStatusError(ctx context.Context, id uuid.UUID, err error) error {
	mapped := repository.MapError(err, ErrNotFound, ErrDuplicate)
	if mapped != ErrNotFound {
		return mapped
	}

	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	if _, findErr := repository.QueryOne(ctx, r.db, q, args, scanArticle); findErr == nil {
		return ErrInvalidStatus
	}
	return ErrNotFound
}

func marshalList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}
