package editorial

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"newsdesk/internal/articles"
	"newsdesk/internal/interviews"
	"newsdesk/internal/reviews"
)

const defaultBatchLimit = 4

// System is the public contract for editorial workflow operations.
type System interface {
	Handler() *Handler

	// Process runs a full editor review for a pending article and
	// routes the resulting verdict to a terminal outcome.
	Process(ctx context.Context, articleID uuid.UUID) (*Result, error)

	// Submit routes an externally produced verdict without invoking
	// the editor.
	Submit(ctx context.Context, articleID uuid.UUID, verdict *reviews.Verdict) (*Result, error)

	// Batch processes a set of distinct articles concurrently, one
	// workflow instance each.
	Batch(ctx context.Context, ids []uuid.UUID) []BatchItem

	// Resume correlates an interview reply by its tracking handle,
	// merges it into the article, and re-enters the decision router.
	Resume(ctx context.Context, handle, reply string) (*Result, error)
}

// BatchItem pairs one article's workflow outcome with its error.
type BatchItem struct {
	ArticleID uuid.UUID `json:"article_id"`
	Result    *Result   `json:"result,omitempty"`
	Err       error     `json:"-"`
	Error     string    `json:"error,omitempty"`
}

type system struct {
	rt         *Runtime
	batchLimit int
	logger     *slog.Logger
}

// New creates the editorial system over a fully wired runtime.
func New(rt *Runtime, batchLimit int) System {
	if batchLimit <= 0 {
		batchLimit = defaultBatchLimit
	}
	return &system{
		rt:         rt,
		batchLimit: batchLimit,
		logger:     rt.Logger.With("system", "editorial"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Process(ctx context.Context, articleID uuid.UUID) (*Result, error) {
	article, err := s.rt.Articles.Find(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("process article %s: %w", articleID, err)
	}

	verdict := s.review(ctx, article)
	return Run(ctx, s.rt, articleID, verdict)
}

func (s *system) Submit(ctx context.Context, articleID uuid.UUID, verdict *reviews.Verdict) (*Result, error) {
	if verdict == nil {
		return nil, ErrNoVerdict
	}
	return Run(ctx, s.rt, articleID, verdict)
}

func (s *system) Batch(ctx context.Context, ids []uuid.UUID) []BatchItem {
	items := make([]BatchItem, len(ids))

	var mu sync.Mutex
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)

	for i, id := range ids {
		g.Go(func() error {
			result, err := s.Process(groupCtx, id)

			mu.Lock()
			defer mu.Unlock()
			items[i] = BatchItem{ArticleID: id, Result: result, Err: err}
			if err != nil {
				items[i].Error = err.Error()
			}
			return nil
		})
	}

	// Workers never return errors; failures live on their batch item.
	_ = g.Wait()

	s.logger.Info("batch processed", "count", len(ids))
	return items
}

func (s *system) Resume(ctx context.Context, handle, reply string) (*Result, error) {
	dispatch, err := s.rt.Dispatch.Resolve(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("resolve reply handle %q: %w", handle, err)
	}
	if dispatch.RepliedAt != nil {
		return nil, fmt.Errorf("reply handle %q: %w", handle, interviews.ErrAlreadyReplied)
	}

	article, err := s.rt.Articles.Find(ctx, dispatch.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("resume article %s: %w", dispatch.ArticleID, err)
	}

	callCtx, cancel := s.rt.collaboratorCtx(ctx)
	merged, err := s.rt.Enricher.Enrich(callCtx, article.Title, article.Content, dispatch.Recipient, reply)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("resume article %s: %w", article.ID, err)
	}

	if _, err := s.rt.Articles.UpdateContent(ctx, article.ID, merged.Title, merged.Content); err != nil {
		return nil, fmt.Errorf("resume article %s: %w", article.ID, err)
	}

	// The handle is consumed only once the reply is merged; a failed
	// merge leaves it open for redelivery.
	if err := s.rt.Dispatch.MarkReplied(ctx, handle); err != nil {
		s.logger.Warn("mark replied failed", "handle", handle, "error", err)
	}

	s.logger.Info("interview reply merged",
		"article_id", article.ID,
		"handle", handle,
		"method", dispatch.Method,
	)

	// Policy decision: reply reconciliation does not force a second
	// full editor pass. The reconciliation verdict re-enters the
	// decision router and routes on its own content.
	return Run(ctx, s.rt, article.ID, reconciliationVerdict(dispatch.Recipient))
}

// review invokes the editor and always yields a routable verdict; a
// collaborator failure degrades into a synthetic rejecting verdict.
func (s *system) review(ctx context.Context, article *articles.Article) *reviews.Verdict {
	callCtx, cancel := s.rt.collaboratorCtx(ctx)
	defer cancel()

	verdict, err := s.rt.Editor.Review(callCtx, article)
	if err != nil {
		s.logger.Error("editor review failed", "article_id", article.ID, "error", err)
		return reviews.Rejection("editor", fmt.Sprintf("Editorial review failed: %v", err))
	}
	return verdict
}

func reconciliationVerdict(attribution string) *reviews.Verdict {
	return &reviews.Verdict{
		Status: reviews.StatusOK,
		Issues: []reviews.Issue{},
		Reasoning: reviews.Reasoning{
			Reviewer:        "interview-reconciliation",
			InitialDecision: reviews.DecisionAccept,
			CheckedCriteria: []string{"interview reply integration"},
			FailedCriteria:  []string{},
			Explanation:     fmt.Sprintf("Expert reply from %s merged into the article.", attribution),
		},
	}
}
