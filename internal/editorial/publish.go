package editorial

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"newsdesk/internal/articles"
)

// PublishNode moves an article to its published terminal state. The
// content embedding, status, warning, and timestamp land in a single
// transaction; an embedding failure aborts the invocation before any
// write. Re-publishing an already published article is a no-op.
func PublishNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		article, err := extractArticle(s)
		if err != nil {
			return s, fmt.Errorf("publish: %w", err)
		}
		verdict, err := extractVerdict(s, KeyVerdict)
		if err != nil {
			return s, fmt.Errorf("publish: %w", err)
		}

		embedding, err := embedContent(ctx, rt, article)
		if err != nil {
			return s, fmt.Errorf("publish: article %s: %w", article.ID, err)
		}

		published, err := rt.Articles.Publish(ctx, article.ID, embedding, verdict.Warning)
		if err != nil {
			if errors.Is(err, articles.ErrAlreadyPublished) {
				rt.Logger.InfoContext(ctx, "article already published", "article_id", article.ID)
				published, err = rt.Articles.Find(ctx, article.ID)
			}
			if err != nil {
				return s, fmt.Errorf("publish: article %s: %w", article.ID, err)
			}
		}

		rt.Logger.InfoContext(ctx, "article published",
			"article_id", published.ID,
			"published_at", published.PublishedAt,
		)

		s = s.Set(KeyResult, &Result{
			ArticleID: published.ID,
			Outcome:   OutcomePublished,
			Article:   published,
			Verdict:   verdict,
		})
		return s, nil
	})
}

func embedContent(ctx context.Context, rt *Runtime, article *articles.Article) ([]float32, error) {
	callCtx, cancel := rt.collaboratorCtx(ctx)
	defer cancel()

	return rt.Embedder.Embed(callCtx, article.Title+"\n\n"+article.Content)
}
