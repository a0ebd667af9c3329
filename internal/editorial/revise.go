package editorial

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"newsdesk/internal/agents"
	"newsdesk/internal/articles"
	"newsdesk/internal/reviews"
)

// ReviseNode runs one revision cycle: reviser rewrite, article
// mutation with a persisted revision-count increment, then fix
// validation against the original issue list. The resulting verdict
// re-enters the decision node on the next cycle.
//
// An extraction failure aborts the cycle with an error and leaves the
// article and its revision count untouched. Any other collaborator
// failure degrades into a deterministic rejecting verdict so the
// workflow always ends with a decision.
func ReviseNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		article, err := extractArticle(s)
		if err != nil {
			return s, fmt.Errorf("revise: %w", err)
		}
		verdict, err := extractVerdict(s, KeyVerdict)
		if err != nil {
			return s, fmt.Errorf("revise: %w", err)
		}

		originalIssues := verdict.Issues
		reviewer := verdict.Reasoning.Reviewer

		revision, err := invokeReviser(ctx, rt, article, verdict)
		if err != nil {
			if errors.Is(err, agents.ErrExtractionFailed) {
				// The article must not be mutated and the attempt is
				// not consumed; the caller decides what happens next.
				return s, fmt.Errorf("revise: %w", err)
			}

			rt.Logger.ErrorContext(ctx, "reviser failed", "article_id", article.ID, "error", err)
			s = s.Set(KeyNext, reviews.Rejection(reviewer, fmt.Sprintf("Revision failed: %v", err)))
			s = s.Set(KeyVerdict, verdict)
			return s, nil
		}

		updated, err := applyRevision(ctx, rt, article, revision)
		if err != nil {
			return s, fmt.Errorf("revise: apply revision: %w", err)
		}

		next := validateFixes(ctx, rt, originalIssues, updated, reviewer)

		s = s.Set(KeyArticle, updated)
		s = s.Set(KeyNext, next)
		s = s.Set(KeyCycles, cyclesFrom(s)+1)

		rt.Logger.InfoContext(ctx, "revision cycle complete",
			"article_id", updated.ID,
			"revision_count", updated.RevisionCount,
			"next_status", next.Status,
		)
		return s, nil
	})
}

func invokeReviser(
	ctx context.Context,
	rt *Runtime,
	article *articles.Article,
	verdict *reviews.Verdict,
) (*agents.Revision, error) {
	callCtx, cancel := rt.collaboratorCtx(ctx)
	defer cancel()

	return rt.Reviser.Revise(callCtx, agents.ReviseRequest{
		Title:    article.Title,
		Content:  article.Content,
		Issues:   verdict.Issues,
		Feedback: reviseFeedback(verdict),
	})
}

// applyRevision persists the rewritten content. A missing storage row
// is logged rather than fatal; the mutation then lives only on the
// in-memory article for the remainder of this invocation.
func applyRevision(
	ctx context.Context,
	rt *Runtime,
	article *articles.Article,
	revision *agents.Revision,
) (*articles.Article, error) {
	updated, err := rt.Articles.ApplyRevision(ctx, article.ID, revision.Title, revision.Content)
	if err == nil {
		return updated, nil
	}

	if errors.Is(err, articles.ErrNotFound) {
		rt.Logger.WarnContext(ctx, "article has no storage row, revision kept in memory",
			"article_id", article.ID,
		)
		article.Title = revision.Title
		article.Content = revision.Content
		article.RequiredCorrections = true
		article.RevisionCount++
		return article, nil
	}

	return nil, err
}

func validateFixes(
	ctx context.Context,
	rt *Runtime,
	issues []reviews.Issue,
	article *articles.Article,
	reviewer string,
) *reviews.Verdict {
	callCtx, cancel := rt.collaboratorCtx(ctx)
	defer cancel()

	result, err := rt.Validator.ValidateFixes(callCtx, issues, article.Title, article.Content)
	if err != nil {
		rt.Logger.ErrorContext(ctx, "fix validation failed", "article_id", article.ID, "error", err)
		return reviews.Rejection(reviewer, fmt.Sprintf("Fix validation failed: %v", err))
	}

	return reviews.FromValidation(result, reviewer, article.RevisionCount)
}

// reviseFeedback assembles the contextual guidance passed alongside the
// issue list: prior explanation, reconsideration outcome, and any
// standing editorial warning.
func reviseFeedback(v *reviews.Verdict) string {
	feedback := v.Reasoning.Explanation

	recons := v.Reconsideration
	if recons == nil {
		recons = v.Reasoning.Reconsideration
	}
	if recons != nil && recons.Explanation != "" {
		feedback += "\nReconsideration: " + recons.Explanation
	}
	if v.Warning != nil && v.Warning.Details != "" {
		feedback += "\nEditorial warning: " + v.Warning.Details
	}
	return feedback
}
