package editorial

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// RejectNode moves an article to its rejected terminal state. The
// audit trail is persisted best-effort relative to the status change:
// if the decide node's audit write failed, one retry happens here, and
// a persistent failure is reported on the result without undoing the
// rejection.
func RejectNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		article, err := extractArticle(s)
		if err != nil {
			return s, fmt.Errorf("reject: %w", err)
		}
		verdict, err := extractVerdict(s, KeyVerdict)
		if err != nil {
			return s, fmt.Errorf("reject: %w", err)
		}

		rejected, err := rt.Articles.Reject(ctx, article.ID)
		if err != nil {
			return s, fmt.Errorf("reject: article %s: %w", article.ID, err)
		}

		var auditErr error
		if val, ok := s.Get(KeyAuditErr); ok {
			if saveErr := rt.Reviews.Save(ctx, article.ID, verdict); saveErr != nil {
				auditErr, _ = val.(error)
				if auditErr == nil {
					auditErr = saveErr
				}
				rt.Logger.ErrorContext(ctx, "rejection audit persistence failed",
					"article_id", article.ID,
					"error", saveErr,
				)
			}
		}

		rt.Logger.InfoContext(ctx, "article rejected",
			"article_id", rejected.ID,
			"reason", verdict.Reasoning.Explanation,
		)

		s = s.Set(KeyResult, &Result{
			ArticleID: rejected.ID,
			Outcome:   OutcomeRejected,
			Article:   rejected,
			Verdict:   verdict,
			AuditErr:  auditErr,
		})
		return s, nil
	})
}
