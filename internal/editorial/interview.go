package editorial

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"newsdesk/internal/articles"
	"newsdesk/internal/interviews"
	"newsdesk/internal/reviews"
)

// InterviewNode dispatches an expert interview: deterministic contact
// selection with phone-to-email fallback, question preparation, channel
// dispatch, and a dispatch record keyed by the tracking handle. The
// node never blocks on a reply; the article stays pending and the
// invocation ends with an interview outcome.
//
// A missing contact or a dispatch failure fails closed: the cycle
// aborts with an error, the revision count is untouched, and the
// interview requirement is not silently dropped.
func InterviewNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		article, err := extractArticle(s)
		if err != nil {
			return s, fmt.Errorf("interview: %w", err)
		}
		verdict, err := extractVerdict(s, KeyVerdict)
		if err != nil {
			return s, fmt.Errorf("interview: %w", err)
		}
		if verdict.Interview == nil {
			return s, fmt.Errorf("interview: %w: verdict carries no interview decision", ErrNoVerdict)
		}

		contact, method, err := interviews.SelectContact(article.Contacts, verdict.Interview.Method)
		if err != nil {
			return s, fmt.Errorf("interview: article %s: %w", article.ID, err)
		}
		if method != verdict.Interview.Method {
			rt.Logger.InfoContext(ctx, "interview channel fallback",
				"article_id", article.ID,
				"requested", verdict.Interview.Method,
				"selected", method,
			)
		}

		plan := buildPlan(ctx, rt, article, verdict, contact, method)

		receipt, err := rt.dispatcher(method).Dispatch(ctx, plan)
		if err != nil {
			return s, fmt.Errorf("interview: article %s: %w", article.ID, err)
		}

		if _, err := rt.Dispatch.Record(ctx, plan, receipt); err != nil {
			// The message is already out; losing the record breaks
			// reply correlation but must not undo the dispatch.
			rt.Logger.ErrorContext(ctx, "dispatch record failed",
				"article_id", article.ID,
				"handle", receipt.Handle,
				"error", err,
			)
		}

		s = s.Set(KeyResult, &Result{
			ArticleID: article.ID,
			Outcome:   OutcomeInterviewDispatched,
			Article:   article,
			Verdict:   verdict,
			Receipt:   receipt,
		})
		return s, nil
	})
}

func buildPlan(
	ctx context.Context,
	rt *Runtime,
	article *articles.Article,
	verdict *reviews.Verdict,
	contact *articles.Contact,
	method reviews.InterviewMethod,
) *interviews.Plan {
	callCtx, cancel := rt.collaboratorCtx(ctx)
	defer cancel()

	questions := interviews.BuildQuestions(callCtx, rt.Questions, interviews.QuestionRequest{
		Title:          article.Title,
		Content:        article.Content,
		Method:         method,
		ExpertiseAreas: verdict.Interview.ExpertiseAreas,
		Focus:          verdict.Interview.Focus,
	}, rt.Logger)

	plan := &interviews.Plan{
		ArticleID:      article.ID,
		Method:         method,
		Contact:        *contact,
		Subject:        fmt.Sprintf("Interview request: %s", article.Title),
		Questions:      questions,
		Background:     planBackground(article, verdict),
		Focus:          verdict.Interview.Focus,
		ExpertiseAreas: verdict.Interview.ExpertiseAreas,
	}

	if method == reviews.MethodPhone {
		plan.Script = interviews.PhoneScript(plan, "the editorial desk")
	}
	return plan
}

func planBackground(article *articles.Article, verdict *reviews.Verdict) string {
	background := fmt.Sprintf(
		"We are preparing an article titled %q and would value your expertise before publication.",
		article.Title,
	)
	if verdict.Interview.Justification != "" {
		background += " " + verdict.Interview.Justification
	}
	return background
}
