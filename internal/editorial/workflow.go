package editorial

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"newsdesk/internal/articles"
	"newsdesk/internal/reviews"
)

// Run routes a verdict through the decision graph until the article
// reaches a terminal outcome: published, rejected, or awaiting an
// interview reply. Each revision cycle produces a fresh verdict that
// re-enters the decision node, with the revision bound enforced against
// the persisted count.
func Run(ctx context.Context, rt *Runtime, articleID uuid.UUID, verdict *reviews.Verdict) (*Result, error) {
	if verdict == nil {
		return nil, ErrNoVerdict
	}

	cycles := 0
	for {
		final, err := executeCycle(ctx, rt, articleID, verdict, cycles)
		if err != nil {
			return nil, err
		}

		cycles = cyclesFrom(final)

		if val, ok := final.Get(KeyResult); ok {
			result, ok := val.(*Result)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not *Result", ErrWorkflowFailed, KeyResult)
			}
			result.Cycles = cycles
			return result, nil
		}

		next, ok := final.Get(KeyNext)
		if !ok {
			return nil, fmt.Errorf("%w: cycle produced neither result nor verdict", ErrWorkflowFailed)
		}
		verdict, ok = next.(*reviews.Verdict)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not *reviews.Verdict", ErrWorkflowFailed, KeyNext)
		}
	}
}

func executeCycle(
	ctx context.Context,
	rt *Runtime,
	articleID uuid.UUID,
	verdict *reviews.Verdict,
	cycles int,
) (state.State, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return state.State{}, fmt.Errorf("%w: build graph: %w", ErrWorkflowFailed, err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyArticleID, articleID)
	initialState = initialState.Set(KeyVerdict, verdict)
	initialState = initialState.Set(KeyCycles, cycles)

	final, err := graph.Execute(ctx, initialState)
	if err != nil {
		return state.State{}, fmt.Errorf("%w: %w", ErrWorkflowFailed, err)
	}
	return final, nil
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("editorial-decision")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("decide", DecideNode(rt)); err != nil {
		return nil, err
	}
	if err := graph.AddNode("publish", PublishNode(rt)); err != nil {
		return nil, err
	}
	if err := graph.AddNode("interview", InterviewNode(rt)); err != nil {
		return nil, err
	}
	if err := graph.AddNode("revise", ReviseNode(rt)); err != nil {
		return nil, err
	}
	if err := graph.AddNode("reject", RejectNode(rt)); err != nil {
		return nil, err
	}
	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// decide → one action per verdict classification
	if err := graph.AddEdge("decide", "publish", actionIs(ActionPublish)); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("decide", "interview", actionIs(ActionInterview)); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("decide", "revise", actionIs(ActionRevise)); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("decide", "reject", actionIs(ActionReject)); err != nil {
		return nil, err
	}

	// every action → finalize (unconditional)
	for _, node := range []string{"publish", "interview", "revise", "reject"} {
		if err := graph.AddEdge(node, "finalize", nil); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint("decide"); err != nil {
		return nil, err
	}
	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

// DecideNode loads the article for its persisted revision count, routes
// the verdict, and records the routed verdict in the audit tables.
func DecideNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		articleID, err := extractArticleID(s)
		if err != nil {
			return s, fmt.Errorf("decide: %w", err)
		}
		verdict, err := extractVerdict(s, KeyVerdict)
		if err != nil {
			return s, fmt.Errorf("decide: %w", err)
		}

		article, err := rt.Articles.Find(ctx, articleID)
		if err != nil {
			return s, fmt.Errorf("decide: load article: %w", err)
		}

		action, routed := Decide(verdict, article.RevisionCount)

		if err := rt.Reviews.Save(ctx, articleID, routed); err != nil {
			rt.Logger.WarnContext(ctx, "audit save failed", "article_id", articleID, "error", err)
			s = s.Set(KeyAuditErr, err)
		}

		rt.Logger.InfoContext(ctx, "verdict routed",
			"article_id", articleID,
			"status", routed.Status,
			"action", action,
			"revision_count", article.RevisionCount,
		)

		s = s.Set(KeyArticle, article)
		s = s.Set(KeyVerdict, routed)
		s = s.Set(KeyAction, action)
		return s, nil
	})
}

// FinalizeNode verifies the cycle produced either a terminal result or
// a verdict for the next cycle.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		_, hasResult := s.Get(KeyResult)
		_, hasNext := s.Get(KeyNext)
		if !hasResult && !hasNext {
			return s, fmt.Errorf("finalize: %w", ErrNoVerdict)
		}
		return s, nil
	})
}

func actionIs(a Action) func(state.State) bool {
	return func(s state.State) bool {
		val, ok := s.Get(KeyAction)
		if !ok {
			return false
		}
		action, ok := val.(Action)
		return ok && action == a
	}
}

func extractArticleID(s state.State) (uuid.UUID, error) {
	val, ok := s.Get(KeyArticleID)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing %s in state", KeyArticleID)
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("%s is not uuid.UUID", KeyArticleID)
	}
	return id, nil
}

func extractVerdict(s state.State, key string) (*reviews.Verdict, error) {
	val, ok := s.Get(key)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", key)
	}
	v, ok := val.(*reviews.Verdict)
	if !ok {
		return nil, fmt.Errorf("%s is not *reviews.Verdict", key)
	}
	return v, nil
}

func extractArticle(s state.State) (*articles.Article, error) {
	val, ok := s.Get(KeyArticle)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyArticle)
	}
	a, ok := val.(*articles.Article)
	if !ok {
		return nil, fmt.Errorf("%s is not *articles.Article", KeyArticle)
	}
	return a, nil
}

func cyclesFrom(s state.State) int {
	val, ok := s.Get(KeyCycles)
	if !ok {
		return 0
	}
	cycles, ok := val.(int)
	if !ok {
		return 0
	}
	return cycles
}
