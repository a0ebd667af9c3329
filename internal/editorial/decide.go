package editorial

import (
	"fmt"

	"newsdesk/internal/reviews"
)

// MaxRevisions is the hard bound on completed revision cycles per
// article. Once the persisted count reaches it, any verdict that would
// otherwise route to revision is forced into rejection.
const MaxRevisions = 2

// Decide classifies a verdict against the article's persisted revision
// count and returns exactly one action plus the verdict to persist. It
// is a pure function: no side effects, no collaborator calls.
//
// Evaluation order:
//  1. An explicit reject decision from the judge is final.
//  2. No issues and no failed criteria routes to publish, whatever the
//     verdict's own recommendation was.
//  3. A verdict with issues and a standing interview request routes to
//     interview before any revision attempt is consumed.
//  4. A revise-bound verdict at the revision cap is forced to reject.
//  5. Failed criteria without located issues synthesize one issue per
//     criterion and get one explicit revision attempt.
func Decide(v *reviews.Verdict, revisionCount int) (Action, *reviews.Verdict) {
	v.Normalize()

	if v.Decision == reviews.DecideReject {
		return ActionReject, v
	}

	noIssues := len(v.Issues) == 0
	noFailedCriteria := len(v.Reasoning.FailedCriteria) == 0

	if noIssues && noFailedCriteria {
		v.Decision = reviews.DecidePublish
		return ActionPublish, v
	}

	if !noIssues && v.InterviewNeeded() {
		v.Decision = reviews.DecideInterview
		return ActionInterview, v
	}

	// From here a revise decision would be taken; the cap is absolute.
	if revisionCount >= MaxRevisions {
		return ActionReject, forcedRejection(v, revisionCount)
	}

	if noIssues {
		v.Issues = criteriaIssues(v.Reasoning.FailedCriteria)
	}
	v.Decision = reviews.DecideRevise
	return ActionRevise, v
}

// forcedRejection rewrites a verdict into the automatic rejection
// issued when the revision bound is exhausted.
func forcedRejection(v *reviews.Verdict, revisionCount int) *reviews.Verdict {
	explanation := fmt.Sprintf(
		"Revision limit exceeded: %d revision cycles completed without resolving all issues.",
		revisionCount,
	)

	v.Status = reviews.StatusIssuesFound
	v.Decision = reviews.DecideReject
	v.Reasoning = reviews.Reasoning{
		Reviewer:        v.Reasoning.Reviewer,
		InitialDecision: reviews.DecisionReject,
		CheckedCriteria: v.Reasoning.CheckedCriteria,
		FailedCriteria:  v.Reasoning.FailedCriteria,
		Explanation:     explanation,
	}
	return v
}

// criteriaIssues synthesizes one issue per failed criterion so the
// reviser gets an explicit correction target instead of a vague
// criterion name.
func criteriaIssues(failed []string) []reviews.Issue {
	issues := make([]reviews.Issue, 0, len(failed))
	for _, criterion := range failed {
		issues = append(issues, reviews.Issue{
			Type:        reviews.IssueOther,
			Location:    "Article",
			Description: fmt.Sprintf("Failed criteria: %s", criterion),
			Suggestion:  "Revise the article so this criterion passes.",
		})
	}
	return issues
}
