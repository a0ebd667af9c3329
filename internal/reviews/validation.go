package reviews

import "fmt"

// ValidationResult is the narrow output of the fix validation
// collaborator: it verifies only the named issues against revised
// content and never hunts for new ones.
type ValidationResult struct {
	AllFixesVerified bool     `json:"all_fixes_verified"`
	RemainingIssues  []string `json:"remaining_issues"`
	Summary          string   `json:"summary"`
}

// FromValidation translates a fix validation result into the verdict
// that re-enters the decision router. revisionCount is the persisted
// count after the revision that was just validated.
func FromValidation(res *ValidationResult, reviewer string, revisionCount int) *Verdict {
	if res.AllFixesVerified {
		return &Verdict{
			Status:          StatusOK,
			Issues:          []Issue{},
			ApprovalComment: res.Summary,
			Reasoning: Reasoning{
				Reviewer:        reviewer,
				InitialDecision: DecisionAccept,
				CheckedCriteria: []string{"fix verification"},
				FailedCriteria:  []string{},
				Explanation:     res.Summary,
			},
			Decision: DecidePublish,
		}
	}

	issues := make([]Issue, 0, len(res.RemainingIssues))
	for _, remaining := range res.RemainingIssues {
		issues = append(issues, Issue{
			Type:        IssueOther,
			Location:    "Article",
			Description: remaining,
			Suggestion:  "Address the remaining issue identified during fix verification.",
		})
	}

	decision := DecideRevise
	if revisionCount >= 2 {
		decision = DecideReject
	}

	return &Verdict{
		Status: StatusIssuesFound,
		Issues: issues,
		Reasoning: Reasoning{
			Reviewer:        reviewer,
			InitialDecision: DecisionReject,
			CheckedCriteria: []string{"fix verification"},
			FailedCriteria:  []string{fmt.Sprintf("%d unresolved issues", len(issues))},
			Explanation:     res.Summary,
		},
		Decision: decision,
	}
}
