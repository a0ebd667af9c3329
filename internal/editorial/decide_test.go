package editorial_test

import (
	"strings"
	"testing"

	"newsdesk/internal/editorial"
	"newsdesk/internal/reviews"
)

func issueVerdict(issues ...reviews.Issue) *reviews.Verdict {
	return &reviews.Verdict{
		Status: reviews.StatusIssuesFound,
		Issues: issues,
		Reasoning: reviews.Reasoning{
			Reviewer:        "editor",
			InitialDecision: reviews.DecisionReject,
			FailedCriteria:  []string{"accuracy"},
		},
	}
}

func sampleIssue() reviews.Issue {
	return reviews.Issue{
		Type:        reviews.IssueAccuracy,
		Location:    "Paragraph 1",
		Description: "date is wrong",
	}
}

func TestDecideExplicitRejectIsFinal(t *testing.T) {
	v := &reviews.Verdict{
		Status:   reviews.StatusOK,
		Decision: reviews.DecideReject,
	}

	action, routed := editorial.Decide(v, 0)
	if action != editorial.ActionReject {
		t.Errorf("action = %q, want reject", action)
	}
	if routed.Decision != reviews.DecideReject {
		t.Errorf("Decision = %q, want reject", routed.Decision)
	}
}

func TestDecideCleanVerdictPublishes(t *testing.T) {
	tests := []struct {
		name     string
		decision reviews.Decision
	}{
		{name: "no recommendation", decision: ""},
		{name: "revise recommendation overridden", decision: reviews.DecideRevise},
		{name: "interview recommendation overridden", decision: reviews.DecideInterview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &reviews.Verdict{
				Status:   reviews.StatusOK,
				Decision: tt.decision,
				Reasoning: reviews.Reasoning{
					InitialDecision: reviews.DecisionAccept,
				},
			}

			action, routed := editorial.Decide(v, 0)
			if action != editorial.ActionPublish {
				t.Errorf("action = %q, want publish", action)
			}
			if routed.Decision != reviews.DecidePublish {
				t.Errorf("Decision = %q, want publish", routed.Decision)
			}
		})
	}
}

func TestDecideInterviewBeforeRevision(t *testing.T) {
	v := issueVerdict(sampleIssue())
	v.Interview = &reviews.InterviewDecision{
		Needed: true,
		Method: reviews.MethodEmail,
	}

	action, routed := editorial.Decide(v, 0)
	if action != editorial.ActionInterview {
		t.Errorf("action = %q, want interview", action)
	}
	if routed.Decision != reviews.DecideInterview {
		t.Errorf("Decision = %q, want interview", routed.Decision)
	}
}

func TestDecideInterviewAtRevisionCap(t *testing.T) {
	// An interview does not consume a revision attempt, so it outranks
	// the cap check even when the count is exhausted.
	v := issueVerdict(sampleIssue())
	v.Interview = &reviews.InterviewDecision{Needed: true}

	action, _ := editorial.Decide(v, editorial.MaxRevisions)
	if action != editorial.ActionInterview {
		t.Errorf("action = %q, want interview", action)
	}
}

func TestDecideIssuesRouteToRevision(t *testing.T) {
	v := issueVerdict(sampleIssue())

	action, routed := editorial.Decide(v, 1)
	if action != editorial.ActionRevise {
		t.Errorf("action = %q, want revise", action)
	}
	if routed.Decision != reviews.DecideRevise {
		t.Errorf("Decision = %q, want revise", routed.Decision)
	}
	if len(routed.Issues) != 1 {
		t.Errorf("len(Issues) = %d, want 1", len(routed.Issues))
	}
}

func TestDecideCapForcesRejection(t *testing.T) {
	v := issueVerdict(sampleIssue())

	action, routed := editorial.Decide(v, editorial.MaxRevisions)
	if action != editorial.ActionReject {
		t.Errorf("action = %q, want reject", action)
	}
	if routed.Decision != reviews.DecideReject {
		t.Errorf("Decision = %q, want reject", routed.Decision)
	}
	if !strings.Contains(routed.Reasoning.Explanation, "Revision limit exceeded") {
		t.Errorf("Explanation = %q", routed.Reasoning.Explanation)
	}
}

func TestDecideCapOnlyAppliesToRevision(t *testing.T) {
	// A clean verdict publishes regardless of how many revisions the
	// article has been through.
	v := &reviews.Verdict{
		Status:    reviews.StatusOK,
		Reasoning: reviews.Reasoning{InitialDecision: reviews.DecisionAccept},
	}

	action, _ := editorial.Decide(v, editorial.MaxRevisions+1)
	if action != editorial.ActionPublish {
		t.Errorf("action = %q, want publish", action)
	}
}

func TestDecideSynthesizesCriteriaIssues(t *testing.T) {
	v := &reviews.Verdict{
		Status: reviews.StatusIssuesFound,
		Reasoning: reviews.Reasoning{
			InitialDecision: reviews.DecisionReject,
			FailedCriteria:  []string{"balanced sourcing", "headline accuracy"},
		},
	}

	action, routed := editorial.Decide(v, 0)
	if action != editorial.ActionRevise {
		t.Errorf("action = %q, want revise", action)
	}
	if len(routed.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2", len(routed.Issues))
	}
	if routed.Issues[0].Description != "Failed criteria: balanced sourcing" {
		t.Errorf("Issues[0].Description = %q", routed.Issues[0].Description)
	}
	if routed.Issues[0].Location != "Article" {
		t.Errorf("Issues[0].Location = %q, want Article", routed.Issues[0].Location)
	}
	if routed.Issues[0].Type != reviews.IssueOther {
		t.Errorf("Issues[0].Type = %q, want Other", routed.Issues[0].Type)
	}
}

func TestDecideFailedCriteriaWithIssuesNoSynthesis(t *testing.T) {
	v := issueVerdict(sampleIssue())

	_, routed := editorial.Decide(v, 0)
	if len(routed.Issues) != 1 {
		t.Errorf("len(Issues) = %d, want the original issue only", len(routed.Issues))
	}
}
