package reviews_test

import (
	"testing"

	"newsdesk/internal/reviews"
)

func TestNormalizeClampsStatus(t *testing.T) {
	tests := []struct {
		name string
		in   reviews.Status
		want reviews.Status
	}{
		{name: "lowercase ok", in: "ok", want: reviews.StatusOK},
		{name: "padded reconsideration", in: "  RECONSIDERATION ", want: reviews.StatusReconsideration},
		{name: "unknown degrades to issues found", in: "APPROVED", want: reviews.StatusIssuesFound},
		{name: "empty degrades to issues found", in: "", want: reviews.StatusIssuesFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := reviews.Verdict{Status: tt.in}
			v.Normalize()
			if v.Status != tt.want {
				t.Errorf("Status = %q, want %q", v.Status, tt.want)
			}
		})
	}
}

func TestNormalizeIssues(t *testing.T) {
	v := reviews.Verdict{
		Status: reviews.StatusIssuesFound,
		Issues: []reviews.Issue{
			{Type: "Factual", Description: "wrong date"},
			{Type: reviews.IssueLegal, Location: "Paragraph 2", Description: "defamation risk"},
		},
	}
	v.Normalize()

	if v.Issues[0].Type != reviews.IssueOther {
		t.Errorf("unknown issue type = %q, want %q", v.Issues[0].Type, reviews.IssueOther)
	}
	if v.Issues[0].Location != "Article" {
		t.Errorf("empty location = %q, want Article", v.Issues[0].Location)
	}
	if v.Issues[1].Type != reviews.IssueLegal {
		t.Errorf("known issue type changed to %q", v.Issues[1].Type)
	}
	if v.Issues[1].Location != "Paragraph 2" {
		t.Errorf("populated location changed to %q", v.Issues[1].Location)
	}
}

func TestNormalizeNilIssuesBecomesEmpty(t *testing.T) {
	v := reviews.Verdict{Status: reviews.StatusOK}
	v.Normalize()
	if v.Issues == nil {
		t.Fatal("Issues = nil, want empty slice")
	}
}

func TestNormalizeInterviewMethod(t *testing.T) {
	tests := []struct {
		name string
		in   reviews.InterviewMethod
		want reviews.InterviewMethod
	}{
		{name: "phone kept", in: "PHONE", want: reviews.MethodPhone},
		{name: "unknown degrades to email", in: "fax", want: reviews.MethodEmail},
		{name: "empty degrades to email", in: "", want: reviews.MethodEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := reviews.Verdict{
				Status:    reviews.StatusIssuesFound,
				Interview: &reviews.InterviewDecision{Needed: true, Method: tt.in},
			}
			v.Normalize()
			if v.Interview.Method != tt.want {
				t.Errorf("Method = %q, want %q", v.Interview.Method, tt.want)
			}
		})
	}
}

func TestNormalizeInvalidDecisionCleared(t *testing.T) {
	v := reviews.Verdict{Status: reviews.StatusOK, Decision: "approve"}
	v.Normalize()
	if v.Decision != "" {
		t.Errorf("Decision = %q, want empty", v.Decision)
	}
}

func TestRejection(t *testing.T) {
	v := reviews.Rejection("editor", "Revision failed: timeout")

	if v.Status != reviews.StatusIssuesFound {
		t.Errorf("Status = %q, want %q", v.Status, reviews.StatusIssuesFound)
	}
	if v.Decision != reviews.DecideReject {
		t.Errorf("Decision = %q, want %q", v.Decision, reviews.DecideReject)
	}
	if len(v.Issues) != 1 {
		t.Fatalf("len(Issues) = %d, want 1", len(v.Issues))
	}
	if v.Issues[0].Location != "Article" {
		t.Errorf("Location = %q, want Article", v.Issues[0].Location)
	}
	if v.Reasoning.Reviewer != "editor" {
		t.Errorf("Reviewer = %q, want editor", v.Reasoning.Reviewer)
	}
	if v.Reasoning.InitialDecision != reviews.DecisionReject {
		t.Errorf("InitialDecision = %q, want %q", v.Reasoning.InitialDecision, reviews.DecisionReject)
	}
}

func TestFromValidationVerified(t *testing.T) {
	res := &reviews.ValidationResult{
		AllFixesVerified: true,
		Summary:          "All issues addressed.",
	}

	v := reviews.FromValidation(res, "fix-validator", 1)

	if v.Status != reviews.StatusOK {
		t.Errorf("Status = %q, want %q", v.Status, reviews.StatusOK)
	}
	if v.Decision != reviews.DecidePublish {
		t.Errorf("Decision = %q, want %q", v.Decision, reviews.DecidePublish)
	}
	if len(v.Issues) != 0 {
		t.Errorf("len(Issues) = %d, want 0", len(v.Issues))
	}
	if v.ApprovalComment != "All issues addressed." {
		t.Errorf("ApprovalComment = %q", v.ApprovalComment)
	}
}

func TestFromValidationRemainingIssues(t *testing.T) {
	res := &reviews.ValidationResult{
		AllFixesVerified: false,
		RemainingIssues:  []string{"date still wrong", "quote unattributed"},
		Summary:          "Two issues remain.",
	}

	tests := []struct {
		name          string
		revisionCount int
		want          reviews.Decision
	}{
		{name: "below cap routes revise", revisionCount: 1, want: reviews.DecideRevise},
		{name: "at cap routes reject", revisionCount: 2, want: reviews.DecideReject},
		{name: "beyond cap routes reject", revisionCount: 3, want: reviews.DecideReject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := reviews.FromValidation(res, "fix-validator", tt.revisionCount)

			if v.Status != reviews.StatusIssuesFound {
				t.Errorf("Status = %q, want %q", v.Status, reviews.StatusIssuesFound)
			}
			if v.Decision != tt.want {
				t.Errorf("Decision = %q, want %q", v.Decision, tt.want)
			}
			if len(v.Issues) != 2 {
				t.Fatalf("len(Issues) = %d, want 2", len(v.Issues))
			}
			if v.Issues[0].Description != "date still wrong" {
				t.Errorf("Issues[0].Description = %q", v.Issues[0].Description)
			}
			if v.Issues[0].Location != "Article" {
				t.Errorf("Issues[0].Location = %q, want Article", v.Issues[0].Location)
			}
		})
	}
}
