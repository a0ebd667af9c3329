package agents

import (
	"fmt"
	"strings"

	"newsdesk/internal/reviews"
)

const reviewPrompt = `You are the editor in chief of an online news desk.
Review the article below against these criteria: legal compliance,
factual accuracy, ethical standards, and house style. Decide whether an
expert interview is needed before publication.

Respond with a single JSON object matching this shape:
{
  "status": "OK" | "ISSUES_FOUND" | "RECONSIDERATION",
  "issues": [{"type": "Legal|Accuracy|Ethics|Style|Other", "location": "...", "description": "...", "suggestion": "..."}],
  "editorial_reasoning": {
    "reviewer": "...",
    "initial_decision": "ACCEPT" | "REJECT",
    "checked_criteria": ["..."],
    "failed_criteria": ["..."],
    "reasoning_steps": [{"step_id": 1, "action": "...", "observation": "...", "result": "PASS|FAIL|INFO"}],
    "explanation": "..."
  },
  "editorial_warning": {"category": "SensitiveTopic|MinorityGroup|Religion|Violence|Other", "details": "...", "topics": ["..."]},
  "interview_decision": {"interview_needed": false, "interview_method": "phone|email", "target_expertise_areas": ["..."], "interview_focus": "...", "justification": "..."},
  "editorial_decision": "publish" | "interview" | "revise" | "reject"
}

Omit editorial_warning unless the topic warrants a reader-facing notice.
Omit interview_decision unless you considered an interview.

Language: %s

Title: %s

Article:
%s`

const revisePrompt = `You are a news desk copy editor. Revise the article
below so that every listed issue is resolved. Preserve the factual
content, tone, and language of the original. Do not introduce new
claims.

Issues to fix:
%s
%s
Respond in exactly this format:

**Title:** <revised title>

**Content:**
<revised article content>

**Summary of revisions:**
<short summary of what changed>

Original title: %s

Original content:
%s`

const validatePrompt = `You verify whether specific editorial issues were
fixed in a revised article. Check only the issues listed below. Do not
search for new problems.

Issues to verify:
%s

Respond with a single JSON object:
{"all_fixes_verified": true|false, "remaining_issues": ["..."], "summary": "..."}

Revised title: %s

Revised content:
%s`

const questionsPrompt = `You prepare interview questions for a news
article. Generate %d focused questions for an expert interview conducted
by %s. Each question targets one of the expertise areas listed.

Expertise areas: %s
Interview focus: %s

Respond with a single JSON object:
{"questions": [{"topic": "...", "question": "...", "position": 1}]}

Article title: %s

Article:
%s`

const enrichPrompt = `You integrate an expert's interview reply into a
news article. Weave the relevant statements into the article body with
proper attribution to %s. Keep the article's language and structure.

Respond with a single JSON object:
{"title": "...", "content": "..."}

Interview reply:
%s

Current title: %s

Current content:
%s`

func formatIssues(issues []reviews.Issue) string {
	var b strings.Builder
	for i, issue := range issues {
		fmt.Fprintf(&b, "%d. [%s] %s: %s", i+1, issue.Type, issue.Location, issue.Description)
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, " (suggestion: %s)", issue.Suggestion)
		}
		b.WriteString("\n")
	}
	return b.String()
}
