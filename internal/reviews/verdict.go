// Package reviews defines the editorial verdict model and the audit
// persistence for editorial reviews, issues, and reasoning steps.
package reviews

import "strings"

// Status is the overall outcome of an editorial review.
type Status string

const (
	StatusOK              Status = "OK"
	StatusIssuesFound     Status = "ISSUES_FOUND"
	StatusReconsideration Status = "RECONSIDERATION"
)

// IssueType categorizes a review issue.
type IssueType string

const (
	IssueLegal    IssueType = "Legal"
	IssueAccuracy IssueType = "Accuracy"
	IssueEthics   IssueType = "Ethics"
	IssueStyle    IssueType = "Style"
	IssueOther    IssueType = "Other"
)

// StepResult is the outcome of a single reasoning step.
type StepResult string

const (
	ResultPass StepResult = "PASS"
	ResultFail StepResult = "FAIL"
	ResultInfo StepResult = "INFO"
)

// InitialDecision is the reviewer's high-level verdict before routing.
type InitialDecision string

const (
	DecisionAccept InitialDecision = "ACCEPT"
	DecisionReject InitialDecision = "REJECT"
)

// Decision is the editorial routing decision attached to a verdict.
type Decision string

const (
	DecidePublish   Decision = "publish"
	DecideInterview Decision = "interview"
	DecideRevise    Decision = "revise"
	DecideReject    Decision = "reject"
)

// InterviewMethod selects the channel for an expert interview.
type InterviewMethod string

const (
	MethodPhone InterviewMethod = "phone"
	MethodEmail InterviewMethod = "email"
)

// WarningCategory is the primary reason for an editorial warning.
type WarningCategory string

const (
	WarnSensitiveTopic WarningCategory = "SensitiveTopic"
	WarnMinorityGroup  WarningCategory = "MinorityGroup"
	WarnReligion       WarningCategory = "Religion"
	WarnViolence       WarningCategory = "Violence"
	WarnOther          WarningCategory = "Other"
)

// Issue is a single problem located in the article during review.
type Issue struct {
	Type        IssueType `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Suggestion  string    `json:"suggestion"`
}

// ReasoningStep records one evaluation step taken by the reviewer.
type ReasoningStep struct {
	StepID      int        `json:"step_id"`
	Action      string     `json:"action"`
	Observation string     `json:"observation"`
	Result      StepResult `json:"result"`
}

// Reconsideration captures a reassessment of initially failed criteria.
type Reconsideration struct {
	FailedCriteria []string        `json:"failed_criteria"`
	FinalDecision  InitialDecision `json:"final_decision"`
	Steps          []ReasoningStep `json:"reasoning_steps"`
	Explanation    string          `json:"explanation"`
}

// Warning is a structured reader-facing editorial warning. Required when
// the review status is RECONSIDERATION.
type Warning struct {
	Category WarningCategory `json:"category"`
	Details  string          `json:"details"`
	Topics   []string        `json:"topics"`
}

// Reasoning is the evaluation trail supporting the review outcome.
type Reasoning struct {
	Reviewer        string           `json:"reviewer"`
	InitialDecision InitialDecision  `json:"initial_decision"`
	CheckedCriteria []string         `json:"checked_criteria"`
	FailedCriteria  []string         `json:"failed_criteria"`
	Steps           []ReasoningStep  `json:"reasoning_steps"`
	Explanation     string           `json:"explanation"`
	Reconsideration *Reconsideration `json:"reconsideration,omitempty"`
}

// InterviewDecision records whether an expert interview is needed before
// the article can be published, and how to conduct it.
type InterviewDecision struct {
	Needed         bool            `json:"interview_needed"`
	Method         InterviewMethod `json:"interview_method,omitempty"`
	ExpertiseAreas []string        `json:"target_expertise_areas"`
	Focus          string          `json:"interview_focus,omitempty"`
	Justification  string          `json:"justification,omitempty"`
}

// Verdict is the structured result of an editorial review. It is the
// only input the decision router consumes besides the persisted
// revision count.
type Verdict struct {
	Status          Status             `json:"status"`
	Issues          []Issue            `json:"issues"`
	ApprovalComment string             `json:"approval_comment,omitempty"`
	Reasoning       Reasoning          `json:"editorial_reasoning"`
	Reconsideration *Reconsideration   `json:"reconsideration,omitempty"`
	Warning         *Warning           `json:"editorial_warning,omitempty"`
	Interview       *InterviewDecision `json:"interview_decision,omitempty"`
	Decision        Decision           `json:"editorial_decision,omitempty"`
}

// Normalize clamps malformed enumerated fields to safe values so a noisy
// model response never derails routing. Unknown statuses degrade to
// ISSUES_FOUND, which routes through revision rather than publication.
func (v *Verdict) Normalize() {
	switch Status(strings.ToUpper(strings.TrimSpace(string(v.Status)))) {
	case StatusOK:
		v.Status = StatusOK
	case StatusReconsideration:
		v.Status = StatusReconsideration
	default:
		v.Status = StatusIssuesFound
	}

	if v.Issues == nil {
		v.Issues = []Issue{}
	}
	for i := range v.Issues {
		v.Issues[i].Type = normalizeIssueType(v.Issues[i].Type)
		if v.Issues[i].Location == "" {
			v.Issues[i].Location = "Article"
		}
	}

	v.Reasoning.normalize()
	if v.Reconsideration != nil {
		v.Reconsideration.normalize()
	}

	if v.Interview != nil {
		switch InterviewMethod(strings.ToLower(strings.TrimSpace(string(v.Interview.Method)))) {
		case MethodPhone:
			v.Interview.Method = MethodPhone
		default:
			v.Interview.Method = MethodEmail
		}
		if v.Interview.ExpertiseAreas == nil {
			v.Interview.ExpertiseAreas = []string{}
		}
	}

	switch v.Decision {
	case DecidePublish, DecideInterview, DecideRevise, DecideReject:
	default:
		v.Decision = ""
	}
}

// HasIssues reports whether the verdict lists at least one located issue.
func (v *Verdict) HasIssues() bool {
	return len(v.Issues) > 0
}

// InterviewNeeded reports whether the verdict requests an expert interview.
func (v *Verdict) InterviewNeeded() bool {
	return v.Interview != nil && v.Interview.Needed
}

func (r *Reasoning) normalize() {
	if r.InitialDecision != DecisionAccept {
		r.InitialDecision = DecisionReject
	}
	if r.CheckedCriteria == nil {
		r.CheckedCriteria = []string{}
	}
	if r.FailedCriteria == nil {
		r.FailedCriteria = []string{}
	}
	for i := range r.Steps {
		r.Steps[i].Result = normalizeResult(r.Steps[i].Result)
	}
	if r.Reconsideration != nil {
		r.Reconsideration.normalize()
	}
}

func (r *Reconsideration) normalize() {
	if r.FinalDecision != DecisionAccept {
		r.FinalDecision = DecisionReject
	}
	if r.FailedCriteria == nil {
		r.FailedCriteria = []string{}
	}
	for i := range r.Steps {
		r.Steps[i].Result = normalizeResult(r.Steps[i].Result)
	}
}

func normalizeIssueType(t IssueType) IssueType {
	switch t {
	case IssueLegal, IssueAccuracy, IssueEthics, IssueStyle:
		return t
	default:
		return IssueOther
	}
}

func normalizeResult(r StepResult) StepResult {
	switch StepResult(strings.ToUpper(strings.TrimSpace(string(r)))) {
	case ResultPass:
		return ResultPass
	case ResultFail:
		return ResultFail
	default:
		return ResultInfo
	}
}

// Rejection builds a synthetic rejecting verdict used when a collaborator
// fails and the article cannot be safely routed anywhere but reject.
func Rejection(reviewer, reason string) *Verdict {
	return &Verdict{
		Status: StatusIssuesFound,
		Issues: []Issue{{
			Type:        IssueOther,
			Location:    "Article",
			Description: reason,
			Suggestion:  "Resolve the pipeline failure and resubmit for review.",
		}},
		Reasoning: Reasoning{
			Reviewer:        reviewer,
			InitialDecision: DecisionReject,
			CheckedCriteria: []string{},
			FailedCriteria:  []string{"pipeline"},
			Explanation:     reason,
		},
		Decision: DecideReject,
	}
}
