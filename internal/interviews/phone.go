package interviews

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"newsdesk/internal/config"
	"newsdesk/internal/reviews"
)

// PhoneDispatcher triggers interview calls through the telephony
// service. The call SID is the reply tracking handle.
type PhoneDispatcher struct {
	cfg    config.PhoneConfig
	logger *slog.Logger
}

// NewPhoneDispatcher creates a call dispatcher from phone configuration.
func NewPhoneDispatcher(cfg config.PhoneConfig, logger *slog.Logger) *PhoneDispatcher {
	return &PhoneDispatcher{
		cfg:    cfg,
		logger: logger.With("dispatcher", "phone"),
	}
}

// Dispatch triggers the interview call and returns the tracking receipt.
func (d *PhoneDispatcher) Dispatch(ctx context.Context, plan *Plan) (*Receipt, error) {
	recipient := Recipient(&plan.Contact, reviews.MethodPhone)
	if recipient == "" {
		return nil, fmt.Errorf("%w: contact has no phone number", ErrDispatchFailed)
	}
	if d.cfg.AccountSID == "" || d.cfg.AuthToken == "" || d.cfg.FromNumber == "" {
		return nil, fmt.Errorf("%w: telephony credentials not configured", ErrDispatchFailed)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: d.cfg.AccountSID,
		Password: d.cfg.AuthToken,
	})

	params := &twilioapi.CreateCallParams{}
	params.SetTo(recipient)
	params.SetFrom(d.cfg.FromNumber)
	params.SetTwiml(scriptTwiml(plan))

	resp, err := client.Api.CreateCall(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}
	if resp.Sid == nil {
		return nil, fmt.Errorf("%w: call created without sid", ErrDispatchFailed)
	}

	d.logger.InfoContext(ctx, "interview call dispatched",
		"article_id", plan.ArticleID,
		"recipient", recipient,
		"handle", *resp.Sid,
		"questions", len(plan.Questions),
	)

	return &Receipt{
		Handle:    *resp.Sid,
		Method:    reviews.MethodPhone,
		Recipient: recipient,
	}, nil
}

// PhoneScript renders the interview call script: opening, consent
// checkpoint, each question with a wait marker, and closing. The script
// travels on the dispatch record so the voice integration can replay it.
func PhoneScript(plan *Plan, sender string) string {
	var b strings.Builder

	name := plan.Contact.Name
	if name == "" {
		name = "the interviewee"
	}

	fmt.Fprintf(&b, "OPENING: Hello, this is %s calling from the editorial desk. ", sender)
	fmt.Fprintf(&b, "We are preparing an article and would like to ask %s a few short questions.\n", name)
	b.WriteString("ASK: Do you have a few minutes to answer some questions on the record?\n")
	b.WriteString("WAIT_FOR_CONSENT\n")

	for _, q := range plan.Questions {
		fmt.Fprintf(&b, "QUESTION %d: %s\n", q.Position, q.Question)
		b.WriteString("WAIT_FOR_ANSWER\n")
	}

	b.WriteString("CLOSING: Thank you very much for your time. Your answers may be quoted in the article.\n")
	return b.String()
}

func scriptTwiml(plan *Plan) string {
	var b strings.Builder
	b.WriteString("<Response>")
	for _, line := range strings.Split(plan.Script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "WAIT_FOR_") {
			b.WriteString(`<Pause length="8"/>`)
			continue
		}
		if _, text, found := strings.Cut(line, ": "); found {
			fmt.Fprintf(&b, "<Say>%s</Say>", xmlEscape(text))
		}
	}
	b.WriteString("</Response>")
	return b.String()
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
