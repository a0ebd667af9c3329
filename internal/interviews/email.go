package interviews

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"

	"newsdesk/internal/config"
	"newsdesk/internal/reviews"
)

// EmailDispatcher sends interview plans over SMTP. The generated
// Message-ID doubles as the reply tracking handle.
type EmailDispatcher struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

// NewEmailDispatcher creates an SMTP dispatcher from mail configuration.
func NewEmailDispatcher(cfg config.MailConfig, logger *slog.Logger) *EmailDispatcher {
	return &EmailDispatcher{
		cfg:    cfg,
		logger: logger.With("dispatcher", "email"),
	}
}

// Dispatch sends the interview email and returns the tracking receipt.
func (d *EmailDispatcher) Dispatch(ctx context.Context, plan *Plan) (*Receipt, error) {
	recipient := Recipient(&plan.Contact, reviews.MethodEmail)
	if recipient == "" {
		return nil, fmt.Errorf("%w: contact has no email address", ErrDispatchFailed)
	}

	handle := fmt.Sprintf("%s@%s", uuid.New(), d.cfg.Domain)

	msg := mail.NewMsg()
	if err := msg.FromFormat(d.cfg.SenderName, d.cfg.From); err != nil {
		return nil, fmt.Errorf("%w: from address: %w", ErrDispatchFailed, err)
	}
	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("%w: recipient address: %w", ErrDispatchFailed, err)
	}
	msg.Subject(plan.Subject)
	msg.SetMessageIDWithValue(handle)
	msg.SetBodyString(mail.TypeTextPlain, EmailBody(plan, d.cfg.SenderName))
	msg.AddAlternativeString(mail.TypeTextHTML, emailBodyHTML(plan, d.cfg.SenderName))

	client, err := mail.NewClient(d.cfg.Host,
		mail.WithPort(d.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: smtp client: %w", ErrDispatchFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	d.logger.InfoContext(ctx, "interview email dispatched",
		"article_id", plan.ArticleID,
		"recipient", recipient,
		"handle", handle,
		"questions", len(plan.Questions),
	)

	return &Receipt{
		Handle:    handle,
		Method:    reviews.MethodEmail,
		Recipient: recipient,
	}, nil
}

// EmailBody renders the plain-text interview email: greeting, background
// context, numbered questions, and sign-off.
func EmailBody(plan *Plan, sender string) string {
	var b strings.Builder

	name := plan.Contact.Name
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hello %s,\n\n", name)

	if plan.Background != "" {
		b.WriteString(plan.Background)
		b.WriteString("\n\n")
	}
	if plan.Focus != "" {
		fmt.Fprintf(&b, "We would value your perspective on %s.\n\n", plan.Focus)
	}

	b.WriteString("Our questions:\n\n")
	for _, q := range plan.Questions {
		fmt.Fprintf(&b, "%d. %s\n", q.Position, q.Question)
	}

	fmt.Fprintf(&b, "\nYou can reply directly to this email. Thank you for your time.\n\nBest regards,\n%s\n", sender)
	return b.String()
}

func emailBodyHTML(plan *Plan, sender string) string {
	var b strings.Builder

	name := plan.Contact.Name
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "<p>Hello %s,</p>", html.EscapeString(name))

	if plan.Background != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(plan.Background))
	}
	if plan.Focus != "" {
		fmt.Fprintf(&b, "<p>We would value your perspective on %s.</p>", html.EscapeString(plan.Focus))
	}

	b.WriteString("<p>Our questions:</p><ol>")
	for _, q := range plan.Questions {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(q.Question))
	}
	b.WriteString("</ol>")

	fmt.Fprintf(&b, "<p>You can reply directly to this email. Thank you for your time.</p><p>Best regards,<br>%s</p>", html.EscapeString(sender))
	return b.String()
}
