package interviews

import (
	"newsdesk/internal/articles"
	"newsdesk/internal/reviews"
)

// SelectContact resolves the interview recipient and the effective
// channel. Selection is deterministic: the primary contact possessing
// the required channel wins, then the first contact possessing it. A
// phone interview with no phone-capable contact falls back to email
// before failing closed.
func SelectContact(
	contacts []articles.Contact,
	method reviews.InterviewMethod,
) (*articles.Contact, reviews.InterviewMethod, error) {
	if method == "" {
		method = reviews.MethodEmail
	}

	if c := pickForChannel(contacts, method); c != nil {
		return c, method, nil
	}

	if method == reviews.MethodPhone {
		if c := pickForChannel(contacts, reviews.MethodEmail); c != nil {
			return c, reviews.MethodEmail, nil
		}
	}

	return nil, method, ErrNoContact
}

func pickForChannel(contacts []articles.Contact, method reviews.InterviewMethod) *articles.Contact {
	var first *articles.Contact
	for i := range contacts {
		if !hasChannel(&contacts[i], method) {
			continue
		}
		if contacts[i].IsPrimary {
			return &contacts[i]
		}
		if first == nil {
			first = &contacts[i]
		}
	}
	return first
}

func hasChannel(c *articles.Contact, method reviews.InterviewMethod) bool {
	switch method {
	case reviews.MethodPhone:
		return c.Phone != ""
	default:
		return c.Email != ""
	}
}

// Recipient returns the channel address of a contact for a method.
func Recipient(c *articles.Contact, method reviews.InterviewMethod) string {
	if method == reviews.MethodPhone {
		return c.Phone
	}
	return c.Email
}
