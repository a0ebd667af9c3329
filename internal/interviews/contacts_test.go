package interviews_test

import (
	"errors"
	"testing"

	"newsdesk/internal/articles"
	"newsdesk/internal/interviews"
	"newsdesk/internal/reviews"
)

func TestSelectContactPrimaryWins(t *testing.T) {
	contacts := []articles.Contact{
		{Name: "Second String", Email: "second@example.com"},
		{Name: "Lead Source", Email: "lead@example.com", IsPrimary: true},
	}

	contact, method, err := interviews.SelectContact(contacts, reviews.MethodEmail)
	if err != nil {
		t.Fatalf("SelectContact failed: %v", err)
	}
	if contact.Name != "Lead Source" {
		t.Errorf("contact = %q, want Lead Source", contact.Name)
	}
	if method != reviews.MethodEmail {
		t.Errorf("method = %q, want email", method)
	}
}

func TestSelectContactFirstWithChannel(t *testing.T) {
	contacts := []articles.Contact{
		{Name: "No Channel"},
		{Name: "Has Email", Email: "expert@example.com"},
		{Name: "Also Email", Email: "other@example.com"},
	}

	contact, _, err := interviews.SelectContact(contacts, reviews.MethodEmail)
	if err != nil {
		t.Fatalf("SelectContact failed: %v", err)
	}
	if contact.Name != "Has Email" {
		t.Errorf("contact = %q, want Has Email", contact.Name)
	}
}

func TestSelectContactPrimaryWithoutChannelSkipped(t *testing.T) {
	contacts := []articles.Contact{
		{Name: "Primary Email Only", Email: "primary@example.com", IsPrimary: true},
		{Name: "Reachable By Phone", Phone: "+15550100"},
	}

	contact, method, err := interviews.SelectContact(contacts, reviews.MethodPhone)
	if err != nil {
		t.Fatalf("SelectContact failed: %v", err)
	}
	if contact.Name != "Reachable By Phone" {
		t.Errorf("contact = %q, want Reachable By Phone", contact.Name)
	}
	if method != reviews.MethodPhone {
		t.Errorf("method = %q, want phone", method)
	}
}

func TestSelectContactPhoneFallsBackToEmail(t *testing.T) {
	contacts := []articles.Contact{
		{Name: "Email Only", Email: "expert@example.com", IsPrimary: true},
	}

	contact, method, err := interviews.SelectContact(contacts, reviews.MethodPhone)
	if err != nil {
		t.Fatalf("SelectContact failed: %v", err)
	}
	if contact.Name != "Email Only" {
		t.Errorf("contact = %q, want Email Only", contact.Name)
	}
	if method != reviews.MethodEmail {
		t.Errorf("method = %q, want email after fallback", method)
	}
}

func TestSelectContactFailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		contacts []articles.Contact
	}{
		{name: "no contacts", contacts: nil},
		{name: "no channels", contacts: []articles.Contact{{Name: "Unreachable"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := interviews.SelectContact(tt.contacts, reviews.MethodPhone)
			if !errors.Is(err, interviews.ErrNoContact) {
				t.Errorf("err = %v, want ErrNoContact", err)
			}
		})
	}
}

func TestSelectContactEmptyMethodDefaultsToEmail(t *testing.T) {
	contacts := []articles.Contact{
		{Name: "Expert", Email: "expert@example.com"},
	}

	_, method, err := interviews.SelectContact(contacts, "")
	if err != nil {
		t.Fatalf("SelectContact failed: %v", err)
	}
	if method != reviews.MethodEmail {
		t.Errorf("method = %q, want email", method)
	}
}

func TestRecipient(t *testing.T) {
	contact := &articles.Contact{Email: "expert@example.com", Phone: "+15550100"}

	if got := interviews.Recipient(contact, reviews.MethodEmail); got != "expert@example.com" {
		t.Errorf("email recipient = %q", got)
	}
	if got := interviews.Recipient(contact, reviews.MethodPhone); got != "+15550100" {
		t.Errorf("phone recipient = %q", got)
	}
}
