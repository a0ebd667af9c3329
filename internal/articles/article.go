// Package articles owns the news article entity: content, contacts,
// revision tracking, and the pending/published/rejected status machine.
package articles

import (
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/reviews"
)

// Status is the lifecycle state of an article. Only the terminal
// publish/reject handlers move an article out of pending.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// Contact is a person attached to an article by the upstream content
// pipeline. Read-only inside the editorial workflow.
type Contact struct {
	Name              string `json:"name"`
	Title             string `json:"title,omitempty"`
	Organization      string `json:"organization,omitempty"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	ContactType       string `json:"contact_type,omitempty"`
	ExtractionContext string `json:"extraction_context,omitempty"`
	IsPrimary         bool   `json:"is_primary_contact"`
}

// Article is the mutable entity tracked through the editorial workflow.
type Article struct {
	ID                  uuid.UUID        `json:"id"`
	CanonicalID         *string          `json:"canonical_id,omitempty"`
	Title               string           `json:"title"`
	Content             string           `json:"content"`
	Language            string           `json:"language"`
	Categories          []string         `json:"categories"`
	Keywords            []string         `json:"keywords"`
	Contacts            []Contact        `json:"contacts"`
	Status              Status           `json:"status"`
	RevisionCount       int              `json:"revision_count"`
	RequiredCorrections bool             `json:"required_corrections"`
	Warning             *reviews.Warning `json:"editorial_warning,omitempty"`
	PublishedAt         *time.Time       `json:"published_at,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// CreateCommand carries the fields required to register an enriched
// article for editorial review.
type CreateCommand struct {
	CanonicalID *string   `json:"canonical_id,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Language    string    `json:"language"`
	Categories  []string  `json:"categories"`
	Keywords    []string  `json:"keywords"`
	Contacts    []Contact `json:"contacts"`
}
