package articles

import (
	"context"

	"github.com/google/uuid"

	"newsdesk/internal/reviews"
	"newsdesk/pkg/pagination"
)

// System defines the public contract for article domain operations.
// ApplyRevision and Publish/Reject are the only mutations the editorial
// workflow performs; everything else serves the read and intake surfaces.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Article], error)

	Find(ctx context.Context, id uuid.UUID) (*Article, error)
	Create(ctx context.Context, cmd CreateCommand) (*Article, error)

	// ApplyRevision overwrites title/content, flags the article as
	// corrected, and increments the persisted revision count by one.
	ApplyRevision(ctx context.Context, id uuid.UUID, title, content string) (*Article, error)

	// UpdateContent overwrites title/content without touching revision
	// tracking. Used by interview reply re-enrichment.
	UpdateContent(ctx context.Context, id uuid.UUID, title, content string) (*Article, error)

	// Publish moves a pending article to published, writing status,
	// embedding, warning, and timestamp in one transaction.
	Publish(ctx context.Context, id uuid.UUID, embedding []float32, warning *reviews.Warning) (*Article, error)

	// Reject moves a pending article to rejected. Re-rejecting an
	// already rejected article is a no-op.
	Reject(ctx context.Context, id uuid.UUID) (*Article, error)
}
