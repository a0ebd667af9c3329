package reviews

import (
	"context"

	"github.com/google/uuid"
)

// System is the audit persistence contract for editorial reviews.
// Save upserts the latest verdict for an article; issues and reasoning
// steps are replaced wholesale on every write.
type System interface {
	Save(ctx context.Context, articleID uuid.UUID, v *Verdict) error
	Find(ctx context.Context, articleID uuid.UUID) (*Review, error)
	Handler() *Handler
}
