package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/pkg/ctxutil"
)

type deleteStamper interface {
	// SetDeletedBy writes deleted_by directly on an already soft-deleted
	// row. It must not run the update lifecycle.
	SetDeletedBy(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

// Attribution stamps the acting principal onto soft-deleted rows. It runs
// strictly after the delete has been committed and writes out-of-band, so
// the stamp never re-enters the update pipeline.
type Attribution struct {
	store deleteStamper
}

// NewAttribution creates an attribution recorder over the given store.
func NewAttribution(store deleteStamper) *Attribution {
	return &Attribution{store: store}
}

// StampDeleter sets deleted_by to the ambient principal's ID. When no
// principal is authenticated (system-initiated deletion) the attribution
// stays null and no write happens.
func (a *Attribution) StampDeleter(ctx context.Context, e Loggable) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil
	}
	if err := a.store.SetDeletedBy(ctx, e.LogID(), actorID); err != nil {
		return fmt.Errorf("stamp deleter on %s %s: %w", e.Kind(), e.LogID(), err)
	}
	return nil
}
