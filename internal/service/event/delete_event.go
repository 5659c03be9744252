package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// DeleteEvent soft-deletes an event. Attribution and the activity record
// run strictly after the delete commit, so the deleted row keeps its
// original updated_at and the stamp never re-enters the update lifecycle.
// An already-deleted or unknown event returns domain.ErrNotFound.
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.events.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return s.pipeline.Run(ctx, lifecycle.AfterDelete, deleted)
}
