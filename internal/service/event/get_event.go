package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// GetEvent returns a live event by ID.
func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.events.GetByID(ctx, id)
}

// GetEventBySlug returns a live event by its slug.
func (s *Service) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}
	return s.events.GetBySlug(ctx, slug)
}

// ListEvents returns all live events ordered by start time.
func (s *Service) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.events.List(ctx)
}

// EventActivity returns the newest activity records for one event.
func (s *Service) EventActivity(ctx context.Context, id uuid.UUID) ([]domain.ActivityRecord, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	records, err := s.records.ListByEntity(ctx, domain.EntityTypeEvent, id, s.cfg.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list event activity: %w", err)
	}
	return records, nil
}
