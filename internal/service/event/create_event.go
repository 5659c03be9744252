package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// CreateEvent creates an event, resolving its slug through the lifecycle
// pipeline. The storage unique index stays authoritative: when a concurrent
// writer takes the resolved slug first, the write is retried with a fresh
// resolution instead of failing the request.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e := &domain.Event{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
	}
	if input.Slug != nil {
		e.Slug = *input.Slug
	}
	// The resolver derives its base from the slug field when set. Keep the
	// caller's original value so a retry re-probes from the same base and
	// lands on the next free suffix, not on a suffix of a suffix.
	requestedSlug := e.Slug

	var created *domain.Event
	var err error
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		e.Slug = requestedSlug
		if perr := s.pipeline.Run(ctx, lifecycle.BeforeCreate, e); perr != nil {
			return nil, perr
		}

		created, err = s.events.Create(ctx, e)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create event: %w", err)
		}
		s.log.DebugContext(ctx, "slug taken concurrently, re-resolving",
			slog.String("slug", e.Slug), slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if err := s.pipeline.Run(ctx, lifecycle.AfterCreate, created); err != nil {
		return nil, err
	}
	return created, nil
}
