package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// UpdateEvent applies the supplied fields to a live event. A name change
// regenerates the slug from the new name; an explicitly supplied slug wins
// over regeneration and is normalized like any other. A call that changes
// nothing skips the lifecycle entirely, including activity logging.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.events.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}

	changed := false
	slugDirty := false
	if input.Name != nil && *input.Name != e.Name {
		e.Name = *input.Name
		if input.Slug == nil {
			// cleared slug means "derive from the new name"
			e.Slug = ""
		}
		changed = true
		slugDirty = true
	}
	if input.Slug != nil && *input.Slug != e.Slug {
		e.Slug = *input.Slug
		changed = true
		slugDirty = true
	}
	if input.CategoryID != nil {
		if e.CategoryID == nil || *e.CategoryID != *input.CategoryID {
			e.CategoryID = input.CategoryID
			changed = true
		}
	}
	if input.Description != nil {
		if e.Description == nil || *e.Description != *input.Description {
			e.Description = input.Description
			changed = true
		}
	}
	if input.StartsAt != nil && !input.StartsAt.Equal(e.StartsAt) {
		e.StartsAt = *input.StartsAt
		changed = true
	}
	if input.EndsAt != nil {
		if e.EndsAt == nil || !e.EndsAt.Equal(*input.EndsAt) {
			e.EndsAt = input.EndsAt
			changed = true
		}
	}

	if !changed {
		return e, nil
	}

	var updated *domain.Event
	if !slugDirty {
		// Neither name nor slug is dirty: skip slug resolution and its
		// existence probe entirely. The write cannot hit a slug collision.
		updated, err = s.events.Update(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
	} else {
		requestedSlug := e.Slug
		for attempt := 1; attempt <= writeAttempts; attempt++ {
			e.Slug = requestedSlug
			if perr := s.pipeline.Run(ctx, lifecycle.BeforeUpdate, e); perr != nil {
				return nil, perr
			}

			updated, err = s.events.Update(ctx, e)
			if err == nil {
				break
			}
			if !errors.Is(err, domain.ErrAlreadyExists) {
				return nil, fmt.Errorf("update event: %w", err)
			}
			s.log.DebugContext(ctx, "slug taken concurrently, re-resolving",
				slog.String("slug", e.Slug), slog.Int("attempt", attempt))
		}
		if err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
	}

	if err := s.pipeline.Run(ctx, lifecycle.AfterUpdate, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
