package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// CreateCategory creates a category, resolving its slug through the
// lifecycle pipeline with write-retry on slug races.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if input.Slug != nil {
		c.Slug = *input.Slug
	}
	// Keep the caller's original slug value so a retry re-probes from the
	// same base instead of suffixing the previous attempt's result.
	requestedSlug := c.Slug

	var created *domain.Category
	var err error
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		c.Slug = requestedSlug
		if perr := s.pipeline.Run(ctx, lifecycle.BeforeCreate, c); perr != nil {
			return nil, perr
		}

		created, err = s.categories.Create(ctx, c)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create category: %w", err)
		}
		s.log.DebugContext(ctx, "slug taken concurrently, re-resolving",
			slog.String("slug", c.Slug), slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	if err := s.pipeline.Run(ctx, lifecycle.AfterCreate, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCategory applies the supplied fields. Slug handling mirrors events:
// a rename regenerates, an explicit slug wins, no change is a no-op.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("load category: %w", err)
	}

	changed := false
	slugDirty := false
	if input.Name != nil && *input.Name != c.Name {
		c.Name = *input.Name
		if input.Slug == nil {
			c.Slug = ""
		}
		changed = true
		slugDirty = true
	}
	if input.Slug != nil && *input.Slug != c.Slug {
		c.Slug = *input.Slug
		changed = true
		slugDirty = true
	}
	if input.Description != nil {
		if c.Description == nil || *c.Description != *input.Description {
			c.Description = input.Description
			changed = true
		}
	}

	if !changed {
		return c, nil
	}

	var updated *domain.Category
	if !slugDirty {
		// No slug-affecting change: skip resolution and its existence probe.
		updated, err = s.categories.Update(ctx, c.ID, domain.CategoryUpdateParams{
			Name:        &c.Name,
			Slug:        &c.Slug,
			Description: c.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("update category: %w", err)
		}
	} else {
		requestedSlug := c.Slug
		for attempt := 1; attempt <= writeAttempts; attempt++ {
			c.Slug = requestedSlug
			if perr := s.pipeline.Run(ctx, lifecycle.BeforeUpdate, c); perr != nil {
				return nil, perr
			}

			updated, err = s.categories.Update(ctx, c.ID, domain.CategoryUpdateParams{
				Name:        &c.Name,
				Slug:        &c.Slug,
				Description: c.Description,
			})
			if err == nil {
				break
			}
			if !errors.Is(err, domain.ErrAlreadyExists) {
				return nil, fmt.Errorf("update category: %w", err)
			}
			s.log.DebugContext(ctx, "slug taken concurrently, re-resolving",
				slog.String("slug", c.Slug), slog.Int("attempt", attempt))
		}
		if err != nil {
			return nil, fmt.Errorf("update category: %w", err)
		}
	}

	if err := s.pipeline.Run(ctx, lifecycle.AfterUpdate, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCategory removes a category permanently. The activity record is
// written from the pre-delete snapshot, since no row survives to describe.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load category: %w", err)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return s.pipeline.Run(ctx, lifecycle.AfterDelete, c)
}

// GetCategory returns a category by ID.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.categories.GetByID(ctx, id)
}

// GetCategoryBySlug returns a category by its slug.
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}
	return s.categories.GetBySlug(ctx, slug)
}

// ListCategories returns all categories.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}
