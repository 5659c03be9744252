package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// DefaultSlugAttempts bounds the disambiguation probe. Exhausting it means
// the namespace design is broken, not that the caller should retry.
const DefaultSlugAttempts = 1000

type slugChecker interface {
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}

// SlugResolver derives a unique slug within one entity type's namespace.
// The store pre-check is advisory only: the storage layer enforces
// uniqueness with a constraint, and WriteWithRetry handles losing the race
// to a concurrent writer.
type SlugResolver struct {
	store       slugChecker
	maxAttempts int
}

// NewSlugResolver creates a resolver over the given slug namespace.
// maxAttempts <= 0 falls back to DefaultSlugAttempts.
func NewSlugResolver(store slugChecker, maxAttempts int) *SlugResolver {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSlugAttempts
	}
	return &SlugResolver{store: store, maxAttempts: maxAttempts}
}

// Resolve normalizes source and probes "-1", "-2", ... until an unused slug
// is found. The probe is sequential and deterministic given the same
// existing-slug set. excludeID removes the record being updated from the
// collision check: an entity never collides with itself.
func (r *SlugResolver) Resolve(ctx context.Context, source string, excludeID *uuid.UUID) (string, error) {
	base := domain.Slugify(source)
	slug := base
	for n := 1; n <= r.maxAttempts; n++ {
		exists, err := r.store.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", slug, err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("resolve slug for %q after %d attempts: %w", base, r.maxAttempts, domain.ErrSlugExhausted)
}

// WriteWithRetry resolves a slug and runs write with it. When write reports
// domain.ErrAlreadyExists, a concurrent writer took the slug between the
// pre-check and the insert; the probe continues with the next suffix.
// Any other write error is returned as-is.
func (r *SlugResolver) WriteWithRetry(
	ctx context.Context,
	source string,
	excludeID *uuid.UUID,
	write func(ctx context.Context, slug string) error,
) (string, error) {
	base := domain.Slugify(source)
	slug := base
	for n := 1; n <= r.maxAttempts; n++ {
		exists, err := r.store.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", slug, err)
		}
		if !exists {
			err = write(ctx, slug)
			if err == nil {
				return slug, nil
			}
			if !errors.Is(err, domain.ErrAlreadyExists) {
				return "", err
			}
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("write slug for %q after %d attempts: %w", base, r.maxAttempts, domain.ErrSlugExhausted)
}
