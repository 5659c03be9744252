package lifecycle

import (
	"context"
	"fmt"
)

// Stage is a point in an entity's mutation lifecycle. Before-stages run
// synchronously before the row is written, so generated values (slugs,
// identifiers) become part of the persisted row. After-stages run once the
// write has committed and may read final state, including assigned keys.
type Stage int

const (
	BeforeCreate Stage = iota
	BeforeUpdate
	AfterCreate
	AfterUpdate
	AfterDelete
)

func (s Stage) String() string {
	switch s {
	case BeforeCreate:
		return "before-create"
	case BeforeUpdate:
		return "before-update"
	case AfterCreate:
		return "after-create"
	case AfterUpdate:
		return "after-update"
	case AfterDelete:
		return "after-delete"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Hook is one lifecycle callback. Before-hooks may mutate the entity in
// memory; they must be no-ops on fields already populated so that running
// them twice on an unsaved instance is safe.
type Hook[T Loggable] func(ctx context.Context, e T) error

// Pipeline routes one entity type's lifecycle transitions to its registered
// hooks in registration order. Composition is per entity type: a type may
// use activity logging without slug support, or neither.
type Pipeline[T Loggable] struct {
	hooks map[Stage][]Hook[T]
}

// NewPipeline creates an empty pipeline.
func NewPipeline[T Loggable]() *Pipeline[T] {
	return &Pipeline[T]{hooks: make(map[Stage][]Hook[T])}
}

// On registers hooks for a stage, appended after any already registered.
// Returns the pipeline for chaining.
func (p *Pipeline[T]) On(stage Stage, hooks ...Hook[T]) *Pipeline[T] {
	p.hooks[stage] = append(p.hooks[stage], hooks...)
	return p
}

// Run invokes the stage's hooks in order, stopping at the first error.
// A stage with no hooks is a no-op.
func (p *Pipeline[T]) Run(ctx context.Context, stage Stage, e T) error {
	for _, hook := range p.hooks[stage] {
		if err := hook(ctx, e); err != nil {
			return fmt.Errorf("%s hook for %s: %w", stage, e.Kind(), err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Hook adapters for the built-in components
// ---------------------------------------------------------------------------

// ResolveSlugOnCreate fills the entity's slug before the first write. An
// explicitly supplied slug is taken as the source and re-normalized; an
// empty slug derives from the entity's source text. Re-running the hook on
// the same unsaved instance resolves to the same value.
func ResolveSlugOnCreate[T Slugged](r *SlugResolver) Hook[T] {
	return func(ctx context.Context, e T) error {
		source := e.CurrentSlug()
		if source == "" {
			source = e.SlugSource()
		}
		slug, err := r.Resolve(ctx, source, nil)
		if err != nil {
			return err
		}
		e.SetSlug(slug)
		return nil
	}
}

// ResolveSlugOnUpdate re-resolves the entity's slug, excluding the entity
// itself from the collision check. Callers signal intent through the slug
// field: cleared means "derive from the (possibly renamed) source text",
// set means "re-normalize and re-disambiguate this explicit value". An
// unchanged slug resolves back to itself thanks to the self-exclusion.
func ResolveSlugOnUpdate[T Slugged](r *SlugResolver) Hook[T] {
	return func(ctx context.Context, e T) error {
		source := e.CurrentSlug()
		if source == "" {
			source = e.SlugSource()
		}
		id := e.LogID()
		slug, err := r.Resolve(ctx, source, &id)
		if err != nil {
			return err
		}
		e.SetSlug(slug)
		return nil
	}
}

// StampDeleter adapts Attribution into an after-delete hook.
func StampDeleter[T Loggable](a *Attribution) Hook[T] {
	return func(ctx context.Context, e T) error {
		return a.StampDeleter(ctx, e)
	}
}

// LogCreated adapts the activity logger into an after-create hook.
// The hook never fails: append errors are the logger's concern.
func LogCreated[T Loggable](l *ActivityLogger) Hook[T] {
	return func(ctx context.Context, e T) error {
		l.Created(ctx, e, nil)
		return nil
	}
}

// LogUpdated adapts the activity logger into an after-update hook.
func LogUpdated[T Loggable](l *ActivityLogger) Hook[T] {
	return func(ctx context.Context, e T) error {
		l.Updated(ctx, e, nil)
		return nil
	}
}

// LogDeleted adapts the activity logger into an after-delete hook. Register
// it after StampDeleter so the logged state reflects final attribution.
func LogDeleted[T Loggable](l *ActivityLogger) Hook[T] {
	return func(ctx context.Context, e T) error {
		l.Deleted(ctx, e, nil)
		return nil
	}
}
