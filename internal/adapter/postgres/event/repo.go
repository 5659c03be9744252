// Package event implements the Event repository using PostgreSQL.
// Events are soft-deleted; live-row queries always filter deleted_at.
package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/adapter/postgres"
	"github.com/eventlane/eventlane-backend/internal/domain"
)

const table = "events"

var columns = []string{
	"id", "category_id", "name", "slug", "description",
	"starts_at", "ends_at", "created_at", "updated_at",
	"deleted_at", "deleted_by",
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new event and returns the persisted row. The slug must
// already be resolved; the partial unique index on (slug) WHERE deleted_at
// IS NULL is the last line of defense and surfaces as ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns("category_id", "name", "slug", "description", "starts_at", "ends_at").
		Values(e.CategoryID, e.Name, e.Slug, e.Description, e.StartsAt, e.EndsAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event: %w", err)
	}

	var created domain.Event
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", e.ID)
	}
	return &created, nil
}

// Update writes all mutable fields of an already-resolved event.
// Soft-deleted rows are not updatable.
func (r *Repo) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("category_id", e.CategoryID).
		Set("name", e.Name).
		Set("slug", e.Slug).
		Set("description", e.Description).
		Set("starts_at", e.StartsAt).
		Set("ends_at", e.EndsAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": e.ID}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update event: %w", err)
	}

	var updated domain.Event
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", e.ID)
	}
	return &updated, nil
}

// SoftDelete marks the event deleted and returns the already-deleted row.
// Attribution is stamped separately, after this commit.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build soft-delete event: %w", err)
	}

	var deleted domain.Event
	if err := pgxscan.Get(ctx, q, &deleted, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return &deleted, nil
}

// SetDeletedBy stamps attribution directly on a soft-deleted row. This is a
// quiet write: it does not touch updated_at and does not run any lifecycle.
func (r *Repo) SetDeletedBy(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("deleted_by", actorID).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NOT NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build stamp event: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a live event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event: %w", err)
	}

	var e domain.Event
	if err := pgxscan.Get(ctx, q, &e, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return &e, nil
}

// GetBySlug returns a live event by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event by slug: %w", err)
	}

	var e domain.Event
	if err := pgxscan.Get(ctx, q, &e, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", uuid.Nil)
	}
	return &e, nil
}

// List returns all live events ordered by start time.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("deleted_at IS NULL").
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	events := []*domain.Event{}
	if err := pgxscan.Select(ctx, q, &events, sql, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// SlugExists reports whether a live event (other than excludeID, if given)
// holds the slug. This is the resolver's advisory pre-check; the unique
// index is authoritative.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	inner := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		Where("deleted_at IS NULL")
	if excludeID != nil {
		inner = inner.Where(squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := inner.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build slug check: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check event slug %q: %w", slug, err)
	}
	return exists, nil
}
