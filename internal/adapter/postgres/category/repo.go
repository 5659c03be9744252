// Package category implements the Category repository using PostgreSQL.
// Categories are hard-deleted; they carry no attribution columns.
package category

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

const table = "categories"

var columns = []string{
	"id", "name", "slug", "description", "created_at", "updated_at",
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new category and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns("name", "slug", "description").
		Values(c.Name, c.Slug, c.Description).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert category: %w", err)
	}

	var created domain.Category
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}
	return &created, nil
}

// Update writes the touched fields only. Nil params are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	if params.Slug != nil {
		query = query.Set("slug", *params.Slug)
	}
	if params.Description != nil {
		query = query.Set("description", *params.Description)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category: %w", err)
	}

	var updated domain.Category
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &updated, nil
}

// Delete removes a category permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete category: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category: %w", err)
	}

	var c domain.Category
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &c, nil
}

// GetBySlug returns a category by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category by slug: %w", err)
	}

	var c domain.Category
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}
	return &c, nil
}

// List returns all categories ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	categories := []*domain.Category{}
	if err := pgxscan.Select(ctx, q, &categories, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// SlugExists reports whether a category (other than excludeID, if given)
// holds the slug.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	inner := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"slug": slug})
	if excludeID != nil {
		inner = inner.Where(squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := inner.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build slug check: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category slug %q: %w", slug, err)
	}
	return exists, nil
}
