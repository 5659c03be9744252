// Package tickettype implements the TicketType repository using PostgreSQL.
// Reserve and Release guard the issued-vs-quantity counter so a sold-out
// type cannot issue tickets under concurrent requests.
package tickettype

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

const table = "ticket_types"

var columns = []string{
	"id", "event_id", "name", "reference_prefix", "price_cents",
	"quantity", "issued", "created_at", "updated_at",
}

// Repo provides ticket type persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ticket type repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new ticket type and returns the persisted row.
func (r *Repo) Create(ctx context.Context, tt *domain.TicketType) (*domain.TicketType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns("event_id", "name", "reference_prefix", "price_cents", "quantity").
		Values(tt.EventID, tt.Name, tt.ReferencePrefix, tt.PriceCents, tt.Quantity).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert ticket type: %w", err)
	}

	var created domain.TicketType
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket_type", tt.ID)
	}
	return &created, nil
}

// Update writes the mutable fields. The reference prefix is mutable here:
// already-issued tickets keep their codes, only future issuance changes.
func (r *Repo) Update(ctx context.Context, tt *domain.TicketType) (*domain.TicketType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("name", tt.Name).
		Set("reference_prefix", tt.ReferencePrefix).
		Set("price_cents", tt.PriceCents).
		Set("quantity", tt.Quantity).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": tt.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update ticket type: %w", err)
	}

	var updated domain.TicketType
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket_type", tt.ID)
	}
	return &updated, nil
}

// Delete removes a ticket type permanently. Types with issued tickets are
// protected by the tickets foreign key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete ticket type: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "ticket_type", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ticket_type %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns a ticket type by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TicketType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ticket type: %w", err)
	}

	var tt domain.TicketType
	if err := pgxscan.Get(ctx, q, &tt, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket_type", id)
	}
	return &tt, nil
}

// ListByEvent returns the ticket types of an event ordered by name.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.TicketType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ticket types: %w", err)
	}

	types := []*domain.TicketType{}
	if err := pgxscan.Select(ctx, q, &types, sql, args...); err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	return types, nil
}

// Reserve increments the issued counter, refusing once quantity is reached.
// Quantity 0 means unlimited. Returns domain.ErrConflict when sold out.
// Run inside the same transaction as the ticket insert.
func (r *Repo) Reserve(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("issued", squirrel.Expr("issued + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("(quantity = 0 OR issued < quantity)").
		ToSql()
	if err != nil {
		return fmt.Errorf("build reserve ticket type: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "ticket_type", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ticket_type %s sold out: %w", id, domain.ErrConflict)
	}
	return nil
}

// Release decrements the issued counter after a ticket is revoked.
func (r *Repo) Release(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("issued", squirrel.Expr("issued - 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("issued > 0").
		ToSql()
	if err != nil {
		return fmt.Errorf("build release ticket type: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "ticket_type", id)
	}
	return nil
}
