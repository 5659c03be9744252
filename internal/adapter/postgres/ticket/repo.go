// Package ticket implements the Ticket repository using PostgreSQL.
// Reference codes and secret tokens are write-once: Update never touches
// them, and both carry unique indexes.
package ticket

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

const table = "tickets"

var columns = []string{
	"id", "event_id", "ticket_type_id", "reference_code", "secret_token",
	"holder_name", "holder_email", "created_at", "updated_at",
	"deleted_at", "deleted_by",
}

// Repo provides ticket persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ticket repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new ticket with its already-issued identifiers.
func (r *Repo) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns("event_id", "ticket_type_id", "reference_code", "secret_token", "holder_name", "holder_email").
		Values(t.EventID, t.TicketTypeID, t.ReferenceCode, t.SecretToken, t.HolderName, t.HolderEmail).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert ticket: %w", err)
	}

	var created domain.Ticket
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket", t.ID)
	}
	return &created, nil
}

// Update writes the holder fields only. Identifiers are immutable.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TicketUpdateParams) (*domain.Ticket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if params.HolderName != nil {
		query = query.Set("holder_name", *params.HolderName)
	}
	if params.HolderEmail != nil {
		query = query.Set("holder_email", *params.HolderEmail)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update ticket: %w", err)
	}

	var updated domain.Ticket
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket", id)
	}
	return &updated, nil
}

// SoftDelete marks the ticket revoked and returns the already-deleted row.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build soft-delete ticket: %w", err)
	}

	var deleted domain.Ticket
	if err := pgxscan.Get(ctx, q, &deleted, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket", id)
	}
	return &deleted, nil
}

// SetDeletedBy stamps attribution directly on a soft-deleted row, bypassing
// the update lifecycle.
func (r *Repo) SetDeletedBy(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("deleted_by", actorID).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NOT NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build stamp ticket: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "ticket", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns a live ticket by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ticket: %w", err)
	}

	var t domain.Ticket
	if err := pgxscan.Get(ctx, q, &t, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket", id)
	}
	return &t, nil
}

// GetByReference returns a live ticket by its human-facing reference code.
func (r *Repo) GetByReference(ctx context.Context, code string) (*domain.Ticket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"reference_code": code}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ticket by reference: %w", err)
	}

	var t domain.Ticket
	if err := pgxscan.Get(ctx, q, &t, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket", uuid.Nil)
	}
	return &t, nil
}

// GetBySecret returns a live ticket by its secret token (scannable-code
// lookup). Callers must treat a miss as an opaque not-found.
func (r *Repo) GetBySecret(ctx context.Context, token string) (*domain.Ticket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"secret_token": token}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ticket by secret: %w", err)
	}

	var t domain.Ticket
	if err := pgxscan.Get(ctx, q, &t, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ticket", uuid.Nil)
	}
	return &t, nil
}

// ListByEvent returns the live tickets of an event, newest first.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Ticket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"event_id": eventID}).
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tickets: %w", err)
	}

	tickets := []*domain.Ticket{}
	if err := pgxscan.Select(ctx, q, &tickets, sql, args...); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}
