// Package activity implements the activity log repository using PostgreSQL.
// The log is append-only: this package exposes no update or single-record
// delete, only retention pruning for the operational tool.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/adapter/postgres"
	"github.com/eventlane/eventlane-backend/internal/domain"
)

const table = "activity_log"

var columns = []string{
	"id", "actor_id", "action", "description", "meta",
	"ip", "user_agent", "created_at",
}

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row is the scan target; meta arrives as raw JSONB.
type row struct {
	ID          uuid.UUID  `db:"id"`
	ActorID     *uuid.UUID `db:"actor_id"`
	Action      string     `db:"action"`
	Description string     `db:"description"`
	Meta        []byte     `db:"meta"`
	IP          *string    `db:"ip"`
	UserAgent   *string    `db:"user_agent"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r row) toDomain() (domain.ActivityRecord, error) {
	record := domain.ActivityRecord{
		ID:          r.ID,
		ActorID:     r.ActorID,
		Action:      r.Action,
		Description: r.Description,
		IP:          r.IP,
		UserAgent:   r.UserAgent,
		CreatedAt:   r.CreatedAt,
	}
	if len(r.Meta) > 0 {
		meta := make(map[string]any)
		if err := json.Unmarshal(r.Meta, &meta); err != nil {
			return domain.ActivityRecord{}, fmt.Errorf("activity %s unmarshal meta: %w", r.ID, err)
		}
		record.Meta = meta
	}
	return record, nil
}

// Append inserts one activity record. Satisfies the lifecycle logger's
// store interface; the logger owns the swallow-on-failure policy, not this
// repo.
func (r *Repo) Append(ctx context.Context, record domain.ActivityRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	metaJSON, err := json.Marshal(record.Meta)
	if err != nil {
		return fmt.Errorf("activity marshal meta: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(record.ID, record.ActorID, record.Action, record.Description,
			metaJSON, record.IP, record.UserAgent, record.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert activity: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity", record.ID)
	}
	return nil
}

// ListByEntity returns the activity history of one entity, newest first,
// limited to `limit` records. Matching is on the default metadata keys the
// lifecycle logger always writes.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.ActivityRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"meta ->> 'model_type'": string(entityType)}).
		Where(squirrel.Eq{"meta ->> 'model_id'": entityID.String()}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity by entity: %w", err)
	}

	return r.list(ctx, q, sql, args)
}

// ListByActor returns the activity of one principal, newest first, with
// offset pagination.
func (r *Repo) ListByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.ActivityRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"actor_id": actorID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity by actor: %w", err)
	}

	return r.list(ctx, q, sql, args)
}

// PruneOlderThan deletes records older than cutoff and returns the count.
// Retention is an operator decision; the lifecycle engine itself never
// deletes from the log.
func (r *Repo) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build prune activity: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("prune activity: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) list(ctx context.Context, q postgres.Querier, sql string, args []any) ([]domain.ActivityRecord, error) {
	rows := []row{}
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	records := make([]domain.ActivityRecord, len(rows))
	for i, rw := range rows {
		rec, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}
