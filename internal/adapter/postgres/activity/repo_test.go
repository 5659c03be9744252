package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/eventlane/eventlane-backend/internal/adapter/postgres/testutil"
	"github.com/eventlane/eventlane-backend/internal/domain"
)

func TestRepo_Append(t *testing.T) {
	actorID := uuid.New()
	modelID := uuid.New()
	ip := "203.0.113.7"

	tests := []struct {
		name    string
		record  domain.ActivityRecord
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr bool
	}{
		{
			name: "full record",
			record: domain.ActivityRecord{
				ID:          uuid.New(),
				ActorID:     &actorID,
				Action:      "event.created",
				Description: "Event 'Launch Party' was created",
				Meta: map[string]any{
					domain.MetaModelID:   modelID.String(),
					domain.MetaModelType: string(domain.EntityTypeEvent),
				},
				IP:        &ip,
				CreatedAt: time.Now().UTC(),
			},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO activity_log`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "anonymous record without actor",
			record: domain.ActivityRecord{
				ID:          uuid.New(),
				Action:      "ticket.deleted",
				Description: "Ticket 'GA-4F7K2M9QPX1Z' was deleted",
				Meta:        map[string]any{domain.MetaModelID: modelID.String()},
				CreatedAt:   time.Now().UTC(),
			},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO activity_log`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database failure propagates",
			record: domain.ActivityRecord{
				ID:        uuid.New(),
				Action:    "category.updated",
				CreatedAt: time.Now().UTC(),
			},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO activity_log`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			querier, mock := testutil.NewMockQuerier(t)
			repo := New(querier)
			tt.setup(mock)

			err := repo.Append(context.Background(), tt.record)

			if (err != nil) != tt.wantErr {
				t.Errorf("Append() error = %v, wantErr %v", err, tt.wantErr)
			}

			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_ListByEntity(t *testing.T) {
	entityID := uuid.New()
	actorID := uuid.New()
	now := time.Now().UTC()

	querier, mock := testutil.NewMockQuerier(t)
	repo := New(querier)

	rows := pgxmock.NewRows([]string{
		"id", "actor_id", "action", "description", "meta",
		"ip", "user_agent", "created_at",
	}).
		AddRow(uuid.New(), &actorID, "event.updated", "Event 'Launch Party' was updated",
			[]byte(`{"model_id":"`+entityID.String()+`","model_type":"event","name":"Launch Party"}`),
			nil, nil, now).
		AddRow(uuid.New(), &actorID, "event.created", "Event 'Launch Party' was created",
			[]byte(`{"model_id":"`+entityID.String()+`","model_type":"event"}`),
			nil, nil, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT .+ FROM activity_log`).
		WithArgs(string(domain.EntityTypeEvent), entityID.String()).
		WillReturnRows(rows)

	records, err := repo.ListByEntity(context.Background(), domain.EntityTypeEvent, entityID, 50)
	if err != nil {
		t.Fatalf("ListByEntity() error = %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("ListByEntity() returned %d records, want 2", len(records))
	}
	if records[0].Action != "event.updated" {
		t.Errorf("first record action = %q, want event.updated", records[0].Action)
	}
	if got := records[0].Meta["name"]; got != "Launch Party" {
		t.Errorf("meta name = %v, want Launch Party", got)
	}
	if got := records[1].Meta[domain.MetaModelType]; got != "event" {
		t.Errorf("meta model_type = %v, want event", got)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_ListByEntity_CorruptMeta(t *testing.T) {
	entityID := uuid.New()

	querier, mock := testutil.NewMockQuerier(t)
	repo := New(querier)

	rows := pgxmock.NewRows([]string{
		"id", "actor_id", "action", "description", "meta",
		"ip", "user_agent", "created_at",
	}).
		AddRow(uuid.New(), nil, "event.created", "", []byte(`{broken`), nil, nil, time.Now())

	mock.ExpectQuery(`SELECT .+ FROM activity_log`).
		WithArgs(string(domain.EntityTypeEvent), entityID.String()).
		WillReturnRows(rows)

	if _, err := repo.ListByEntity(context.Background(), domain.EntityTypeEvent, entityID, 10); err == nil {
		t.Error("ListByEntity() expected error for corrupt meta, got nil")
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_PruneOlderThan(t *testing.T) {
	querier, mock := testutil.NewMockQuerier(t)
	repo := New(querier)

	cutoff := time.Now().UTC().AddDate(0, -6, 0)
	mock.ExpectExec(`DELETE FROM activity_log`).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 42))

	pruned, err := repo.PruneOlderThan(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("PruneOlderThan() error = %v", err)
	}
	if pruned != 42 {
		t.Errorf("PruneOlderThan() = %d, want 42", pruned)
	}

	testutil.ExpectationsWereMet(t, mock)
}
