package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/pkg/ctxutil"
)

// fakeActivityStore captures appended records.
type fakeActivityStore struct {
	records []domain.ActivityRecord
	err     error
}

func (f *fakeActivityStore) Append(_ context.Context, record domain.ActivityRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func newTestLogger(store *fakeActivityStore) *ActivityLogger {
	return NewActivityLogger(store, slog.Default())
}

func TestCreated_StandardRecord(t *testing.T) {
	t.Parallel()

	store := &fakeActivityStore{}
	l := newTestLogger(store)

	ev := &domain.Event{ID: uuid.New(), Name: "Spring Gala"}
	l.Created(context.Background(), ev, nil)

	if len(store.records) != 1 {
		t.Fatalf("records: got %d, want 1", len(store.records))
	}
	rec := store.records[0]

	if rec.Action != "event.created" {
		t.Errorf("action: got %q, want %q", rec.Action, "event.created")
	}
	if rec.Description != "Event 'Spring Gala' was created" {
		t.Errorf("description: got %q", rec.Description)
	}
	if rec.Meta[domain.MetaModelID] != ev.ID.String() {
		t.Errorf("meta model_id: got %v, want %s", rec.Meta[domain.MetaModelID], ev.ID)
	}
	if rec.Meta[domain.MetaModelType] != "event" {
		t.Errorf("meta model_type: got %v, want %q", rec.Meta[domain.MetaModelType], "event")
	}
	if rec.ActorID != nil {
		t.Errorf("actor should be nil for system actions, got %v", rec.ActorID)
	}
	if rec.IP != nil || rec.UserAgent != nil {
		t.Error("ip and user agent should be nil without ambient client info")
	}
}

func TestRecordFor_MetadataOverridesWin(t *testing.T) {
	t.Parallel()

	store := &fakeActivityStore{}
	l := newTestLogger(store)

	tk := &domain.Ticket{ID: uuid.New(), ReferenceCode: "GA-AAAABBBBCCCC"}
	l.Updated(context.Background(), tk, map[string]any{
		domain.MetaModelID: "override-id",
		"holder":           "Ada",
	})

	rec := store.records[0]
	if rec.Meta[domain.MetaModelID] != "override-id" {
		t.Errorf("caller-supplied model_id must win, got %v", rec.Meta[domain.MetaModelID])
	}
	if rec.Meta[domain.MetaModelType] != "ticket" {
		t.Errorf("default model_type must survive, got %v", rec.Meta[domain.MetaModelType])
	}
	if rec.Meta["holder"] != "Ada" {
		t.Errorf("extra metadata must be merged, got %v", rec.Meta["holder"])
	}
}

func TestRecord_AmbientContext(t *testing.T) {
	t.Parallel()

	store := &fakeActivityStore{}
	l := newTestLogger(store)

	actorID := uuid.New()
	ctx := ctxutil.WithActorID(context.Background(), actorID)
	ctx = ctxutil.WithClientInfo(ctx, "198.51.100.7", "checkin-kiosk/1.4")

	l.Record(ctx, "ticket.scanned", "Ticket was scanned at the gate", nil)

	rec := store.records[0]
	if rec.ActorID == nil || *rec.ActorID != actorID {
		t.Errorf("actor: got %v, want %s", rec.ActorID, actorID)
	}
	if rec.IP == nil || *rec.IP != "198.51.100.7" {
		t.Errorf("ip: got %v, want 198.51.100.7", rec.IP)
	}
	if rec.UserAgent == nil || *rec.UserAgent != "checkin-kiosk/1.4" {
		t.Errorf("user agent: got %v", rec.UserAgent)
	}
	if rec.ID == uuid.Nil {
		t.Error("record should get a fresh id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("record should get a timestamp")
	}
}

func TestRecord_RequestIDLandsInMetadata(t *testing.T) {
	t.Parallel()

	store := &fakeActivityStore{}
	l := newTestLogger(store)

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	l.Created(ctx, &domain.Event{ID: uuid.New(), Name: "Spring Gala"}, nil)
	l.Record(ctx, "ticket.scanned", "Ticket was scanned at the gate", nil)

	for _, rec := range store.records {
		if rec.Meta[domain.MetaRequestID] != "req-42" {
			t.Errorf("%s meta request_id: got %v, want %q",
				rec.Action, rec.Meta[domain.MetaRequestID], "req-42")
		}
	}

	// A caller-supplied request id is kept as-is.
	l.Record(ctx, "ticket.scanned", "Ticket was scanned at the gate",
		map[string]any{domain.MetaRequestID: "req-7"})
	rec := store.records[len(store.records)-1]
	if rec.Meta[domain.MetaRequestID] != "req-7" {
		t.Errorf("caller-supplied request_id must win, got %v", rec.Meta[domain.MetaRequestID])
	}

	// Without a request id in scope, records with no metadata stay bare.
	l.Record(context.Background(), "ticket.scanned", "Ticket was scanned at the gate", nil)
	rec = store.records[len(store.records)-1]
	if rec.Meta != nil {
		t.Errorf("meta should stay nil without a request id, got %v", rec.Meta)
	}
}

func TestDeleted_ActionTag(t *testing.T) {
	t.Parallel()

	store := &fakeActivityStore{}
	l := newTestLogger(store)

	tk := &domain.Ticket{ID: uuid.New(), ReferenceCode: "GA-XYZ123456789"}
	l.Deleted(context.Background(), tk, nil)

	rec := store.records[0]
	if rec.Action != "ticket.deleted" {
		t.Errorf("action: got %q, want %q", rec.Action, "ticket.deleted")
	}
	if rec.Description != "Ticket 'GA-XYZ123456789' was deleted" {
		t.Errorf("description: got %q", rec.Description)
	}
}

func TestRecord_AppendFailureSwallowed(t *testing.T) {
	t.Parallel()

	store := &fakeActivityStore{err: errors.New("audit store unavailable")}
	l := newTestLogger(store)

	// Must not panic and must not surface the error: the triggering
	// mutation has already committed.
	l.Created(context.Background(), &domain.Event{ID: uuid.New(), Name: "X"}, nil)

	if len(store.records) != 0 {
		t.Fatal("no record should have been stored")
	}
}
