package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/pkg/ctxutil"
)

// fakeDeleteStamper records SetDeletedBy calls.
type fakeDeleteStamper struct {
	err   error
	calls []struct {
		ID      uuid.UUID
		ActorID uuid.UUID
	}
}

func (f *fakeDeleteStamper) SetDeletedBy(_ context.Context, id, actorID uuid.UUID) error {
	f.calls = append(f.calls, struct {
		ID      uuid.UUID
		ActorID uuid.UUID
	}{id, actorID})
	return f.err
}

func TestStampDeleter_AuthenticatedPrincipal(t *testing.T) {
	t.Parallel()

	store := &fakeDeleteStamper{}
	a := NewAttribution(store)

	actorID := uuid.New()
	ev := &domain.Event{ID: uuid.New(), Name: "Closing Night"}
	ctx := ctxutil.WithActorID(context.Background(), actorID)

	if err := a.StampDeleter(ctx, ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.calls) != 1 {
		t.Fatalf("SetDeletedBy calls: got %d, want 1", len(store.calls))
	}
	if store.calls[0].ID != ev.ID {
		t.Errorf("entity id: got %s, want %s", store.calls[0].ID, ev.ID)
	}
	if store.calls[0].ActorID != actorID {
		t.Errorf("actor id: got %s, want %s", store.calls[0].ActorID, actorID)
	}
}

func TestStampDeleter_NoPrincipal(t *testing.T) {
	t.Parallel()

	store := &fakeDeleteStamper{}
	a := NewAttribution(store)

	// System-initiated deletion: attribution stays null, no write, no error.
	err := a.StampDeleter(context.Background(), &domain.Event{ID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.calls) != 0 {
		t.Fatalf("SetDeletedBy should not have been called, got %d calls", len(store.calls))
	}
}

func TestStampDeleter_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("row vanished")
	store := &fakeDeleteStamper{err: boom}
	a := NewAttribution(store)

	ctx := ctxutil.WithActorID(context.Background(), uuid.New())
	err := a.StampDeleter(ctx, &domain.Event{ID: uuid.New()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
