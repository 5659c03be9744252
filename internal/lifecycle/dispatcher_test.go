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

func TestPipeline_RunsHooksInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) Hook[*domain.Event] {
		return func(context.Context, *domain.Event) error {
			order = append(order, name)
			return nil
		}
	}

	p := NewPipeline[*domain.Event]().
		On(BeforeCreate, mark("slug"), mark("issuer")).
		On(AfterCreate, mark("activity"))

	ev := &domain.Event{ID: uuid.New()}
	if err := p.Run(context.Background(), BeforeCreate, ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Run(context.Background(), AfterCreate, ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"slug", "issuer", "activity"}
	if len(order) != len(want) {
		t.Fatalf("hook order: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hook order: got %v, want %v", order, want)
		}
	}
}

func TestPipeline_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("no entropy")
	var reached bool

	p := NewPipeline[*domain.Event]().
		On(BeforeCreate,
			func(context.Context, *domain.Event) error { return boom },
			func(context.Context, *domain.Event) error { reached = true; return nil },
		)

	err := p.Run(context.Background(), BeforeCreate, &domain.Event{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if reached {
		t.Error("second hook must not run after a failure")
	}
}

func TestPipeline_UnregisteredStageIsNoop(t *testing.T) {
	t.Parallel()

	p := NewPipeline[*domain.Event]()
	if err := p.Run(context.Background(), AfterDelete, &domain.Event{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveSlugOnCreate_FillsEmptySlug(t *testing.T) {
	t.Parallel()

	store := &fakeSlugStore{existing: map[string]uuid.UUID{"hello-world": uuid.New()}}
	hook := ResolveSlugOnCreate[*domain.Event](NewSlugResolver(store, 0))

	ev := &domain.Event{ID: uuid.New(), Name: "Hello, World!"}
	if err := hook(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Slug != "hello-world-1" {
		t.Errorf("slug: got %q, want %q", ev.Slug, "hello-world-1")
	}
}

func TestResolveSlugOnCreate_Idempotent(t *testing.T) {
	t.Parallel()

	store := &fakeSlugStore{existing: map[string]uuid.UUID{}}
	hook := ResolveSlugOnCreate[*domain.Event](NewSlugResolver(store, 0))

	// An explicitly supplied slug wins over the name, gets normalized, and
	// re-running the hook on the same unsaved instance is stable.
	ev := &domain.Event{ID: uuid.New(), Name: "Hello", Slug: "Custom Slug!"}
	for i := 0; i < 2; i++ {
		if err := hook(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ev.Slug != "custom-slug" {
		t.Errorf("slug: got %q, want %q", ev.Slug, "custom-slug")
	}
}

func TestResolveSlugOnUpdate_RenameRegeneratesSlug(t *testing.T) {
	t.Parallel()

	selfID := uuid.New()
	store := &fakeSlugStore{existing: map[string]uuid.UUID{"hello-world": selfID}}
	hook := ResolveSlugOnUpdate[*domain.Event](NewSlugResolver(store, 0))

	// Name changed, slug not explicitly touched: the caller cleared the
	// slug so it derives from the new name. The previous slug is freed,
	// not reused.
	ev := &domain.Event{ID: selfID, Name: "Hello World Updated", Slug: ""}
	if err := hook(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Slug != "hello-world-updated" {
		t.Errorf("slug: got %q, want %q", ev.Slug, "hello-world-updated")
	}
}

func TestResolveSlugOnUpdate_ExplicitSlugRenormalized(t *testing.T) {
	t.Parallel()

	selfID := uuid.New()
	otherID := uuid.New()
	store := &fakeSlugStore{existing: map[string]uuid.UUID{"front-row": otherID}}
	hook := ResolveSlugOnUpdate[*domain.Event](NewSlugResolver(store, 0))

	// Slug explicitly touched: the raw value is re-normalized and
	// re-disambiguated against other rows.
	ev := &domain.Event{ID: selfID, Name: "Whatever", Slug: "Front Row!"}
	if err := hook(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Slug != "front-row-1" {
		t.Errorf("slug: got %q, want %q", ev.Slug, "front-row-1")
	}
}

func TestResolveSlugOnUpdate_UnchangedSlugStable(t *testing.T) {
	t.Parallel()

	selfID := uuid.New()
	store := &fakeSlugStore{existing: map[string]uuid.UUID{"spring-gala": selfID}}
	hook := ResolveSlugOnUpdate[*domain.Event](NewSlugResolver(store, 0))

	ev := &domain.Event{ID: selfID, Name: "Spring Gala", Slug: "spring-gala"}
	if err := hook(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Slug != "spring-gala" {
		t.Errorf("slug must stay stable, got %q", ev.Slug)
	}
}

func TestAfterDelete_AttributionBeforeActivity(t *testing.T) {
	t.Parallel()

	var order []string

	stamper := &fakeDeleteStamper{}
	attribution := NewAttribution(stamper)
	store := &orderedActivityStore{order: &order}
	logger := NewActivityLogger(store, slog.Default())

	p := NewPipeline[*domain.Ticket]().
		On(AfterDelete,
			func(ctx context.Context, tk *domain.Ticket) error {
				err := attribution.StampDeleter(ctx, tk)
				order = append(order, "attribution")
				return err
			},
			LogDeleted[*domain.Ticket](logger),
		)

	ctx := ctxutil.WithActorID(context.Background(), uuid.New())
	tk := &domain.Ticket{ID: uuid.New(), ReferenceCode: "GA-TEST12345678"}
	if err := p.Run(ctx, AfterDelete, tk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(order) != 2 || order[0] != "attribution" || order[1] != "activity" {
		t.Fatalf("after-delete order: got %v, want [attribution activity]", order)
	}
}

// orderedActivityStore appends a marker so tests can assert hook ordering.
type orderedActivityStore struct {
	order *[]string
}

func (s *orderedActivityStore) Append(context.Context, domain.ActivityRecord) error {
	*s.order = append(*s.order, "activity")
	return nil
}
