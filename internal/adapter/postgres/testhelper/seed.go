package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory creates a category with a unique name and slug.
// Returns a filled domain.Category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	category := domain.Category{
		ID:        uuid.New(),
		Name:      "Test Category " + suffix,
		Slug:      "test-category-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name, slug, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Slug, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	return category
}

// SeedEvent creates an event in the given category (nil for uncategorized)
// with a unique name and slug, starting one day from now.
// Returns a filled domain.Event.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, categoryID *uuid.UUID) domain.Event {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.Event{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       "Test Event " + suffix,
		Slug:       "test-event-" + suffix,
		StartsAt:   now.Add(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, category_id, name, slug, starts_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.CategoryID, event.Name, event.Slug, event.StartsAt, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return event
}

// SeedTicketType creates a ticket type for the given event.
// quantity 0 means unlimited. Returns a filled domain.TicketType.
func SeedTicketType(t *testing.T, pool *pgxpool.Pool, eventID uuid.UUID, quantity int) domain.TicketType {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tt := domain.TicketType{
		ID:              uuid.New(),
		EventID:         eventID,
		Name:            "Test Type " + suffix,
		ReferencePrefix: strings.ToUpper(suffix[:2]),
		PriceCents:      2500,
		Quantity:        quantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ticket_types (id, event_id, name, reference_prefix, price_cents, quantity, issued, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tt.ID, tt.EventID, tt.Name, tt.ReferencePrefix, tt.PriceCents, tt.Quantity, tt.Issued, tt.CreatedAt, tt.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTicketType insert ticket_type: %v", err)
	}

	return tt
}

// SeedTicket creates a ticket of the given type with unique identifiers.
// Does not touch the type's issued counter. Returns a filled domain.Ticket.
func SeedTicket(t *testing.T, pool *pgxpool.Pool, tt domain.TicketType) domain.Ticket {
	t.Helper()
	ctx := context.Background()

	suffix := strings.ToUpper(uniqueSuffix())
	now := time.Now().UTC().Truncate(time.Microsecond)
	ticket := domain.Ticket{
		ID:            uuid.New(),
		EventID:       tt.EventID,
		TicketTypeID:  tt.ID,
		ReferenceCode: tt.ReferencePrefix + "-" + suffix,
		SecretToken:   "tok-" + uuid.New().String(),
		HolderName:    "Test Holder " + suffix,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tickets (id, event_id, ticket_type_id, reference_code, secret_token, holder_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ticket.ID, ticket.EventID, ticket.TicketTypeID, ticket.ReferenceCode, ticket.SecretToken, ticket.HolderName, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTicket insert ticket: %v", err)
	}

	return ticket
}
