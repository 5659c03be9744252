// Command seed-demo populates the database with a small set of demo
// categories, events, and ticket types through the regular services, so the
// seeded rows get slugs, reference codes, and activity records exactly like
// production writes would. Intended for local development, not production.
//
// Flags:
//
//	--tickets  number of demo tickets to issue per event (default 3)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/app"
	"github.com/eventlane/eventlane-backend/internal/config"
	"github.com/eventlane/eventlane-backend/internal/service/category"
	"github.com/eventlane/eventlane-backend/internal/service/event"
	"github.com/eventlane/eventlane-backend/internal/service/ticket"
	"github.com/eventlane/eventlane-backend/pkg/ctxutil"
)

func main() {
	ticketsFlag := flag.Int("tickets", 3, "number of demo tickets to issue per event")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Tag every activity record from this run with one request id so the
	// whole seed batch can be found in the audit trail afterwards.
	runID := uuid.NewString()
	ctx = ctxutil.WithRequestID(ctx, runID)
	logger = logger.With(slog.String("request_id", runID))

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	if err := seed(ctx, a, *ticketsFlag); err != nil {
		logger.Error("seed demo data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("demo data seeded")
}

func seed(ctx context.Context, a *app.App, ticketsPerEvent int) error {
	music, err := a.Categories.CreateCategory(ctx, category.CreateCategoryInput{
		Name: "Live Music",
	})
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	start := time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Hour)
	end := start.Add(4 * time.Hour)
	launch, err := a.Events.CreateEvent(ctx, event.CreateEventInput{
		CategoryID: &music.ID,
		Name:       "Launch Party",
		StartsAt:   start,
		EndsAt:     &end,
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	ga, err := a.Tickets.CreateTicketType(ctx, ticket.CreateTicketTypeInput{
		EventID:         launch.ID,
		Name:            "General Admission",
		ReferencePrefix: "GA",
		PriceCents:      2500,
		Quantity:        100,
	})
	if err != nil {
		return fmt.Errorf("create ticket type: %w", err)
	}

	for i := range ticketsPerEvent {
		holder := fmt.Sprintf("Demo Holder %d", i+1)
		if _, err := a.Tickets.IssueTicket(ctx, ticket.IssueTicketInput{
			TicketTypeID: ga.ID,
			HolderName:   holder,
		}); err != nil {
			return fmt.Errorf("issue ticket %d: %w", i+1, err)
		}
	}

	fmt.Printf("Seeded category %q, event %q (slug %s), %d tickets.\n",
		music.Name, launch.Name, launch.Slug, ticketsPerEvent)
	return nil
}
