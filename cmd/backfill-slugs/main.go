// Command backfill-slugs assigns slugs to events and categories that have
// none, using the same resolution rules as the services. Useful after
// importing data from systems without slugs.
//
// Usage:
//
//	backfill-slugs
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	categoryrepo "github.com/eventlane/eventlane-backend/internal/adapter/postgres/category"
	eventrepo "github.com/eventlane/eventlane-backend/internal/adapter/postgres/event"
	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	events := eventrepo.New(pool)
	categories := categoryrepo.New(pool)

	filled, err := backfillEvents(ctx, events)
	if err != nil {
		log.Fatalf("backfill events: %v", err)
	}
	fmt.Printf("Backfilled %d event slugs.\n", filled)

	filled, err = backfillCategories(ctx, categories)
	if err != nil {
		log.Fatalf("backfill categories: %v", err)
	}
	fmt.Printf("Backfilled %d category slugs.\n", filled)
}

func backfillEvents(ctx context.Context, repo *eventrepo.Repo) (int, error) {
	resolver := lifecycle.NewSlugResolver(repo, 0)

	all, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}

	filled := 0
	for _, e := range all {
		if e.Slug != "" {
			continue
		}
		slug, err := resolver.Resolve(ctx, e.Name, &e.ID)
		if err != nil {
			return filled, fmt.Errorf("event %s: %w", e.ID, err)
		}
		e.Slug = slug
		if _, err := repo.Update(ctx, e); err != nil {
			return filled, fmt.Errorf("event %s: %w", e.ID, err)
		}
		filled++
	}
	return filled, nil
}

func backfillCategories(ctx context.Context, repo *categoryrepo.Repo) (int, error) {
	resolver := lifecycle.NewSlugResolver(repo, 0)

	all, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}

	filled := 0
	for _, c := range all {
		if c.Slug != "" {
			continue
		}
		slug, err := resolver.Resolve(ctx, c.Name, &c.ID)
		if err != nil {
			return filled, fmt.Errorf("category %s: %w", c.ID, err)
		}
		if _, err := repo.Update(ctx, c.ID, domain.CategoryUpdateParams{Slug: &slug}); err != nil {
			return filled, fmt.Errorf("category %s: %w", c.ID, err)
		}
		filled++
	}
	return filled, nil
}
