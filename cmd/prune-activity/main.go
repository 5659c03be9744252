// Command prune-activity deletes activity log records older than the
// retention window.
//
// Usage:
//
//	prune-activity
//
// Requires DATABASE_DSN environment variable to be set. The retention
// window is ACTIVITY_RETENTION_DAYS (default 365).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventlane/eventlane-backend/internal/adapter/postgres/activity"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	retentionDays := 365
	if raw := os.Getenv("ACTIVITY_RETENTION_DAYS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Fatalf("invalid ACTIVITY_RETENTION_DAYS: %q", raw)
		}
		retentionDays = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	pruned, err := activity.New(pool).PruneOlderThan(ctx, cutoff)
	if err != nil {
		log.Fatalf("prune activity: %v", err)
	}

	fmt.Printf("Deleted %d activity records older than %s.\n", pruned, cutoff.Format(time.DateOnly))
}
