package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	category := SeedCategory(t, pool)

	// Verify category exists in DB via SELECT.
	var slug string
	err := pool.QueryRow(
		context.Background(),
		`SELECT slug FROM categories WHERE id = $1`,
		category.ID,
	).Scan(&slug)
	if err != nil {
		t.Fatalf("expected category in DB, got error: %v", err)
	}

	if slug != category.Slug {
		t.Fatalf("expected slug %q, got %q", category.Slug, slug)
	}
}
