// Package testutil provides shared helpers for repository unit tests that
// run against a pgxmock pool instead of a live database.
package testutil

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/eventlane/eventlane-backend/internal/adapter/postgres"
)

// NewMockQuerier returns a pgxmock pool both as the Querier repositories
// accept and as the mock interface tests set expectations on.
func NewMockQuerier(t *testing.T) (postgres.Querier, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("create pgxmock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock, mock
}

// ExpectationsWereMet fails the test if the mock saw fewer or different
// queries than the test registered.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet mock expectations: %v", err)
	}
}
