// Package testutil provides helpers for repository tests backed by pgxmock.
package testutil

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"taskhub/internal/adapter/postgres"
)

// NewMockQuerier returns a mock pool usable wherever postgres.DB is accepted,
// together with the expectation interface for arranging queries.
func NewMockQuerier(t *testing.T) (postgres.DB, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("create pgxmock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock, mock
}

// ExpectationsWereMet fails the test when arranged expectations went unused.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
