// Package testutils provides database testing utilities built around
// transaction isolation. Each integration test runs inside its own
// transaction which is rolled back when the test completes, so tests can run
// in parallel against the same database without cleanup code.
//
// Integration tests are gated on the DATABASE_URL environment variable and
// skip themselves when it is not set.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/GioNegri/PedagogIA2/internal/platform/postgres"
)

// migrationsRunOnce ensures migrations are only run once across all tests
var migrationsRunOnce sync.Once

// GetTestDatabaseURL returns the database URL for integration tests, or an
// empty string when none is configured.
func GetTestDatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// SkipIfNoDB skips the test unless DATABASE_URL is set.
func SkipIfNoDB(t *testing.T) {
	t.Helper()
	if GetTestDatabaseURL() == "" {
		t.Skip("skipping integration test - requires DATABASE_URL environment variable")
	}
}

// GetTestDB opens a connection to the test database, applies the embedded
// migrations once per process and registers a cleanup to close the
// connection. The test is skipped when DATABASE_URL is not set.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()
	SkipIfNoDB(t)

	db, err := sql.Open("pgx", GetTestDatabaseURL())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	if err := setupSchema(db); err != nil {
		t.Fatalf("failed to set up test database schema: %v", err)
	}

	return db
}

// setupSchema brings the test database up to the latest migration version.
// sync.Once keeps repeated calls across tests cheap.
func setupSchema(db *sql.DB) error {
	var setupErr error
	migrationsRunOnce.Do(func() {
		goose.SetBaseFS(postgres.MigrationsFS)
		if err := goose.SetDialect("postgres"); err != nil {
			setupErr = fmt.Errorf("failed to set goose dialect: %w", err)
			return
		}
		if err := goose.Up(db, postgres.MigrationsDir); err != nil {
			setupErr = fmt.Errorf("failed to apply migrations: %w", err)
		}
	})
	return setupErr
}

// WithTx runs fn inside a transaction that is rolled back afterwards, so the
// test leaves no trace in the database regardless of outcome.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("failed to begin test transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
