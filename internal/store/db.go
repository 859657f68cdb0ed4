package store

import (
	"context"
	"database/sql"
)

// DBTX is the querying surface the stores need from database/sql. Both
// *sql.DB and *sql.Tx satisfy it, so a store can run against the pool or
// inside a transaction started by RunInTransaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
