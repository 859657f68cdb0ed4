package postgres_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/GioNegri/PedagogIA2/internal/platform/postgres"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows maps to not found",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "closed connection maps to storage unavailable",
			err:      sql.ErrConnDone,
			expected: store.ErrStorageUnavailable,
		},
		{
			name:     "bad connection maps to storage unavailable",
			err:      driver.ErrBadConn,
			expected: store.ErrStorageUnavailable,
		},
		{
			name:     "unique violation maps to duplicate",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "accounts_pkey"},
			expected: store.ErrDuplicate,
		},
		{
			name:     "foreign key violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "fk_owner"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "not null violation maps to invalid entity",
			err:      &pgconn.PgError{Code: "23502", ColumnName: "body"},
			expected: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := postgres.MapError(tc.err)

			if tc.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	original := errors.New("something else entirely")
	assert.Equal(t, original, postgres.MapError(original))

	wrapped := fmt.Errorf("outer: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, postgres.MapError(wrapped), store.ErrDuplicate,
		"wrapped pg errors are still recognized")
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, postgres.IsUniqueViolation(
		fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}
