package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GioNegri/PedagogIA2/internal/platform/postgres"
	"github.com/GioNegri/PedagogIA2/internal/store"
	"github.com/GioNegri/PedagogIA2/internal/testutils"
)

func TestPostgresAllowlist_AddAndCheck(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)

	t.Run("membership flips after add", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			ctx := context.Background()
			allowlist := postgres.NewPostgresAllowlist(tx, nil)

			authorized, err := allowlist.IsAuthorized(ctx, "new@example.com")
			require.NoError(t, err)
			assert.False(t, authorized)

			require.NoError(t, allowlist.Add(ctx, "new@example.com"))

			authorized, err = allowlist.IsAuthorized(ctx, "new@example.com")
			require.NoError(t, err)
			assert.True(t, authorized)
		})
	})

	t.Run("duplicate add returns ErrAlreadyAllowed", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			ctx := context.Background()
			allowlist := postgres.NewPostgresAllowlist(tx, nil)

			require.NoError(t, allowlist.Add(ctx, "twice@example.com"))
			err := allowlist.Add(ctx, "twice@example.com")
			assert.ErrorIs(t, err, store.ErrAlreadyAllowed)
		})
	})

	t.Run("membership is exact string match", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			ctx := context.Background()
			allowlist := postgres.NewPostgresAllowlist(tx, nil)

			require.NoError(t, allowlist.Add(ctx, "Mixed@Example.com"))

			authorized, err := allowlist.IsAuthorized(ctx, "mixed@example.com")
			require.NoError(t, err)
			assert.False(t, authorized, "no case folding is applied")
		})
	})
}

func TestPostgresAllowlist_Remove(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		allowlist := postgres.NewPostgresAllowlist(tx, nil)

		require.NoError(t, allowlist.Add(ctx, "gone@example.com"))
		require.NoError(t, allowlist.Remove(ctx, "gone@example.com"))

		authorized, err := allowlist.IsAuthorized(ctx, "gone@example.com")
		require.NoError(t, err)
		assert.False(t, authorized)

		// Removing an absent email is a no-op.
		assert.NoError(t, allowlist.Remove(ctx, "gone@example.com"))
	})
}

func TestPostgresAllowlist_List(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		allowlist := postgres.NewPostgresAllowlist(tx, nil)

		require.NoError(t, allowlist.Add(ctx, "b-list@example.com"))
		require.NoError(t, allowlist.Add(ctx, "a-list@example.com"))
		require.NoError(t, allowlist.Add(ctx, "c-list@example.com"))

		emails, err := allowlist.List(ctx)
		require.NoError(t, err)

		// Other tests add entries concurrently; check relative ordering of
		// the entries this test owns rather than the whole list.
		positions := make(map[string]int)
		for i, e := range emails {
			positions[e] = i
		}
		require.Contains(t, positions, "a-list@example.com")
		require.Contains(t, positions, "b-list@example.com")
		require.Contains(t, positions, "c-list@example.com")
		assert.Less(t, positions["a-list@example.com"], positions["b-list@example.com"])
		assert.Less(t, positions["b-list@example.com"], positions["c-list@example.com"])
	})
}
