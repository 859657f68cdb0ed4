package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GioNegri/PedagogIA2/internal/mocks"
	"github.com/GioNegri/PedagogIA2/internal/service"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

func TestAllowlistServiceAdd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	allowlist := mocks.NewMockAllowlist()
	svc := service.NewAllowlistService(allowlist, slog.Default())

	require.NoError(t, svc.Add(ctx, "new@example.com"))

	err := svc.Add(ctx, "new@example.com")
	assert.ErrorIs(t, err, store.ErrAlreadyAllowed,
		"the sentinel passes through so callers can branch on it")
}

func TestAllowlistServiceRemoveAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	allowlist := mocks.NewMockAllowlist("a@example.com", "b@example.com")
	svc := service.NewAllowlistService(allowlist, slog.Default())

	emails, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, emails)

	require.NoError(t, svc.Remove(ctx, "a@example.com"))
	require.NoError(t, svc.Remove(ctx, "absent@example.com"), "removing an absent email is a no-op")

	emails, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b@example.com"}, emails)
}

func TestAllowlistServiceEnsureBootstrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("seeds all emails", func(t *testing.T) {
		t.Parallel()
		allowlist := mocks.NewMockAllowlist()
		svc := service.NewAllowlistService(allowlist, slog.Default())

		require.NoError(t, svc.EnsureBootstrap(ctx, []string{"one@example.com", "two@example.com"}))
		assert.True(t, allowlist.Entries["one@example.com"])
		assert.True(t, allowlist.Entries["two@example.com"])
	})

	t.Run("is idempotent across restarts", func(t *testing.T) {
		t.Parallel()
		allowlist := mocks.NewMockAllowlist("one@example.com")
		svc := service.NewAllowlistService(allowlist, slog.Default())

		require.NoError(t, svc.EnsureBootstrap(ctx, []string{"one@example.com", "two@example.com"}))
		require.NoError(t, svc.EnsureBootstrap(ctx, []string{"one@example.com", "two@example.com"}))
	})

	t.Run("storage faults abort seeding", func(t *testing.T) {
		t.Parallel()
		storageErr := errors.New("db down")
		allowlist := mocks.NewMockAllowlist()
		allowlist.AddFn = func(ctx context.Context, email string) error {
			return storageErr
		}
		svc := service.NewAllowlistService(allowlist, slog.Default())

		err := svc.EnsureBootstrap(ctx, []string{"one@example.com"})
		assert.ErrorIs(t, err, storageErr)
	})
}
