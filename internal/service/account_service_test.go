package service_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/mocks"
	"github.com/GioNegri/PedagogIA2/internal/platform/postgres"
	"github.com/GioNegri/PedagogIA2/internal/service"
	"github.com/GioNegri/PedagogIA2/internal/service/auth"
	"github.com/GioNegri/PedagogIA2/internal/testutils"
)

// countingHasher wraps a real hasher and records how many times it is called.
type countingHasher struct {
	inner auth.PasswordHasher
	calls int
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.calls++
	return h.inner.Hash(password)
}

// recordingVerifier records every hash it was asked to compare against.
type recordingVerifier struct {
	inner  auth.PasswordVerifier
	hashes []string
}

func (v *recordingVerifier) Compare(hashedPassword, password string) error {
	v.hashes = append(v.hashes, hashedPassword)
	return v.inner.Compare(hashedPassword, password)
}

func newTestAccountService(
	accounts *mocks.MockAccountStore,
	allowlist *mocks.MockAllowlist,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *service.AccountServiceImpl {
	// The db is only touched once the allowlist gate and validation have
	// passed; unit tests of the earlier paths never reach it.
	return service.NewAccountService(accounts, allowlist, hasher, verifier, nil, slog.Default())
}

func TestRegisterRejectsUnlistedEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	accounts := mocks.NewMockAccountStore()
	allowlist := mocks.NewMockAllowlist() // empty
	hasher := &countingHasher{inner: auth.NewBcryptHasher(bcrypt.MinCost)}

	svc := newTestAccountService(accounts, allowlist, hasher, auth.NewBcryptVerifier())

	account, err := svc.Register(ctx, "stranger@example.com", "Stranger", "password")
	assert.ErrorIs(t, err, service.ErrNotAuthorized)
	assert.Nil(t, account)

	assert.Zero(t, hasher.calls, "no hashing work before the allowlist gate")
	assert.Empty(t, accounts.Accounts, "no account row is created")
}

func TestRegisterPropagatesAllowlistFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	storageErr := errors.New("connection refused")
	allowlist := mocks.NewMockAllowlist()
	allowlist.IsAuthorizedFn = func(ctx context.Context, email string) (bool, error) {
		return false, storageErr
	}

	svc := newTestAccountService(
		mocks.NewMockAccountStore(), allowlist,
		auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier())

	account, err := svc.Register(ctx, "teacher@example.com", "Teacher", "password")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, service.ErrNotAuthorized,
		"a storage fault is not an authorization verdict")
}

func TestRegisterRejectsInvalidAccountData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	allowlist := mocks.NewMockAllowlist("bad-but-allowed")

	svc := newTestAccountService(
		mocks.NewMockAccountStore(), allowlist,
		auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier())

	account, err := svc.Register(ctx, "bad-but-allowed", "Broken", "password")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash("right-password")
	require.NoError(t, err)

	newStoreWithAccount := func() *mocks.MockAccountStore {
		accounts := mocks.NewMockAccountStore()
		accounts.Accounts["known@example.com"] = &domain.Account{
			Email:          "known@example.com",
			DisplayName:    "Known",
			HashedPassword: hashed,
		}
		return accounts
	}

	t.Run("correct credentials", func(t *testing.T) {
		t.Parallel()
		svc := newTestAccountService(
			newStoreWithAccount(), mocks.NewMockAllowlist(), hasher, auth.NewBcryptVerifier())

		ok, err := svc.Login(ctx, "known@example.com", "right-password")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc := newTestAccountService(
			newStoreWithAccount(), mocks.NewMockAllowlist(), hasher, auth.NewBcryptVerifier())

		ok, err := svc.Login(ctx, "known@example.com", "wrong-password")
		require.NoError(t, err, "a failed verification is a verdict, not an error")
		assert.False(t, ok)
	})

	t.Run("unknown email burns a dummy comparison", func(t *testing.T) {
		t.Parallel()
		verifier := &recordingVerifier{inner: auth.NewBcryptVerifier()}
		svc := newTestAccountService(
			newStoreWithAccount(), mocks.NewMockAllowlist(), hasher, verifier)

		ok, err := svc.Login(ctx, "ghost@example.com", "whatever")
		require.NoError(t, err)
		assert.False(t, ok)

		require.Len(t, verifier.hashes, 1,
			"the miss path still performs one comparison to equalize timing")
		assert.NotEqual(t, hashed, verifier.hashes[0])
	})

	t.Run("malformed stored hash is a plain false", func(t *testing.T) {
		t.Parallel()
		accounts := mocks.NewMockAccountStore()
		accounts.Accounts["broken@example.com"] = &domain.Account{
			Email:          "broken@example.com",
			HashedPassword: "not-a-bcrypt-hash",
		}
		svc := newTestAccountService(
			accounts, mocks.NewMockAllowlist(), hasher, auth.NewBcryptVerifier())

		ok, err := svc.Login(ctx, "broken@example.com", "anything")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("storage fault is an error, not a verdict", func(t *testing.T) {
		t.Parallel()
		storageErr := errors.New("db down")
		accounts := mocks.NewMockAccountStore()
		accounts.GetByEmailError = storageErr

		svc := newTestAccountService(
			accounts, mocks.NewMockAllowlist(), hasher, auth.NewBcryptVerifier())

		ok, err := svc.Login(ctx, "known@example.com", "right-password")
		assert.False(t, ok)
		assert.ErrorIs(t, err, storageErr)
	})
}

// TestRegisterIntegration exercises the transactional insert path against a
// real database.
func TestRegisterIntegration(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)
	ctx := context.Background()

	accounts := postgres.NewPostgresAccountStore(db, nil)
	allowlist := postgres.NewPostgresAllowlist(db, nil)

	svc := service.NewAccountService(
		accounts, allowlist,
		auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(),
		db, slog.Default())

	email := "register-integration@example.com"
	require.NoError(t, allowlist.Add(ctx, email))
	t.Cleanup(func() {
		_ = accounts.Delete(ctx, email)
		_ = allowlist.Remove(ctx, email)
	})

	account, err := svc.Register(ctx, email, "Integration", "pw1")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Empty(t, account.Password, "plaintext is cleared after hashing")
	assert.NotEmpty(t, account.HashedPassword)

	// Second registration for the same email loses.
	_, err = svc.Register(ctx, email, "Second Try", "other-password")
	assert.ErrorIs(t, err, service.ErrAlreadyRegistered)

	// The stored credentials verify.
	ok, err := svc.Login(ctx, email, "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Login(ctx, email, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestRegisterConcurrentDuplicates races several registrations of one
// authorized email against the pooled database. The unique constraint is the
// arbiter, so exactly one attempt may win regardless of interleaving.
func TestRegisterConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)
	ctx := context.Background()

	accounts := postgres.NewPostgresAccountStore(db, nil)
	allowlist := postgres.NewPostgresAllowlist(db, nil)

	svc := service.NewAccountService(
		accounts, allowlist,
		auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(),
		db, slog.Default())

	email := "register-race@example.com"
	require.NoError(t, allowlist.Add(ctx, email))
	t.Cleanup(func() {
		_ = accounts.Delete(ctx, email)
		_ = allowlist.Remove(ctx, email)
	})

	const attempts = 8
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, email, "Racer", "password")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, service.ErrAlreadyRegistered):
			losses++
		default:
			t.Fatalf("unexpected registration outcome: %v", err)
		}
	}

	assert.Equal(t, 1, wins, "exactly one registration succeeds")
	assert.Equal(t, attempts-1, losses)
}
