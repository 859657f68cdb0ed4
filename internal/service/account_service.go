package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/service/auth"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// dummyHash is a valid bcrypt hash (cost 10) of a throwaway value. Login
// runs a comparison against it when the email is unknown so the miss path
// costs about the same as a real verification and does not leak account
// existence through timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountService orchestrates registration and login verification.
type AccountService interface {
	// Register creates a new account for an allowlisted email. Returns
	// ErrNotAuthorized when the email is not on the allowlist (checked
	// before any hashing work), ErrAlreadyRegistered when the email is
	// taken, or validation errors from the domain Account. On any failure
	// path no account row is created.
	Register(ctx context.Context, email, displayName, password string) (*domain.Account, error)

	// Login verifies the email/password pair. The boolean is the verdict;
	// the error is non-nil only for storage-layer faults. Verification
	// failures of any kind, including a malformed stored hash, are a
	// plain false.
	Login(ctx context.Context, email, password string) (bool, error)
}

// AccountServiceImpl implements the AccountService interface.
type AccountServiceImpl struct {
	accounts  store.AccountStore
	allowlist store.Allowlist
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	db        *sql.DB
	logger    *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	accounts store.AccountStore,
	allowlist store.Allowlist,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accounts:  accounts,
		allowlist: allowlist,
		hasher:    hasher,
		verifier:  verifier,
		db:        db,
		logger:    logger.With("component", "account_service"),
	}
}

// Ensure AccountServiceImpl implements AccountService
var _ AccountService = (*AccountServiceImpl)(nil)

// Register implements AccountService.Register
func (s *AccountServiceImpl) Register(ctx context.Context, email, displayName, password string) (*domain.Account, error) {
	// The allowlist gate runs first: unauthorized attempts must not pay
	// the bcrypt cost and must not create any partial state.
	authorized, err := s.allowlist.IsAuthorized(ctx, email)
	if err != nil {
		s.logger.Error("failed to check allowlist during registration",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("failed to check allowlist: %w", err)
	}
	if !authorized {
		s.logger.Debug("registration rejected, email not allowlisted",
			"email", email)
		return nil, ErrNotAuthorized
	}

	account, err := domain.NewAccount(email, displayName, password)
	if err != nil {
		s.logger.Debug("registration rejected, invalid account data",
			"error", err,
			"email", email)
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	// The insert itself is the uniqueness check: the store's constraint
	// decides the winner of a concurrent duplicate registration.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.accounts.WithTx(tx).Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("registration rejected, email already registered",
				"email", email)
			return nil, ErrAlreadyRegistered
		}
		s.logger.Error("failed to save account",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.logger.Info("account registered", "email", email)
	return account, nil
}

// Login implements AccountService.Login
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (bool, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			// Burn a comparable amount of work so an unknown email is
			// not observably faster than a wrong password.
			_ = s.verifier.Compare(dummyHash, password)
			s.logger.Debug("login failed, unknown email", "email", email)
			return false, nil
		}
		s.logger.Error("failed to look up account during login",
			"error", err,
			"email", email)
		return false, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := s.verifier.Compare(account.HashedPassword, password); err != nil {
		s.logger.Debug("login failed, verification error", "email", email)
		return false, nil
	}

	s.logger.Info("login succeeded", "email", email)
	return true, nil
}
