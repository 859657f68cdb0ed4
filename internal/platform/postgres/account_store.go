package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/platform/logger"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// Create implements store.AccountStore.Create
// It saves a new account, relying on the table's primary key to reject
// duplicates: a concurrent insert for the same email yields exactly one
// success, the other caller gets store.ErrEmailExists.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("email", account.Email))
		return err
	}

	// Plaintext must never reach the store.
	if account.HashedPassword == "" {
		return fmt.Errorf("%w: account is missing a hashed password", store.ErrInvalidEntity)
	}

	query := `
		INSERT INTO accounts (email, display_name, hashed_password, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.Email,
		account.DisplayName,
		account.HashedPassword,
		account.CreatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate email during account creation",
				slog.String("email", account.Email))
			return store.ErrEmailExists
		}

		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("email", account.Email))
		return MapError(err)
	}

	log.Info("account created successfully",
		slog.String("email", account.Email))
	return nil
}

// GetByEmail implements store.AccountStore.GetByEmail
// It retrieves an account by exact email match.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT email, display_name, hashed_password, created_at
		FROM accounts
		WHERE email = $1
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&account.Email,
		&account.DisplayName,
		&account.HashedPassword,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.String("email", email))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by email",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, MapError(err)
	}

	return &account, nil
}

// Delete implements store.AccountStore.Delete
// Deleting an absent account is a no-op, not an error.
func (s *PostgresAccountStore) Delete(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM accounts WHERE email = $1`

	if _, err := s.db.ExecContext(ctx, query, email); err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return MapError(err)
	}

	log.Info("account deleted", slog.String("email", email))
	return nil
}

// WithTx implements store.AccountStore.WithTx
// It returns a new AccountStore instance backed by the provided transaction.
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}
