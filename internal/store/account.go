package store

import (
	"context"
	"database/sql"

	"github.com/GioNegri/PedagogIA2/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store. The account must already
	// carry a hashed password; plaintext never reaches the store.
	// Uniqueness is enforced by the storage layer, not by a check-then-insert:
	// a concurrent duplicate insert surfaces as ErrEmailExists on exactly
	// one of the callers.
	Create(ctx context.Context, account *domain.Account) error

	// GetByEmail retrieves an account by exact email match.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// Delete removes an account by email. Deleting an absent account is a
	// no-op, not an error; this is an administrative operation.
	Delete(ctx context.Context, email string) error

	// WithTx returns a new AccountStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) AccountStore
}
