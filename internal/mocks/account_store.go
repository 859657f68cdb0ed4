package mocks

import (
	"context"
	"database/sql"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, account *domain.Account) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	DeleteFn     func(ctx context.Context, email string) error

	// Data for default implementation
	Accounts        map[string]*domain.Account
	CreateError     error
	GetByEmailError error
}

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[string]*domain.Account),
	}
}

// Ensure MockAccountStore implements store.AccountStore
var _ store.AccountStore = (*MockAccountStore)(nil)

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Accounts[account.Email]; exists {
		return store.ErrEmailExists
	}

	m.Accounts[account.Email] = account
	return nil
}

// GetByEmail implements the AccountStore interface
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}

	account, exists := m.Accounts[email]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// Delete implements the AccountStore interface
func (m *MockAccountStore) Delete(ctx context.Context, email string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, email)
	}

	delete(m.Accounts, email)
	return nil
}

// WithTx implements the AccountStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}
