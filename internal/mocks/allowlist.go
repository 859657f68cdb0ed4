package mocks

import (
	"context"
	"sort"

	"github.com/GioNegri/PedagogIA2/internal/store"
)

// MockAllowlist implements store.Allowlist for testing
type MockAllowlist struct {
	// Function fields for customizable behavior
	IsAuthorizedFn func(ctx context.Context, email string) (bool, error)
	AddFn          func(ctx context.Context, email string) error
	RemoveFn       func(ctx context.Context, email string) error
	ListFn         func(ctx context.Context) ([]string, error)

	// Data for default implementation
	Entries map[string]bool
}

// NewMockAllowlist creates a new mock allowlist seeded with the given emails
func NewMockAllowlist(emails ...string) *MockAllowlist {
	entries := make(map[string]bool, len(emails))
	for _, e := range emails {
		entries[e] = true
	}
	return &MockAllowlist{Entries: entries}
}

// Ensure MockAllowlist implements store.Allowlist
var _ store.Allowlist = (*MockAllowlist)(nil)

// IsAuthorized implements the Allowlist interface
func (m *MockAllowlist) IsAuthorized(ctx context.Context, email string) (bool, error) {
	if m.IsAuthorizedFn != nil {
		return m.IsAuthorizedFn(ctx, email)
	}
	return m.Entries[email], nil
}

// Add implements the Allowlist interface
func (m *MockAllowlist) Add(ctx context.Context, email string) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, email)
	}

	if m.Entries[email] {
		return store.ErrAlreadyAllowed
	}
	m.Entries[email] = true
	return nil
}

// Remove implements the Allowlist interface
func (m *MockAllowlist) Remove(ctx context.Context, email string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, email)
	}

	delete(m.Entries, email)
	return nil
}

// List implements the Allowlist interface
func (m *MockAllowlist) List(ctx context.Context) ([]string, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	emails := make([]string, 0, len(m.Entries))
	for e := range m.Entries {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return emails, nil
}
