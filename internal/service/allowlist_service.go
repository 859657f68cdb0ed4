package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GioNegri/PedagogIA2/internal/store"
)

// AllowlistService exposes the administrative allowlist operations and the
// startup bootstrap seeding.
type AllowlistService interface {
	// Add authorizes an email to register. Returns
	// store.ErrAlreadyAllowed when the email is already present.
	Add(ctx context.Context, email string) error

	// Remove withdraws the capability to register. Removing an absent
	// email is a no-op. Existing accounts are unaffected.
	Remove(ctx context.Context, email string) error

	// List returns all authorized emails sorted ascending.
	List(ctx context.Context) ([]string, error)

	// EnsureBootstrap seeds the configured bootstrap emails idempotently;
	// already-present entries are tolerated so restarts never fail.
	EnsureBootstrap(ctx context.Context, emails []string) error
}

// AllowlistServiceImpl implements the AllowlistService interface.
type AllowlistServiceImpl struct {
	allowlist store.Allowlist
	logger    *slog.Logger
}

// NewAllowlistService creates a new AllowlistService.
func NewAllowlistService(allowlist store.Allowlist, logger *slog.Logger) *AllowlistServiceImpl {
	return &AllowlistServiceImpl{
		allowlist: allowlist,
		logger:    logger.With("component", "allowlist_service"),
	}
}

// Ensure AllowlistServiceImpl implements AllowlistService
var _ AllowlistService = (*AllowlistServiceImpl)(nil)

// Add implements AllowlistService.Add
func (s *AllowlistServiceImpl) Add(ctx context.Context, email string) error {
	if err := s.allowlist.Add(ctx, email); err != nil {
		if errors.Is(err, store.ErrAlreadyAllowed) {
			return err
		}
		s.logger.Error("failed to add allowlist entry",
			"error", err,
			"email", email)
		return fmt.Errorf("failed to add allowlist entry: %w", err)
	}
	return nil
}

// Remove implements AllowlistService.Remove
func (s *AllowlistServiceImpl) Remove(ctx context.Context, email string) error {
	if err := s.allowlist.Remove(ctx, email); err != nil {
		s.logger.Error("failed to remove allowlist entry",
			"error", err,
			"email", email)
		return fmt.Errorf("failed to remove allowlist entry: %w", err)
	}
	return nil
}

// List implements AllowlistService.List
func (s *AllowlistServiceImpl) List(ctx context.Context) ([]string, error) {
	emails, err := s.allowlist.List(ctx)
	if err != nil {
		s.logger.Error("failed to list allowlist entries", "error", err)
		return nil, fmt.Errorf("failed to list allowlist entries: %w", err)
	}
	return emails, nil
}

// EnsureBootstrap implements AllowlistService.EnsureBootstrap
func (s *AllowlistServiceImpl) EnsureBootstrap(ctx context.Context, emails []string) error {
	for _, email := range emails {
		err := s.allowlist.Add(ctx, email)
		if err == nil {
			s.logger.Info("bootstrap email added to allowlist", "email", email)
			continue
		}
		if errors.Is(err, store.ErrAlreadyAllowed) {
			s.logger.Debug("bootstrap email already on allowlist", "email", email)
			continue
		}
		s.logger.Error("failed to seed bootstrap email",
			"error", err,
			"email", email)
		return fmt.Errorf("failed to seed bootstrap email %q: %w", email, err)
	}
	return nil
}
