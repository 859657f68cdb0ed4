package postgres

import (
	"context"
	"log/slog"

	"github.com/GioNegri/PedagogIA2/internal/platform/logger"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// PostgresAllowlist implements the store.Allowlist interface
// using a PostgreSQL database as the storage backend.
type PostgresAllowlist struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAllowlist creates a new PostgreSQL implementation of the
// Allowlist interface. If logger is nil, a default logger will be used.
func NewPostgresAllowlist(db store.DBTX, logger *slog.Logger) *PostgresAllowlist {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAllowlist{
		db:     db,
		logger: logger.With(slog.String("component", "allowlist")),
	}
}

// Ensure PostgresAllowlist implements store.Allowlist interface
var _ store.Allowlist = (*PostgresAllowlist)(nil)

// IsAuthorized implements store.Allowlist.IsAuthorized
// Membership is an exact string match; no normalization is applied.
func (s *PostgresAllowlist) IsAuthorized(ctx context.Context, email string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM allowed_emails WHERE email = $1)`

	var authorized bool
	if err := s.db.QueryRowContext(ctx, query, email).Scan(&authorized); err != nil {
		log.Error("failed to check allowlist membership",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return false, MapError(err)
	}

	return authorized, nil
}

// Add implements store.Allowlist.Add
// Duplicate inserts are rejected with store.ErrAlreadyAllowed rather than
// silently ignored, so callers can distinguish "added" from "already
// authorized".
func (s *PostgresAllowlist) Add(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `INSERT INTO allowed_emails (email) VALUES ($1)`

	if _, err := s.db.ExecContext(ctx, query, email); err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already on allowlist", slog.String("email", email))
			return store.ErrAlreadyAllowed
		}
		log.Error("failed to add allowlist entry",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return MapError(err)
	}

	log.Info("allowlist entry added", slog.String("email", email))
	return nil
}

// Remove implements store.Allowlist.Remove
// Removing an absent email is a no-op, not an error. Existing accounts are
// unaffected: the allowlist is consulted at registration time only.
func (s *PostgresAllowlist) Remove(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM allowed_emails WHERE email = $1`

	if _, err := s.db.ExecContext(ctx, query, email); err != nil {
		log.Error("failed to remove allowlist entry",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return MapError(err)
	}

	log.Info("allowlist entry removed", slog.String("email", email))
	return nil
}

// List implements store.Allowlist.List
// Entries are returned sorted ascending for administrative display.
func (s *PostgresAllowlist) List(ctx context.Context) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT email FROM allowed_emails ORDER BY email ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list allowlist entries",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	emails := make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, MapError(err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return emails, nil
}
