package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/platform/logger"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// PostgresHistoryStore implements the store.HistoryStore interface
// using a PostgreSQL database as the storage backend. Record ids come from
// a BIGSERIAL sequence, which makes them strictly increasing under
// concurrent appends and guarantees an id is never reused after deletion.
type PostgresHistoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHistoryStore creates a new PostgreSQL implementation of the
// HistoryStore interface. If logger is nil, a default logger will be used.
func NewPostgresHistoryStore(db store.DBTX, logger *slog.Logger) *PostgresHistoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresHistoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "history_store")),
	}
}

// Ensure PostgresHistoryStore implements store.HistoryStore interface
var _ store.HistoryStore = (*PostgresHistoryStore)(nil)

// Append implements store.HistoryStore.Append
// It persists the record and returns the id assigned by the database.
func (s *PostgresHistoryStore) Append(ctx context.Context, record *domain.HistoryRecord) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("record validation failed during append",
			slog.String("error", err.Error()),
			slog.String("owner_email", record.OwnerEmail))
		return 0, err
	}

	query := `
		INSERT INTO history_records (owner_email, kind, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		record.OwnerEmail,
		record.Kind,
		record.Title,
		record.Body,
		record.CreatedAt,
	).Scan(&id)

	if err != nil {
		log.Error("failed to append history record",
			slog.String("error", err.Error()),
			slog.String("owner_email", record.OwnerEmail),
			slog.String("kind", record.Kind))
		return 0, MapError(err)
	}

	record.ID = id

	log.Info("history record appended",
		slog.Int64("record_id", id),
		slog.String("owner_email", record.OwnerEmail),
		slog.String("kind", record.Kind))
	return id, nil
}

// ListByOwner implements store.HistoryStore.ListByOwner
// The body column is excluded from the projection to keep listing cheap.
// Results are ordered by id descending, most recent first.
func (s *PostgresHistoryStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.RecordSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, kind, title, created_at
		FROM history_records
		WHERE owner_email = $1
		ORDER BY id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		log.Error("failed to list history records",
			slog.String("error", err.Error()),
			slog.String("owner_email", ownerEmail))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	summaries := make([]domain.RecordSummary, 0)
	for rows.Next() {
		var summary domain.RecordSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Kind,
			&summary.Title,
			&summary.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return summaries, nil
}

// Get implements store.HistoryStore.Get
// It retrieves the full record including the body.
// Returns store.ErrRecordNotFound if the record does not exist.
func (s *PostgresHistoryStore) Get(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_email, kind, title, body, created_at
		FROM history_records
		WHERE id = $1
	`

	var record domain.HistoryRecord
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.OwnerEmail,
		&record.Kind,
		&record.Title,
		&record.Body,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("history record not found", slog.Int64("record_id", id))
			return nil, store.ErrRecordNotFound
		}
		log.Error("failed to get history record",
			slog.String("error", err.Error()),
			slog.Int64("record_id", id))
		return nil, MapError(err)
	}

	return &record, nil
}

// Delete implements store.HistoryStore.Delete
// It removes a record by id unconditionally; deleting an absent id is a
// no-op. Ownership checks live in the history service.
func (s *PostgresHistoryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM history_records WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		log.Error("failed to delete history record",
			slog.String("error", err.Error()),
			slog.Int64("record_id", id))
		return MapError(err)
	}

	log.Info("history record deleted", slog.Int64("record_id", id))
	return nil
}
