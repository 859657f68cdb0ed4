package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// HistoryService wraps the history store with the ownership enforcement the
// raw store does not have. A record is only ever returned to, or deleted
// by, a caller presenting the matching owner email.
type HistoryService interface {
	// Save persists a piece of generated content for the owner and returns
	// the id assigned by the store.
	Save(ctx context.Context, ownerEmail, kind, title, body string) (int64, error)

	// ListMine returns the owner's records, most recent first, without
	// bodies.
	ListMine(ctx context.Context, ownerEmail string) ([]domain.RecordSummary, error)

	// Open fetches the full record. A record that does not exist and a
	// record owned by someone else both yield ErrRecordNotFound.
	Open(ctx context.Context, ownerEmail string, id int64) (*domain.HistoryRecord, error)

	// Remove deletes the record under the same ownership rule as Open.
	Remove(ctx context.Context, ownerEmail string, id int64) error
}

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	records store.HistoryStore
	logger  *slog.Logger
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(records store.HistoryStore, logger *slog.Logger) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		records: records,
		logger:  logger.With("component", "history_service"),
	}
}

// Ensure HistoryServiceImpl implements HistoryService
var _ HistoryService = (*HistoryServiceImpl)(nil)

// Save implements HistoryService.Save
func (s *HistoryServiceImpl) Save(ctx context.Context, ownerEmail, kind, title, body string) (int64, error) {
	record, err := domain.NewHistoryRecord(ownerEmail, kind, title, body)
	if err != nil {
		s.logger.Debug("rejected invalid history record",
			"error", err,
			"owner_email", ownerEmail)
		return 0, err
	}

	id, err := s.records.Append(ctx, record)
	if err != nil {
		s.logger.Error("failed to append history record",
			"error", err,
			"owner_email", ownerEmail,
			"kind", kind)
		return 0, fmt.Errorf("failed to append history record: %w", err)
	}

	return id, nil
}

// ListMine implements HistoryService.ListMine
func (s *HistoryServiceImpl) ListMine(ctx context.Context, ownerEmail string) ([]domain.RecordSummary, error) {
	summaries, err := s.records.ListByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error("failed to list history records",
			"error", err,
			"owner_email", ownerEmail)
		return nil, fmt.Errorf("failed to list history records: %w", err)
	}
	return summaries, nil
}

// Open implements HistoryService.Open
func (s *HistoryServiceImpl) Open(ctx context.Context, ownerEmail string, id int64) (*domain.HistoryRecord, error) {
	record, err := s.fetchOwned(ctx, ownerEmail, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Remove implements HistoryService.Remove
func (s *HistoryServiceImpl) Remove(ctx context.Context, ownerEmail string, id int64) error {
	if _, err := s.fetchOwned(ctx, ownerEmail, id); err != nil {
		return err
	}

	if err := s.records.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete history record",
			"error", err,
			"owner_email", ownerEmail,
			"record_id", id)
		return fmt.Errorf("failed to delete history record: %w", err)
	}

	s.logger.Info("history record removed",
		"owner_email", ownerEmail,
		"record_id", id)
	return nil
}

// fetchOwned fetches a record and applies the ownership rule. Absent and
// foreign-owned collapse into the single ErrRecordNotFound outcome so the
// caller cannot tell the two cases apart.
func (s *HistoryServiceImpl) fetchOwned(ctx context.Context, ownerEmail string, id int64) (*domain.HistoryRecord, error) {
	record, err := s.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("failed to get history record",
			"error", err,
			"record_id", id)
		return nil, fmt.Errorf("failed to get history record: %w", err)
	}

	if record.OwnerEmail != ownerEmail {
		s.logger.Debug("history record access denied",
			"record_id", id,
			"owner_email", ownerEmail)
		return nil, ErrRecordNotFound
	}

	return record, nil
}
