package store

import (
	"context"

	"github.com/GioNegri/PedagogIA2/internal/domain"
)

// HistoryStore defines the interface for generated-content persistence.
// The store is the sole id authority: Append assigns strictly increasing
// ids under concurrent callers, and ids are never reused after deletion.
type HistoryStore interface {
	// Append persists a new record, assigns the next id and returns it.
	// The record's CreatedAt is set by the caller at construction time.
	Append(ctx context.Context, record *domain.HistoryRecord) (int64, error)

	// ListByOwner returns the list projection (no body) of all records
	// belonging to the owner, ordered by id descending so the most recent
	// entry comes first. Returns an empty slice when the owner has none.
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.RecordSummary, error)

	// Get retrieves the full record, body included.
	// Returns ErrRecordNotFound if the record does not exist.
	Get(ctx context.Context, id int64) (*domain.HistoryRecord, error)

	// Delete removes a record by id unconditionally. Deleting an absent id
	// is a no-op; ownership enforcement lives in the service layer.
	Delete(ctx context.Context, id int64) error
}
