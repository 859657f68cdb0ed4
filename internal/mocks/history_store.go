package mocks

import (
	"context"
	"sort"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// MockHistoryStore implements store.HistoryStore for testing
type MockHistoryStore struct {
	// Function fields for customizable behavior
	AppendFn      func(ctx context.Context, record *domain.HistoryRecord) (int64, error)
	ListByOwnerFn func(ctx context.Context, ownerEmail string) ([]domain.RecordSummary, error)
	GetFn         func(ctx context.Context, id int64) (*domain.HistoryRecord, error)
	DeleteFn      func(ctx context.Context, id int64) error

	// Data for default implementation. The id counter never goes backwards,
	// matching the never-reused semantics of the real store.
	Records     map[int64]*domain.HistoryRecord
	NextID      int64
	AppendError error
}

// NewMockHistoryStore creates a new mock store with initialized defaults
func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{
		Records: make(map[int64]*domain.HistoryRecord),
		NextID:  1,
	}
}

// Ensure MockHistoryStore implements store.HistoryStore
var _ store.HistoryStore = (*MockHistoryStore)(nil)

// Append implements the HistoryStore interface
func (m *MockHistoryStore) Append(ctx context.Context, record *domain.HistoryRecord) (int64, error) {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, record)
	}

	if m.AppendError != nil {
		return 0, m.AppendError
	}

	id := m.NextID
	m.NextID++

	stored := *record
	stored.ID = id
	m.Records[id] = &stored
	record.ID = id
	return id, nil
}

// ListByOwner implements the HistoryStore interface
func (m *MockHistoryStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.RecordSummary, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerEmail)
	}

	summaries := make([]domain.RecordSummary, 0)
	for _, rec := range m.Records {
		if rec.OwnerEmail == ownerEmail {
			summaries = append(summaries, rec.Summary())
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID > summaries[j].ID
	})
	return summaries, nil
}

// Get implements the HistoryStore interface
func (m *MockHistoryStore) Get(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}

	rec, exists := m.Records[id]
	if !exists {
		return nil, store.ErrRecordNotFound
	}
	return rec, nil
}

// Delete implements the HistoryStore interface
func (m *MockHistoryStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	delete(m.Records, id)
	return nil
}
