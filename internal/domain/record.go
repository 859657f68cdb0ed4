package domain

import (
	"errors"
	"time"
)

// Well-known record kinds produced by the generation layer. The field is an
// open string: these constants cover the built-in generators, but the store
// treats any non-empty value as an opaque category.
const (
	KindLessonPlan = "lesson-plan"
	KindAnalysis   = "analysis"
	KindDebate     = "debate"
)

// Common validation errors for HistoryRecord.
var (
	ErrEmptyOwnerEmail = errors.New("record owner email cannot be empty")
	ErrEmptyKind       = errors.New("record kind cannot be empty")
	ErrEmptyBody       = errors.New("record body cannot be empty")
)

// HistoryRecord is one piece of generated content kept for a user. The ID is
// assigned by the store on insert, is strictly increasing, and is never
// reused after deletion. Records reference their owner by email only; no
// foreign key is enforced, so orphaned records are tolerated.
type HistoryRecord struct {
	ID         int64     `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordSummary is the list projection of a HistoryRecord. The body is
// deliberately excluded to keep listing cheap.
type RecordSummary struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// NewHistoryRecord creates an unsaved HistoryRecord with the creation
// timestamp set. The ID stays zero until the store assigns one on insert.
// The title may be empty; callers default it as they see fit.
// Returns an error if validation fails.
func NewHistoryRecord(ownerEmail, kind, title, body string) (*HistoryRecord, error) {
	record := &HistoryRecord{
		OwnerEmail: ownerEmail,
		Kind:       kind,
		Title:      title,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the HistoryRecord has valid data.
// Returns an error if any field fails validation.
func (r *HistoryRecord) Validate() error {
	if r.OwnerEmail == "" {
		return ErrEmptyOwnerEmail
	}

	if r.Kind == "" {
		return ErrEmptyKind
	}

	if r.Body == "" {
		return ErrEmptyBody
	}

	return nil
}

// Summary returns the list projection of the record.
func (r *HistoryRecord) Summary() RecordSummary {
	return RecordSummary{
		ID:        r.ID,
		Kind:      r.Kind,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
	}
}
