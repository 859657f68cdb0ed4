package api

import (
	"time"

	"github.com/GioNegri/PedagogIA2/internal/domain"
)

// RegisterRequest is the payload for the registration endpoint.
type RegisterRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	Password    string `json:"password"     validate:"required,max=72"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse reports the outcome of a credentials check.
type LoginResponse struct {
	Email string `json:"email"`
	OK    bool   `json:"ok"`
}

// SaveRecordRequest is the payload for appending a history record. Kind is
// an opaque category: callers may save under kinds the generator does not
// produce.
type SaveRecordRequest struct {
	OwnerEmail string `json:"owner_email" validate:"required,email"`
	Kind       string `json:"kind"        validate:"required"`
	Title      string `json:"title"`
	Body       string `json:"body"        validate:"required"`
}

// SaveRecordResponse carries the assigned id of a newly stored record.
type SaveRecordResponse struct {
	ID int64 `json:"id"`
}

// RecordSummaryResponse is one entry in a history listing.
type RecordSummaryResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordResponse is a full history record.
type RecordResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// AllowlistAddRequest is the payload for adding an email to the allowlist.
type AllowlistAddRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AllowlistResponse lists the currently authorized emails.
type AllowlistResponse struct {
	Emails []string `json:"emails"`
}

// GenerateRequest is the payload for the content generation endpoint.
type GenerateRequest struct {
	OwnerEmail      string `json:"owner_email"              validate:"required,email"`
	Kind            string `json:"kind"                     validate:"required,oneof=lesson-plan analysis debate"`
	Topic           string `json:"topic,omitempty"`
	Grade           string `json:"grade,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Text            string `json:"text,omitempty"`
	Mode            string `json:"mode,omitempty"`
	SideA           string `json:"side_a,omitempty"`
	SideB           string `json:"side_b,omitempty"`
}

// GenerateResponse carries the generated content and its stored history id.
type GenerateResponse struct {
	ID    int64  `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// newRecordSummaryResponse converts a domain summary into its API shape.
func newRecordSummaryResponse(s domain.RecordSummary) RecordSummaryResponse {
	return RecordSummaryResponse{
		ID:        s.ID,
		Kind:      s.Kind,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

// newRecordResponse converts a domain record into its API shape.
func newRecordResponse(rec *domain.HistoryRecord) RecordResponse {
	return RecordResponse{
		ID:        rec.ID,
		Kind:      rec.Kind,
		Title:     rec.Title,
		Body:      rec.Body,
		CreatedAt: rec.CreatedAt,
	}
}
