package store

import "context"

// Allowlist defines the interface for the set of emails permitted to
// register an account. Presence is a boolean capability; membership is
// checked at registration time only, so removing an email never deactivates
// an existing account.
type Allowlist interface {
	// IsAuthorized reports whether an entry with exactly this email string
	// exists. No normalization is applied; callers own any normalization
	// policy.
	IsAuthorized(ctx context.Context, email string) (bool, error)

	// Add inserts an entry. Returns ErrAlreadyAllowed if the email is
	// already present, so callers can distinguish "added" from "already
	// authorized".
	Add(ctx context.Context, email string) error

	// Remove deletes an entry if present. Removing an absent email is a
	// no-op, not an error.
	Remove(ctx context.Context, email string) error

	// List returns all entries sorted ascending, for administrative display.
	List(ctx context.Context) ([]string, error)
}
