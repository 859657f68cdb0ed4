package service

import "errors"

// Typed outcomes of the account and history services. Expected failures are
// always reported through these sentinels; only storage-layer faults
// propagate as wrapped errors.
var (
	// ErrNotAuthorized is returned by Register when the email is absent
	// from the allowlist. The check runs before any hashing work.
	ErrNotAuthorized = errors.New("email is not authorized to register")

	// ErrAlreadyRegistered is returned by Register when an account with
	// the email already exists. Registration never overwrites.
	ErrAlreadyRegistered = errors.New("email is already registered")

	// ErrInvalidCredentials is the login failure outcome. It deliberately
	// does not distinguish "unknown email" from "wrong password".
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRecordNotFound is the unified history outcome for "does not
	// exist" and "belongs to someone else", so callers cannot probe for
	// the existence of other users' record ids.
	ErrRecordNotFound = errors.New("history record not found")
)
