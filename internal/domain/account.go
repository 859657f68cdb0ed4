package domain

import (
	"errors"
	"time"
)

// Common validation errors for Account.
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// bcrypt refuses inputs longer than 72 bytes, so the plaintext is capped at
// that length before any hashing work happens.
const maxPasswordLength = 72

// Account represents a registered user of PedagogIA. The email is the
// primary identity and is stored exactly as provided: no case folding or
// other normalization happens here, callers own any normalization policy.
type Account struct {
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	Password       string    `json:"-"` // Plaintext, only set transiently during registration
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewAccount creates a new Account with the given email, display name and
// plaintext password, and sets the creation timestamp. The caller is
// responsible for hashing the password before the account is stored.
// Returns an error if validation fails.
func NewAccount(email, displayName, password string) (*Account, error) {
	account := &Account{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
		CreatedAt:   time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(a.Email) {
		return ErrInvalidEmail
	}

	if a.Password != "" {
		if len(a.Password) > maxPasswordLength {
			return ErrPasswordTooLong
		}
	} else {
		// Accounts loaded from storage carry only the hash.
		if a.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// validateEmailFormat performs basic structural validation of an email
// address: a non-leading, non-trailing '@' followed by a domain containing
// an interior dot. Exact-match semantics elsewhere mean this is a shape
// check only, not a deliverability check.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
