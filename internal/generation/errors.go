package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidRequest is returned when a generation request is missing
	// the inputs its kind requires.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrUnknownKind is returned when the request kind has no prompt.
	ErrUnknownKind = errors.New("unknown generation kind")

	// ErrInvalidResponse is returned when the model response is empty or malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry.
	ErrTransientFailure = errors.New("transient error during content generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
