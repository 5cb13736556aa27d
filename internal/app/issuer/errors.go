package issuer

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a request the caller must correct. No token is produced.
	ErrValidation = errors.New("invalid token request")

	// ErrConfiguration marks missing or malformed signing configuration.
	// It is detected at startup; the service must not start serving.
	ErrConfiguration = errors.New("invalid issuer configuration")

	// ErrSigning marks a failure of the signing operation itself.
	ErrSigning = errors.New("token signing failed")
)

// Field validation reasons.
const (
	ReasonRequired     = "required"
	ReasonTooLong      = "too long"
	ReasonInvalidEmail = "invalid email"
)

// ValidationError describes the first offending field of a TokenRequest.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
