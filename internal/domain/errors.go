package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRouteFinder is the root of every error raised by ecoroute services.
	ErrRouteFinder = errors.New("route finder error")

	// ErrValidation marks rejected user input.
	ErrValidation = fmt.Errorf("%w: validation", ErrRouteFinder)

	// ErrConfiguration marks an unusable configuration value.
	ErrConfiguration = fmt.Errorf("%w: configuration", ErrRouteFinder)
)

// ValidationError reports which field was rejected and why.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap ties the error to ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConfigError wraps ErrConfiguration with the offending key.
func ConfigError(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfiguration, key, err)
}
