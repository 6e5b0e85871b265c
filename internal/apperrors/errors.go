// Package apperrors defines the error classes the API maps to HTTP statuses.
package apperrors

import "errors"

var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a record that is absent or not owned by the caller.
	// The two cases are deliberately indistinguishable so non-owners cannot
	// probe for existence.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks an unreachable NLQ service.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUpstream marks a semantic error reported by the NLQ service; the
	// wrapped message carries the service's detail text.
	ErrUpstream = errors.New("upstream error")
)
