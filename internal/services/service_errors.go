// filepath: internal/services/service_errors.go
package services

import (
	"errors"

	"todohub/internal/shared"
)

// ErrValidation is the cause of every request validation failure.
var ErrValidation = errors.New("validation failed")

// Validation errors returned before any store access.
var (
	ErrEmptyTitle     = shared.WrapAppError(shared.KindInvalidInput, "Title must not be empty", ErrValidation)
	ErrListIDMismatch = shared.WrapAppError(shared.KindInvalidInput, "list_id in body does not match the path", ErrValidation)
	ErrMalformedBody  = shared.WrapAppError(shared.KindInvalidInput, "Request body must be valid JSON", ErrValidation)
)
