// Package server provides the HTTP REST API for the voice-mirror service.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/voice-mirror/internal/feedback"
	"github.com/jonathan/voice-mirror/internal/pipeline"
)

// ErrInvalidToken indicates a magic-link token that is missing, expired,
// or does not match the stored hash.
type ErrInvalidToken struct{}

func (e *ErrInvalidToken) Error() string {
	return "invalid or expired token"
}

// ErrUserNotFound indicates the authenticated user has no account record.
type ErrUserNotFound struct{}

func (e *ErrUserNotFound) Error() string {
	return "user not found"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation,
		*pipeline.InsufficientSamplesError,
		*pipeline.InsufficientWordCountError,
		*pipeline.SampleTooShortError,
		*pipeline.TextTooLongError,
		*feedback.EditTextRequiredError,
		*feedback.InvalidActionError:
		return http.StatusBadRequest
	case *ErrInvalidToken:
		return http.StatusUnauthorized
	case *ErrUserNotFound,
		*pipeline.ProfileNotFoundError,
		*feedback.EventNotFoundError:
		return http.StatusNotFound
	case *pipeline.SampleLimitError,
		*pipeline.ProfileNotReadyError,
		*feedback.AlreadyRecordedError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
