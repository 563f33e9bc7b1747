package api

import (
	"errors"
	"net/http"

	"github.com/johnwards/caretrain/internal/store"
)

// Error is the JSON body of every non-2xx response. Clients read the error
// field.
type Error struct {
	Message       string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// NewError creates an Error carrying the request's correlation ID.
func NewError(message, correlationID string) *Error {
	return &Error{Message: message, CorrelationID: correlationID}
}

// WriteError writes an Error as a JSON response with the given HTTP status code.
func WriteError(w http.ResponseWriter, statusCode int, apiErr *Error) {
	WriteJSON(w, statusCode, apiErr)
}

// StatusFor maps store errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteStoreError writes err with the status StatusFor picks. Internal errors
// are reported with a generic message.
func WriteStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal Server Error"
	}
	WriteError(w, status, NewError(msg, CorrelationID(r.Context())))
}
