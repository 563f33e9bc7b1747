package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnwards/caretrain/internal/api"
	"github.com/johnwards/caretrain/internal/store"
)

func TestNewError(t *testing.T) {
	err := api.NewError("scenario not found", "abc-123")

	if err.Message != "scenario not found" {
		t.Errorf("Message = %q, want %q", err.Message, "scenario not found")
	}
	if err.CorrelationID != "abc-123" {
		t.Errorf("CorrelationID = %q, want %q", err.CorrelationID, "abc-123")
	}
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	api.WriteError(rec, http.StatusNotFound, api.NewError("not found", "test-id"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusNotFound)
	}

	ct := rec.Header().Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var result map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}
	if result["error"] != "not found" {
		t.Errorf("error = %q, want %q", result["error"], "not found")
	}
	if result["correlationId"] != "test-id" {
		t.Errorf("correlationId = %q, want %q", result["correlationId"], "test-id")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad role", store.ErrInvalidInput), http.StatusBadRequest},
		{store.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("organization %q: %w", "X", store.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("user: %w", store.ErrConflict), http.StatusConflict},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := api.StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestWriteStoreErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)

	api.WriteStoreError(rec, req, errors.New("select users: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var result map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result["error"] != "Internal Server Error" {
		t.Errorf("error = %q, want generic message", result["error"])
	}
}
