package auth

import (
	"net/http"

	"github.com/johnwards/caretrain/internal/store"
)

// RegisterRoutes registers the auth endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
}
