package organizations

import (
	"net/http"

	"github.com/johnwards/caretrain/internal/store"
)

// RegisterRoutes registers the organization endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /organizations/{code}", h.Get)
}
