package scenarios

import (
	"net/http"

	"github.com/johnwards/caretrain/internal/store"
)

// RegisterRoutes registers the scenario catalogue endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /scenarios", h.List)
	mux.HandleFunc("GET /scenarios/{scenarioId}", h.Get)
}
