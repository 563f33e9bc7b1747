package admin

import (
	"net/http"

	"github.com/johnwards/caretrain/internal/database"
)

// RegisterRoutes registers all admin API endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, db *database.DB, demoPassword string) {
	h := &Handler{db: db, demoPassword: demoPassword}

	mux.HandleFunc("POST /_admin/reset", h.Reset)
	mux.HandleFunc("POST /_admin/seed", h.SeedData)
}
