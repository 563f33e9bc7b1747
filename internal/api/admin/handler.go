package admin

import (
	"log/slog"
	"net/http"

	"github.com/johnwards/caretrain/internal/api"
	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/seed"
)

// Handler serves the admin API at /_admin/.
type Handler struct {
	db           *database.DB
	demoPassword string
}

type resultResponse struct {
	Status        string `json:"status"`
	Seeded        bool   `json:"seeded"`
	PasswordReset int64  `json:"passwordsReset"`
}

// Reset clears all data, re-seeds and resets the demo passwords.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := seed.Reset(ctx, h.db); err != nil {
		h.fail(w, r, "reset data", err)
		return
	}

	n, err := seed.ResetDemoPasswords(ctx, h.db, h.demoPassword)
	if err != nil {
		h.fail(w, r, "reset demo passwords", err)
		return
	}

	api.WriteJSON(w, http.StatusOK, resultResponse{Status: "ok", Seeded: true, PasswordReset: n})
}

// SeedData seeds an empty database without dropping existing data, then
// resets the demo passwords.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	seeded, err := seed.Seed(ctx, h.db)
	if err != nil {
		h.fail(w, r, "seed data", err)
		return
	}

	n, err := seed.ResetDemoPasswords(ctx, h.db, h.demoPassword)
	if err != nil {
		h.fail(w, r, "reset demo passwords", err)
		return
	}

	api.WriteJSON(w, http.StatusOK, resultResponse{Status: "ok", Seeded: seeded, PasswordReset: n})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	corrID := api.CorrelationID(r.Context())
	slog.Error("admin "+op+" failed", "error", err, "correlationId", corrID)
	api.WriteError(w, http.StatusInternalServerError, api.NewError("failed to "+op, corrID))
}
