package organizations

import (
	"errors"
	"net/http"

	"github.com/johnwards/caretrain/internal/api"
	"github.com/johnwards/caretrain/internal/store"
)

// Handler handles organization lookups.
type Handler struct {
	store *store.Store
}

// Get handles GET /organizations/{code}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.store.Organizations.GetByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, api.NewError("Organization not found", api.CorrelationID(r.Context())))
			return
		}
		api.WriteStoreError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, org)
}
