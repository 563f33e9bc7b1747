package scenarios

import (
	"errors"
	"net/http"

	"github.com/johnwards/caretrain/internal/api"
	"github.com/johnwards/caretrain/internal/domain"
	"github.com/johnwards/caretrain/internal/store"
)

// Handler handles scenario catalogue requests.
type Handler struct {
	store *store.Store
}

// List handles GET /scenarios.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ScenarioFilter{
		Difficulty: domain.Difficulty(r.URL.Query().Get("difficulty")),
		Module:     r.URL.Query().Get("module"),
	}

	scenarios, err := h.store.Scenarios.List(r.Context(), filter)
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}

	results := make([]any, len(scenarios))
	for i, sc := range scenarios {
		results[i] = sc
	}

	api.WriteJSON(w, http.StatusOK, api.CollectionResponse{Results: results})
}

// Get handles GET /scenarios/{scenarioId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	scenarioID := r.PathValue("scenarioId")

	sc, err := h.store.Scenarios.Get(r.Context(), scenarioID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, api.NewError("Scenario not found", api.CorrelationID(r.Context())))
			return
		}
		api.WriteStoreError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, sc)
}
