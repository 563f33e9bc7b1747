package auth

import (
	"encoding/json"
	"net/http"

	"github.com/johnwards/caretrain/internal/api"
	"github.com/johnwards/caretrain/internal/domain"
	"github.com/johnwards/caretrain/internal/store"
)

// Handler handles registration and login requests.
type Handler struct {
	store *store.Store
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	User    *domain.User `json:"user"`
	Message string       `json:"message"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	User *domain.User `json:"user"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var reg domain.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewError("Invalid JSON body", corrID))
		return
	}

	user, err := h.store.Users.Register(r.Context(), reg)
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, RegisterResponse{
		User:    user,
		Message: "Registration successful",
	})
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewError("Invalid JSON body", corrID))
		return
	}

	user, err := h.store.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, LoginResponse{User: user})
}
