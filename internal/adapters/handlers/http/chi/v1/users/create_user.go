package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// V1CreateUserRequest is the request to register a new account
type V1CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserV1 registers a new account
func (h *HandlerV1) CreateUserV1(w http.ResponseWriter, r *http.Request) {
	var req V1CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		http.Error(w, "Missing email", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "Missing password", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, "Already exist", http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error creating user", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		resp := V1UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
