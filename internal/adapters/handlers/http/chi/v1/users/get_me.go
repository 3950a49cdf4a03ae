package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// GetMeV1 returns the user behind the presented session token
func (h *HandlerV1) GetMeV1(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Token")

	user, err := h.authService.CurrentUser(r.Context(), token)
	switch {
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("error resolving current user", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		resp := V1UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
