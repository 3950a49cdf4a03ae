package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// V1ConnectResponse is the response to a successful login
type V1ConnectResponse struct {
	Token string `json:"token"`
}

// ConnectV1 logs a user in via Basic auth and issues a session token
func (h *HandlerV1) ConnectV1(w http.ResponseWriter, r *http.Request) {
	email, password, ok := basicCredentials(r.Header.Get("Authorization"))
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := h.authService.Authenticate(r.Context(), email, password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("error authenticating", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(V1ConnectResponse{Token: token}); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}

// basicCredentials parses an "Authorization: Basic base64(email:password)" header
func basicCredentials(header string) (string, string, bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", false
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found || email == "" {
		return "", "", false
	}
	return email, password, true
}
