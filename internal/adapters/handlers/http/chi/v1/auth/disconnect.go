package auth

import (
	"net/http"
)

// DisconnectV1 revokes the presented session token. The route is behind the
// session middleware, so the token is known to be valid here; revoking it is
// idempotent regardless.
func (h *HandlerV1) DisconnectV1(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Token")

	if err := h.authService.Revoke(r.Context(), token); err != nil {
		h.logger.Error("error revoking session", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
