package files

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/session"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// PublishV1 makes a record the requester owns publicly readable
func (h *HandlerV1) PublishV1(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// UnpublishV1 makes a record the requester owns private again
func (h *HandlerV1) UnpublishV1(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *HandlerV1) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	userID, ok := session.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	fileID, err := uuid.Parse(chi.URLParam(r, "fileID"))
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	record, err := h.fileService.SetVisibility(r.Context(), fileID, userID, isPublic)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error setting visibility", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toFileResponse(record)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
