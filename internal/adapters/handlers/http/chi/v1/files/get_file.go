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

// GetFileV1 returns a single record the requester may see
func (h *HandlerV1) GetFileV1(w http.ResponseWriter, r *http.Request) {
	userID, ok := session.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	fileID, err := uuid.Parse(chi.URLParam(r, "fileID"))
	if err != nil {
		// An unparseable id names nothing, same shape as an absent record
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	record, err := h.fileService.GetFile(r.Context(), fileID, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting file", "error", err)
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
