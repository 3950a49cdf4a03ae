package files

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/session"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// GetContentV1 streams a record's payload, or a thumbnail variant when size
// is given. A session is optional here: public files are readable by anyone.
func (h *HandlerV1) GetContentV1(w http.ResponseWriter, r *http.Request) {
	// Anonymous requesters get the nil user id, which owns nothing
	userID, _ := session.UserIDFromContext(r.Context())

	fileID, err := uuid.Parse(chi.URLParam(r, "fileID"))
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid size", http.StatusBadRequest)
			return
		}
	}

	content, err := h.fileService.GetContent(r.Context(), fileID, userID, size)
	switch {
	case errors.Is(err, domain.ErrInvalidSize):
		http.Error(w, "Invalid size", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrFolderHasNoContent):
		http.Error(w, "A folder doesn't have content", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting content", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		defer content.Reader.Close()
		w.Header().Set("Content-Type", content.MimeType)
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, content.Reader); err != nil {
			h.logger.Error("error streaming content", "error", err)
		}
	}
}
