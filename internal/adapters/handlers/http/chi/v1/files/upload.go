package files

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/session"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// V1UploadRequest is the request to create a file, folder or image
type V1UploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// UploadV1 creates a record through the upload pipeline
func (h *HandlerV1) UploadV1(w http.ResponseWriter, r *http.Request) {
	userID, ok := session.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req V1UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	parentID, ok := parseParentID(req.ParentID)
	if !ok {
		http.Error(w, "Parent not found", http.StatusBadRequest)
		return
	}

	record, err := h.fileService.Upload(r.Context(), userID, port.UploadInput{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: parentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	switch {
	case errors.Is(err, domain.ErrMissingName):
		http.Error(w, "Missing name", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrMissingType):
		http.Error(w, "Missing type", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrMissingData):
		http.Error(w, "Missing data", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrInvalidData):
		http.Error(w, "Invalid data", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrParentNotFound):
		http.Error(w, "Parent not found", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrParentNotFolder):
		http.Error(w, "Parent is not a folder", http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error uploading file", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toFileResponse(record)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
