package files

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/session"
)

// ListFilesV1 returns one page (at most 20) of the requester's records under
// the given parent
func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {
	userID, ok := session.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	parentID, ok := parseParentID(r.URL.Query().Get("parentId"))
	if !ok {
		// An unknown parent simply has no children
		writeRecords(w, h, nil)
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}

	records, err := h.fileService.ListFiles(r.Context(), userID, parentID, page)
	if err != nil {
		h.logger.Error("error listing files", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]V1FileResponse, 0, len(records))
	for i := range records {
		resp = append(resp, toFileResponse(&records[i]))
	}
	writeRecords(w, h, resp)
}

func writeRecords(w http.ResponseWriter, h *HandlerV1, records []V1FileResponse) {
	if records == nil {
		records = []V1FileResponse{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(records); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
