package files

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// HandlerV1 is the handler for v1 file routes
type HandlerV1 struct {
	fileService port.FileService
	logger      *slog.Logger
}

// NewFilesHandlerV1 creates HandlerV1
func NewFilesHandlerV1(service port.FileService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		fileService: service,
		logger:      logger,
	}
}

// V1FileResponse is the wire shape of a file record. The root parent is
// serialized as an absent parentId rather than the nil uuid.
type V1FileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsPublic  bool      `json:"isPublic"`
	ParentID  string    `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toFileResponse(record *domain.FileRecord) V1FileResponse {
	resp := V1FileResponse{
		ID:        record.ID.String(),
		UserID:    record.OwnerID.String(),
		Name:      record.Name,
		Type:      string(record.Kind),
		IsPublic:  record.IsPublic,
		CreatedAt: record.CreatedAt,
	}
	if record.ParentID != domain.RootFolderID {
		resp.ParentID = record.ParentID.String()
	}
	return resp
}

// parseParentID maps wire-level parent values onto the id type. Absent, empty
// and the legacy "0" all mean the root sentinel.
func parseParentID(s string) (uuid.UUID, bool) {
	if s == "" || s == "0" {
		return domain.RootFolderID, true
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
