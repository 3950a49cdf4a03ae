package file

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// ListFiles returns one page of the owner's direct children of parentID
func (f *fileService) ListFiles(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]domain.FileRecord, error) {
	return f.files.ListByOwnerAndParent(ctx, ownerID, parentID, page)
}
