package file

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// SetVisibility toggles is_public on a record the caller owns. Only the owner
// may publish or unpublish; anyone else sees not found.
func (f *fileService) SetVisibility(ctx context.Context, id, ownerID uuid.UUID, isPublic bool) (*domain.FileRecord, error) {
	if _, err := f.files.FindByIDAndOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return f.files.SetVisibility(ctx, id, isPublic)
}
