package file

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// GetFile returns a record if the requester owns it or it is public. A
// private record owned by someone else surfaces as not found, never as
// forbidden, so its existence is not leaked.
func (f *fileService) GetFile(ctx context.Context, id, requesterID uuid.UUID) (*domain.FileRecord, error) {
	record, err := f.files.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !record.VisibleTo(requesterID) {
		return nil, domain.ErrNotFound
	}
	return record, nil
}
