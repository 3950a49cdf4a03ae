package file

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// GetContent streams a record's payload, or the resized variant when size is
// one of the generated widths. size 0 selects the original.
//
// Ownership/visibility is checked before the variant's existence, so a
// non-owner cannot probe which variants exist for a private file.
func (f *fileService) GetContent(ctx context.Context, id, requesterID uuid.UUID, size int) (*port.Content, error) {
	record, err := f.files.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !record.VisibleTo(requesterID) {
		return nil, domain.ErrNotFound
	}
	if record.Kind == domain.FileKindFolder {
		return nil, domain.ErrFolderHasNoContent
	}

	key := record.BlobKey
	if size != 0 {
		if !slices.Contains(domain.ThumbnailWidths, size) {
			return nil, domain.ErrInvalidSize
		}
		key = record.VariantKey(size)
	}

	reader, err := f.storage.Get(ctx, key)
	if err != nil {
		// A variant not yet generated is indistinguishable from a missing file
		if errors.Is(err, port.ErrBlobNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not read blob %s: %w", key, err)
	}

	return &port.Content{
		Reader:   reader,
		MimeType: mimeTypeFor(record.Name),
	}, nil
}
