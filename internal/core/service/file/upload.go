package file

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// Upload runs the upload pipeline: validate, check the parent, persist the
// blob, insert the record, and for images enqueue a thumbnail job.
//
// The blob is written before the metadata insert on purpose. A failed insert
// after a successful write leaves an orphaned blob, which is acceptable; the
// reverse order could leave a record pointing at a blob that never landed,
// which is not.
func (f *fileService) Upload(ctx context.Context, ownerID uuid.UUID, input port.UploadInput) (*domain.FileRecord, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingName
	}
	kind, ok := domain.ParseFileKind(input.Type)
	if !ok {
		return nil, domain.ErrMissingType
	}
	if kind != domain.FileKindFolder && input.Data == "" {
		return nil, domain.ErrMissingData
	}

	if input.ParentID != domain.RootFolderID {
		parent, err := f.files.FindByID(ctx, input.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrParentNotFound
			}
			return nil, err
		}
		if parent.Kind != domain.FileKindFolder {
			return nil, domain.ErrParentNotFolder
		}
	}

	record := domain.FileRecord{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     input.Name,
		Kind:     kind,
		ParentID: input.ParentID,
		IsPublic: input.IsPublic,
	}

	if kind != domain.FileKindFolder {
		payload, err := base64.StdEncoding.DecodeString(input.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidData, err)
		}

		// Fresh unpredictable key per upload: identical payloads are stored
		// twice rather than deduplicated.
		record.BlobKey = uuid.NewString()
		if err := f.storage.Put(ctx, record.BlobKey, payload, mimeTypeFor(input.Name)); err != nil {
			return nil, fmt.Errorf("could not store payload: %w", err)
		}
	}

	if err := f.files.Create(ctx, record); err != nil {
		return nil, err
	}

	if kind == domain.FileKindImage {
		if err := f.enqueueThumbnailJob(ctx, record); err != nil {
			// The upload itself already succeeded; the job row stays queued
			// for operational re-enqueue.
			f.logger.Error("failed to enqueue thumbnail job",
				"file_id", record.ID.String(), "error", err)
		}
	}

	created, err := f.files.FindByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (f *fileService) enqueueThumbnailJob(ctx context.Context, record domain.FileRecord) error {
	job := domain.Job{
		ID:      uuid.New(),
		FileID:  record.ID,
		OwnerID: record.OwnerID,
		State:   domain.JobStateQueued,
	}
	if err := f.jobs.Create(ctx, job); err != nil {
		return err
	}

	return f.queue.Enqueue(ctx, domain.JobMessage{
		JobID:   job.ID,
		FileID:  record.ID,
		OwnerID: record.OwnerID,
	})
}
