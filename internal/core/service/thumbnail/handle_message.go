package thumbnail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// HandleMessage processes one thumbnail job delivery. Delivery is
// at-least-once: every side effect here is safe to repeat, because variants
// are written by overwrite.
//
// Returning nil acknowledges the message; returning an error requeues it.
func (t *thumbnailService) HandleMessage(ctx context.Context, data []byte) error {
	var msg domain.JobMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		// A malformed payload can never succeed; drop it instead of looping
		t.logger.Error("dropping malformed job message", "error", err)
		return nil
	}

	job, err := t.jobs.Claim(ctx, msg.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			t.logger.Warn("job row missing, dropping message", "job_id", msg.JobID.String())
			return nil
		}
		return fmt.Errorf("could not claim job: %w", err)
	}

	// Re-fetch the record instead of trusting the enqueue-time payload: the
	// record may have changed between enqueue and processing.
	record, err := t.files.FindByIDAndOwner(ctx, msg.FileID, msg.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return t.failPermanently(ctx, job, "file record missing")
		}
		return t.retryOrFail(ctx, job, fmt.Errorf("could not fetch file record: %w", err))
	}
	if record.Kind != domain.FileKindImage || record.BlobKey == "" {
		return t.failPermanently(ctx, job, "record is not an image with a blob")
	}

	reader, err := t.storage.Get(ctx, record.BlobKey)
	if err != nil {
		return t.retryOrFail(ctx, job, fmt.Errorf("could not read original blob: %w", err))
	}
	original, err := io.ReadAll(reader)
	reader.Close()
	if err != nil {
		return t.retryOrFail(ctx, job, fmt.Errorf("could not read original blob: %w", err))
	}

	img, format, err := decodeImage(original)
	if err != nil {
		return t.retryOrFail(ctx, job, fmt.Errorf("could not decode original blob: %w", err))
	}

	// Widths are attempted independently; one failed width does not abort the
	// others, it is only surfaced in the logs.
	failed := 0
	for _, width := range domain.ThumbnailWidths {
		if err := t.writeVariant(ctx, record, img, format, width); err != nil {
			failed++
			t.logger.Error("failed to generate variant",
				"job_id", job.ID.String(),
				"file_id", record.ID.String(),
				"width", width,
				"error", err)
		}
	}
	if failed == len(domain.ThumbnailWidths) {
		return t.retryOrFail(ctx, job, errors.New("all variants failed"))
	}

	if err := t.jobs.SetState(ctx, job.ID, domain.JobStateDone); err != nil {
		return t.retryOrFail(ctx, job, fmt.Errorf("could not mark job done: %w", err))
	}

	t.logger.Info("job completed",
		"job_id", job.ID.String(),
		"file_id", record.ID.String(),
		"attempt", job.Attempts)
	return nil
}

// failPermanently moves a job to terminal Failed and acknowledges the
// message: the condition cannot heal with a retry.
func (t *thumbnailService) failPermanently(ctx context.Context, job *domain.Job, reason string) error {
	t.logger.Warn("job failed permanently",
		"job_id", job.ID.String(), "reason", reason, "attempt", job.Attempts)
	if err := t.jobs.SetState(ctx, job.ID, domain.JobStateFailed); err != nil {
		t.logger.Error("could not mark job failed", "job_id", job.ID.String(), "error", err)
	}
	return nil
}

// retryOrFail requeues a transient failure until the attempt bound is
// reached, then moves the job to terminal Failed. Re-enqueueing after that
// is an operational decision, not an automatic one.
func (t *thumbnailService) retryOrFail(ctx context.Context, job *domain.Job, cause error) error {
	if job.Attempts >= t.maxAttempts {
		t.logger.Error("job exhausted its attempts",
			"job_id", job.ID.String(), "attempts", job.Attempts, "error", cause)
		if err := t.jobs.SetState(ctx, job.ID, domain.JobStateFailed); err != nil {
			t.logger.Error("could not mark job failed", "job_id", job.ID.String(), "error", err)
		}
		return nil
	}

	if err := t.jobs.SetState(ctx, job.ID, domain.JobStateQueued); err != nil {
		t.logger.Error("could not requeue job", "job_id", job.ID.String(), "error", err)
	}
	return cause
}
