package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobState represents where a thumbnail job is in its lifecycle
type JobState string

const (
	JobStateQueued  JobState = "queued"
	JobStateRunning JobState = "running"
	JobStateDone    JobState = "done"
	JobStateFailed  JobState = "failed"
)

// Job tracks one thumbnail-generation unit of work. Delivery is at-least-once,
// so the work it describes must stay safe to repeat.
type Job struct {
	ID        uuid.UUID
	FileID    uuid.UUID
	OwnerID   uuid.UUID
	State     JobState
	Attempts  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobMessage is the payload published on the queue. The worker re-fetches the
// record by ids rather than trusting anything else carried at enqueue time.
type JobMessage struct {
	JobID   uuid.UUID `json:"job_id"`
	FileID  uuid.UUID `json:"file_id"`
	OwnerID uuid.UUID `json:"owner_id"`
}
