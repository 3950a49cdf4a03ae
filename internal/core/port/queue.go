package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// JobRepository is an interface to define job state persistence. State rows
// exist for observability; delivery itself is the queue's responsibility.
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) error
	// Claim marks a job running and bumps its attempt counter, returning the
	// updated row. Safe to call on redelivery.
	Claim(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	SetState(ctx context.Context, id uuid.UUID, state domain.JobState) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

// JobQueue is an interface to define the producer side of the job queue
type JobQueue interface {
	Enqueue(ctx context.Context, msg domain.JobMessage) error
}

// EventConsumer is an interface to define the consumer side of the job queue
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling. A nil return
// acknowledges the message; an error requeues it for redelivery.
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
