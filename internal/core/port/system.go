package port

import (
	"context"
	"time"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// SystemService exposes liveness and counters for the status endpoints
type SystemService interface {
	Status(ctx context.Context) (db bool, queue bool)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// CleanupService is a service that handles background housekeeping
type CleanupService interface {
	PurgeExpiredSessions(ctx context.Context, now time.Time) error
}
