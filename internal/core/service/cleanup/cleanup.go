package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

type cleanupService struct {
	sessions port.SessionRepository
	logger   *slog.Logger
}

// NewCleanupService creates a service that handles background housekeeping
func NewCleanupService(sessions port.SessionRepository, logger *slog.Logger) port.CleanupService {
	return &cleanupService{sessions: sessions, logger: logger}
}

// PurgeExpiredSessions removes session rows past their TTL. Lookups already
// reject expired rows, so the sweep only reclaims space.
func (c *cleanupService) PurgeExpiredSessions(ctx context.Context, now time.Time) error {
	purged, err := c.sessions.DeleteExpired(ctx, now)
	if err != nil {
		return err
	}
	if purged > 0 {
		c.logger.Info("purged expired sessions", "count", purged)
	}
	return nil
}
