package system

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// QueuePinger reports broker liveness
type QueuePinger interface {
	Connected() bool
}

type systemService struct {
	db     *sql.DB
	queue  QueuePinger
	users  port.UserRepository
	files  port.FileRepository
	logger *slog.Logger
}

// NewSystemService creates the service behind /status and /stats
func NewSystemService(db *sql.DB, queue QueuePinger, users port.UserRepository, files port.FileRepository, logger *slog.Logger) port.SystemService {
	return &systemService{db: db, queue: queue, users: users, files: files, logger: logger}
}

// Status reports liveness of the backing stores
func (s *systemService) Status(ctx context.Context) (bool, bool) {
	dbOK := s.db.PingContext(ctx) == nil
	queueOK := s.queue != nil && s.queue.Connected()
	return dbOK, queueOK
}

// Stats reports entity counters
func (s *systemService) Stats(ctx context.Context) (*domain.Stats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	files, err := s.files.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Stats{Users: users, Files: files}, nil
}
