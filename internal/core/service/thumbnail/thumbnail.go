package thumbnail

import (
	"log/slog"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/config"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

type thumbnailService struct {
	files       port.FileRepository
	jobs        port.JobRepository
	storage     port.BlobStorage
	maxAttempts int
	logger      *slog.Logger
}

// NewThumbnailService creates the worker-side job handler
func NewThumbnailService(files port.FileRepository, jobs port.JobRepository, storage port.BlobStorage, cfg config.WorkerConfig, logger *slog.Logger) port.MessageService {
	return &thumbnailService{
		files:       files,
		jobs:        jobs,
		storage:     storage,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger,
	}
}
